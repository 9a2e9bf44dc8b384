package engine_test

import (
	"math"
	"strings"
	"testing"

	"quizito/internal/engine"
)

func TestBuildQuizEndToEnd(t *testing.T) {
	quiz := engine.BuildQuiz("Photosynthesis", engine.DifficultyEasy, 3, "multiple-choice", "")

	if !strings.Contains(quiz.Title, "Photosynthesis") {
		t.Errorf("title %q does not mention the topic", quiz.Title)
	}
	if len(quiz.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(quiz.Questions))
	}
	for i, q := range quiz.Questions {
		if q.Points != 100 {
			t.Errorf("question %d points = %d, want 100", i, q.Points)
		}
		if q.TimeLimit != 30 {
			t.Errorf("question %d timeLimit = %d, want 30", i, q.TimeLimit)
		}
		if q.Difficulty != "easy" {
			t.Errorf("question %d difficulty = %q, want easy", i, q.Difficulty)
		}
	}
	if quiz.TotalPoints != 300 {
		t.Errorf("totalPoints = %d, want 300", quiz.TotalPoints)
	}
	if math.Abs(quiz.EstimatedTime-2.4) > 1e-9 {
		t.Errorf("estimatedTime = %v, want 2.4", quiz.EstimatedTime)
	}
	if len(quiz.LearningObjectives) != 3 {
		t.Errorf("expected 3 learning objectives, got %d", len(quiz.LearningObjectives))
	}
	if quiz.Metadata["prerequisites"] != "None" {
		t.Errorf("easy quiz prerequisites = %v, want None", quiz.Metadata["prerequisites"])
	}
}

func TestBuildQuizObjectivesCapAtEight(t *testing.T) {
	quiz := engine.BuildQuiz("Chemistry", engine.DifficultyMedium, 12, "multiple-choice", "")
	if len(quiz.Questions) != 12 {
		t.Fatalf("expected 12 questions, got %d", len(quiz.Questions))
	}
	if len(quiz.LearningObjectives) != 8 {
		t.Errorf("expected objectives capped at 8, got %d", len(quiz.LearningObjectives))
	}
	if quiz.TotalPoints != 12*150 {
		t.Errorf("totalPoints = %d, want %d", quiz.TotalPoints, 12*150)
	}
	if quiz.Metadata["prerequisites"] != "Basic understanding of Chemistry" {
		t.Errorf("unexpected prerequisites: %v", quiz.Metadata["prerequisites"])
	}
}

func TestBuildQuizContextKeywordsBecomeTags(t *testing.T) {
	context := "Mitochondria produce energy. Mitochondria are organelles. Energy flows through cells."
	quiz := engine.BuildQuiz("Cell Biology", engine.DifficultyMedium, 2, "multiple-choice", context)

	found := false
	for _, tag := range quiz.Tags {
		if tag == "Mitochondria" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected keyword tag Mitochondria in %v", quiz.Tags)
	}
}

func TestExtractKeywords(t *testing.T) {
	text := "Neural networks process data. Neural networks learn from data. Training improves networks."
	keywords := engine.ExtractKeywords(text)

	if len(keywords) == 0 {
		t.Fatal("expected keywords")
	}
	// "networks" occurs three times and should rank first.
	if keywords[0] != "Networks" {
		t.Errorf("top keyword = %q, want Networks", keywords[0])
	}
	for _, kw := range keywords {
		lower := strings.ToLower(kw)
		if lower == "from" || lower == "this" {
			t.Errorf("stop word %q leaked into keywords", kw)
		}
		if len(lower) < 4 {
			t.Errorf("short word %q leaked into keywords", kw)
		}
	}
}

func TestExtractKeywordsEmpty(t *testing.T) {
	if kw := engine.ExtractKeywords(""); kw != nil {
		t.Errorf("expected nil for empty text, got %v", kw)
	}
}

func TestExtractKeywordsCapsAtTen(t *testing.T) {
	text := "alpha bravo charlie delta echo foxtrot golfing hotel india juliet kilos lima"
	if kw := engine.ExtractKeywords(text); len(kw) > 10 {
		t.Errorf("expected at most 10 keywords, got %d", len(kw))
	}
}

func TestSimpleQuestions(t *testing.T) {
	questions := engine.SimpleQuestions("Astronomy for beginners", "multiple-choice", 4, engine.DifficultyHard)
	if len(questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options", i, len(q.Options))
		}
		if q.CorrectAnswer != 0 {
			t.Errorf("question %d correctAnswer = %d", i, q.CorrectAnswer)
		}
		if q.Points != 200 || q.TimeLimit != 60 {
			t.Errorf("question %d scoring = %d/%d, want 200/60", i, q.Points, q.TimeLimit)
		}
	}
}

func TestSimpleQuestionsNonPositiveCount(t *testing.T) {
	for _, count := range []int{0, -1, -50} {
		questions := engine.SimpleQuestions("Algebra", "multiple-choice", count, engine.DifficultyEasy)
		if len(questions) != 0 {
			t.Errorf("count %d: expected no questions, got %d", count, len(questions))
		}
	}
}

func TestLearningObjectivesMentionTopic(t *testing.T) {
	for _, obj := range engine.LearningObjectives("Thermodynamics", 8) {
		if !strings.Contains(obj, "Thermodynamics") {
			t.Errorf("objective %q does not mention the topic", obj)
		}
	}
}
