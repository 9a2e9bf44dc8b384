package engine_test

import (
	"strings"
	"testing"

	"quizito/internal/engine"
	"quizito/internal/models"
)

func sampleQuiz(n int) models.Quiz {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{
			Text:          "Question?",
			Type:          "multiple-choice",
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: 0,
			Difficulty:    "medium",
			Points:        150,
			TimeLimit:     45,
		}
	}
	return models.Quiz{
		Title:      "Biology Quiz",
		Category:   "Science",
		Difficulty: "medium",
		Questions:  questions,
	}
}

func TestEnhanceExplanationsFillsMissing(t *testing.T) {
	const existing = "Already explained in sufficient detail for every learner here."
	quiz := sampleQuiz(2)
	quiz.Questions[0].Explanation = existing

	enhanced := engine.EnhanceQuiz(quiz, engine.EnhanceExplanations)

	if enhanced.Questions[0].Explanation != existing {
		t.Error("existing explanation was overwritten")
	}
	if enhanced.Questions[1].Explanation == "" {
		t.Error("missing explanation was not filled")
	}
	if !strings.Contains(enhanced.Questions[1].Explanation, "key concept") {
		t.Errorf("explanation %q does not reference the key concept aspect", enhanced.Questions[1].Explanation)
	}
}

func TestEnhanceExplanationsIsIdempotent(t *testing.T) {
	once := engine.EnhanceQuiz(sampleQuiz(3), engine.EnhanceExplanations)
	twice := engine.EnhanceQuiz(once, engine.EnhanceExplanations)

	for i := range once.Questions {
		if once.Questions[i].Explanation != twice.Questions[i].Explanation {
			t.Errorf("question %d explanation changed on second pass", i)
		}
	}
}

func TestEnhanceDifficultyCyclesByPosition(t *testing.T) {
	enhanced := engine.EnhanceQuiz(sampleQuiz(5), engine.EnhanceDifficulty)

	wantDifficulty := []string{"easy", "medium", "hard", "easy", "medium"}
	wantPoints := []int{100, 150, 200, 100, 150}
	wantTime := []int{30, 45, 60, 30, 45}

	for i, q := range enhanced.Questions {
		if q.Difficulty != wantDifficulty[i] {
			t.Errorf("question %d difficulty = %q, want %q", i, q.Difficulty, wantDifficulty[i])
		}
		if q.Points != wantPoints[i] {
			t.Errorf("question %d points = %d, want %d", i, q.Points, wantPoints[i])
		}
		if q.TimeLimit != wantTime[i] {
			t.Errorf("question %d timeLimit = %d, want %d", i, q.TimeLimit, wantTime[i])
		}
	}
}

func TestEnhanceComprehensive(t *testing.T) {
	quiz := sampleQuiz(2)
	quiz.Description = "A short quiz."
	quiz.Questions[0].Explanation = "Too short."

	enhanced := engine.EnhanceQuiz(quiz, engine.EnhanceComprehensive)

	if !strings.HasPrefix(enhanced.Title, "Enhanced: ") {
		t.Errorf("title = %q, want Enhanced: prefix", enhanced.Title)
	}
	if !strings.Contains(enhanced.Description, "enhanced with additional explanations") {
		t.Errorf("description not extended: %q", enhanced.Description)
	}
	if len(enhanced.LearningObjectives) != 3 {
		t.Errorf("expected 3 derived objectives, got %d", len(enhanced.LearningObjectives))
	}
	// Short explanations get the elaboration sentence appended.
	if !strings.Contains(enhanced.Questions[0].Explanation, "crucial for building") {
		t.Errorf("short explanation was not elaborated: %q", enhanced.Questions[0].Explanation)
	}
	// Empty explanations stay empty in this mode.
	if enhanced.Questions[1].Explanation != "" {
		t.Errorf("comprehensive mode should not invent explanations, got %q", enhanced.Questions[1].Explanation)
	}
	for i, q := range enhanced.Questions {
		if q.EducationalTip == "" {
			t.Errorf("question %d missing tip", i)
		}
		if len(q.Tags) == 0 {
			t.Errorf("question %d missing tags", i)
		}
	}
	if enhanced.Metadata["comprehensivelyEnhanced"] != true {
		t.Error("missing comprehensivelyEnhanced flag")
	}
	if enhanced.Metadata["totalEnhancements"] != 2 {
		t.Errorf("totalEnhancements = %v, want 2", enhanced.Metadata["totalEnhancements"])
	}
}

func TestEnhanceComprehensiveEmptyTitleStaysEmpty(t *testing.T) {
	quiz := sampleQuiz(1)
	quiz.Title = ""

	enhanced := engine.EnhanceQuiz(quiz, engine.EnhanceComprehensive)
	if enhanced.Title != "" {
		t.Errorf("title = %q, want empty title left alone", enhanced.Title)
	}
}

func TestEnhanceComprehensiveLongExplanationUnchanged(t *testing.T) {
	quiz := sampleQuiz(1)
	long := "This explanation already contains well over ten words and therefore passes through unchanged."
	quiz.Questions[0].Explanation = long

	enhanced := engine.EnhanceQuiz(quiz, engine.EnhanceComprehensive)
	if enhanced.Questions[0].Explanation != long {
		t.Errorf("long explanation was modified: %q", enhanced.Questions[0].Explanation)
	}
}

func TestEnhanceStampsMetadata(t *testing.T) {
	enhanced := engine.EnhanceQuiz(sampleQuiz(1), engine.EnhanceExplanations)

	if enhanced.Metadata["enhancementType"] != "explanations" {
		t.Errorf("enhancementType = %v", enhanced.Metadata["enhancementType"])
	}
	if enhanced.Metadata["enhancementProvider"] != "quizito" {
		t.Errorf("enhancementProvider = %v", enhanced.Metadata["enhancementProvider"])
	}
	if enhanced.Metadata["enhancedAt"] == nil {
		t.Error("enhancedAt not stamped")
	}
}

func TestParseEnhancementMode(t *testing.T) {
	cases := map[string]engine.EnhancementMode{
		"explanations": engine.EnhanceExplanations,
		"difficulty":   engine.EnhanceDifficulty,
		"":             engine.EnhanceComprehensive,
		"anything":     engine.EnhanceComprehensive,
	}
	for in, want := range cases {
		if got := engine.ParseEnhancementMode(in); got != want {
			t.Errorf("ParseEnhancementMode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestApplyQuizDefaults(t *testing.T) {
	quiz := models.Quiz{
		Questions: []models.Question{
			{Text: "Q1?", Options: []string{"A", "B", "C", "D"}},
			{Text: "Q2?", Options: []string{"A", "B", "C", "D"}, Points: 500},
		},
	}

	engine.ApplyQuizDefaults(&quiz, "Python programming", engine.DifficultyHard, "multiple-choice")

	if quiz.Title != "Python programming Quiz" {
		t.Errorf("title = %q", quiz.Title)
	}
	if quiz.Category != "Technology" {
		t.Errorf("category = %q, want Technology", quiz.Category)
	}
	if quiz.Questions[0].Points != 200 {
		t.Errorf("default points = %d, want 200", quiz.Questions[0].Points)
	}
	if quiz.Questions[1].Points != 500 {
		t.Errorf("explicit points overwritten: %d", quiz.Questions[1].Points)
	}
	if quiz.TotalPoints != 700 {
		t.Errorf("totalPoints = %d, want 700", quiz.TotalPoints)
	}
	if quiz.Questions[0].Explanation == "" || quiz.Questions[0].EducationalTip == "" {
		t.Error("question defaults not filled")
	}
	if quiz.Metadata["aiGenerated"] != true {
		t.Error("aiGenerated flag not set")
	}
}

func TestApplyQuestionDefaults(t *testing.T) {
	questions := []models.Question{{Text: "Q?", Points: 1, TimeLimit: 1, Difficulty: "weird"}}
	engine.ApplyQuestionDefaults(questions, engine.DifficultyEasy)

	q := questions[0]
	if q.Points != 100 || q.TimeLimit != 30 || q.Difficulty != "easy" {
		t.Errorf("defaults not applied: %+v", q)
	}
}
