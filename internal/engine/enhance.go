package engine

import (
	"fmt"
	"strings"
	"time"

	"quizito/internal/models"
)

// EnhancementMode names one of the enhancement policies.
type EnhancementMode string

const (
	EnhanceExplanations  EnhancementMode = "explanations"
	EnhanceDifficulty    EnhancementMode = "difficulty"
	EnhanceComprehensive EnhancementMode = "comprehensive"
)

// ParseEnhancementMode normalizes a requested mode, defaulting to
// comprehensive.
func ParseEnhancementMode(s string) EnhancementMode {
	switch EnhancementMode(strings.ToLower(strings.TrimSpace(s))) {
	case EnhanceExplanations:
		return EnhanceExplanations
	case EnhanceDifficulty:
		return EnhanceDifficulty
	default:
		return EnhanceComprehensive
	}
}

const (
	enhancementProvider = "quizito"

	descriptionSuffix = " This quiz has been enhanced with additional explanations, " +
		"varied difficulty levels, and educational tips."
	explanationSuffix = " This understanding is crucial for building a comprehensive " +
		"knowledge base and applying concepts in practical scenarios."
)

var difficultyCycle = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// EnhanceQuiz applies one enhancement policy to an existing quiz (engine- or
// AI-sourced). Fields that are already populated pass through unchanged, so
// re-applying a mode is a no-op apart from the metadata timestamps.
func EnhanceQuiz(quiz models.Quiz, mode EnhancementMode) models.Quiz {
	switch mode {
	case EnhanceExplanations:
		for i := range quiz.Questions {
			q := &quiz.Questions[i]
			if q.Explanation == "" {
				q.Explanation = Explanation(quiz.Title, "key concept", ParseDifficulty(q.Difficulty))
			}
		}

	case EnhanceDifficulty:
		// Rebalance by position: easy, medium, hard, repeating. Overwrites
		// whatever per-question difficulty was there before.
		for i := range quiz.Questions {
			q := &quiz.Questions[i]
			d := difficultyCycle[i%len(difficultyCycle)]
			q.Difficulty = d.String()
			q.Points = d.Points()
			q.TimeLimit = d.TimeLimit()
		}

	case EnhanceComprehensive:
		quiz = enhanceComprehensively(quiz)
	}

	if quiz.Metadata == nil {
		quiz.Metadata = make(map[string]any)
	}
	quiz.Metadata["enhancedAt"] = time.Now().Format(time.RFC3339)
	quiz.Metadata["enhancementType"] = string(mode)
	quiz.Metadata["enhancementProvider"] = enhancementProvider

	return quiz
}

func enhanceComprehensively(quiz models.Quiz) models.Quiz {
	if quiz.Title != "" {
		quiz.Title = "Enhanced: " + quiz.Title
	}
	if quiz.Description != "" {
		quiz.Description += descriptionSuffix
	}

	if len(quiz.LearningObjectives) == 0 {
		topic := quiz.Title
		topic = strings.ReplaceAll(topic, "Quiz", "")
		topic = strings.ReplaceAll(topic, "quiz", "")
		quiz.LearningObjectives = LearningObjectives(strings.TrimSpace(topic), 3)
	}

	category := quiz.Category
	if category == "" {
		category = "general"
	}

	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		if q.EducationalTip == "" {
			q.EducationalTip = EducationalTip(quiz.Title, fmt.Sprintf("concept %d", i+1))
		}
		if len(q.Tags) == 0 {
			difficulty := q.Difficulty
			if difficulty == "" {
				difficulty = DifficultyMedium.String()
			}
			q.Tags = []string{strings.ToLower(category), difficulty, fmt.Sprintf("question_%d", i+1)}
		}
		// Pad out one-liner explanations; anything 10+ words passes through.
		if q.Explanation != "" && len(strings.Fields(q.Explanation)) < 10 {
			q.Explanation += explanationSuffix
		}
	}

	if quiz.Metadata == nil {
		quiz.Metadata = make(map[string]any)
	}
	quiz.Metadata["comprehensivelyEnhanced"] = true
	quiz.Metadata["enhancementDate"] = time.Now().Format(time.RFC3339)
	quiz.Metadata["totalEnhancements"] = len(quiz.Questions)
	quiz.Metadata["aiEnhanced"] = true

	return quiz
}

// ApplyQuizDefaults fills the absent fields of an AI-sourced quiz with the
// engine's defaults so downstream consumers always see a fully populated
// document. Absence means the zero value of the field.
func ApplyQuizDefaults(quiz *models.Quiz, topic string, difficulty Difficulty, quizType string) {
	if quiz.Title == "" {
		quiz.Title = topic + " Quiz"
	}
	if quiz.Description == "" {
		quiz.Description = "Test your knowledge about " + topic
	}
	if quiz.Category == "" {
		quiz.Category = string(Classify(topic))
	}
	if quiz.Difficulty == "" {
		quiz.Difficulty = difficulty.String()
	}
	if quiz.EstimatedTime == 0 {
		quiz.EstimatedTime = float64(len(quiz.Questions)) * estimatedMinutesPerQuestion
	}

	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		if q.Type == "" {
			q.Type = quizType
		}
		if q.Points == 0 {
			q.Points = difficulty.Points()
		}
		if q.TimeLimit == 0 {
			q.TimeLimit = difficulty.TimeLimit()
		}
		if q.Difficulty == "" {
			q.Difficulty = difficulty.String()
		}
		if q.Explanation == "" {
			q.Explanation = "Refer to course materials for detailed explanation."
		}
		if q.EducationalTip == "" {
			q.EducationalTip = EducationalTip(topic, fmt.Sprintf("concept %d", i+1))
		}
	}

	// Total points come from the questions unless the source already set
	// them explicitly.
	if quiz.TotalPoints == 0 {
		for _, q := range quiz.Questions {
			quiz.TotalPoints += q.Points
		}
	}

	if quiz.Metadata == nil {
		quiz.Metadata = make(map[string]any)
	}
	quiz.Metadata["generatedAt"] = time.Now().Format(time.RFC3339)
	quiz.Metadata["totalQuestions"] = len(quiz.Questions)
	quiz.Metadata["aiGenerated"] = true
	quiz.Metadata["enhancementLevel"] = "full"
}

// ApplyQuestionDefaults stamps difficulty-derived scoring onto AI-sourced
// standalone questions. These fields are owned by the request, not the
// model, so they are always overwritten.
func ApplyQuestionDefaults(questions []models.Question, difficulty Difficulty) {
	for i := range questions {
		questions[i].Points = difficulty.Points()
		questions[i].TimeLimit = difficulty.TimeLimit()
		questions[i].Difficulty = difficulty.String()
	}
}
