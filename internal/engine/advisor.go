package engine

import (
	"strings"

	"quizito/internal/models"
)

var targetAudiences = map[Category][]string{
	CategoryTechnology: {"Students", "Developers", "IT Professionals", "Tech Enthusiasts"},
	CategoryScience:    {"Students", "Researchers", "Educators", "Science Enthusiasts"},
	CategoryHistory:    {"Students", "Historians", "Educators", "History Buffs"},
	CategoryBusiness:   {"Students", "Professionals", "Entrepreneurs", "Managers"},
}

var generalAudience = []string{"Students", "General Public", "Lifelong Learners"}

// AdviseTopic produces quiz-creation recommendations for a topic: suggested
// difficulty mix, audiences, misconceptions, and resources. Purely
// compositional over the classifier and aspect generator.
func AdviseTopic(topic, contextText string) models.TopicAnalysis {
	category := Classify(topic)

	audience, ok := targetAudiences[category]
	if !ok {
		audience = generalAudience
	}

	return models.TopicAnalysis{
		Topic:                 topic,
		Category:              string(category),
		RecommendedDifficulty: DifficultyMedium.String(),
		SuggestedQuestionCount: map[string]int{
			DifficultyEasy.String():   3,
			DifficultyMedium.String(): 5,
			DifficultyHard.String():   2,
		},
		KeyAreas:               Aspects(topic, 5),
		SuggestedQuestionTypes: []string{"multiple-choice", "true-false", "fill-blank"},
		EstimatedQuizTime:      15,
		Prerequisites:          "Basic understanding of " + strings.ToLower(string(category)) + " concepts",
		TargetAudience:         audience,
		LearningPotential:      learningPotential(topic),
		CommonMisconceptions: []string{
			"Misunderstanding the basic principles of " + topic,
			"Confusing " + topic + " with related but different concepts",
			"Overestimating or underestimating the importance of " + topic,
			"Incorrect applications of " + topic + " in practice",
		},
		Resources: suggestResources(topic, category),
	}
}

func learningPotential(topic string) models.LearningPotential {
	depth := "Medium"
	if len(strings.Fields(topic)) > 2 {
		depth = "High"
	}
	return models.LearningPotential{
		KnowledgeDepth:   depth,
		SkillDevelopment: []string{"Critical Thinking", "Analysis", "Application"},
		PracticalApplications: []string{
			"Applying " + topic + " in real-world scenarios",
			"Problem-solving using " + topic + " principles",
			"Implementing " + topic + " in projects",
		},
		ComplexityLevel: "Moderate",
	}
}

func suggestResources(topic string, category Category) []models.Resource {
	resources := []models.Resource{
		{
			Type:        "Online Course",
			Title:       "Introduction to " + topic,
			Description: "Comprehensive course covering " + topic + " fundamentals",
			Platform:    "Coursera/edX",
		},
		{
			Type:        "Book",
			Title:       "The Complete Guide to " + topic,
			Description: "In-depth exploration of " + topic,
			Platform:    "Amazon/Bookstore",
		},
	}
	if category == CategoryTechnology {
		resources = append(resources, models.Resource{
			Type:        "Documentation",
			Title:       "Official " + topic + " Documentation",
			Description: "Technical reference and guides",
			Platform:    "Official Website",
		})
	}
	return resources
}
