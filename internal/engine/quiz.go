package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"quizito/internal/models"
)

const estimatedMinutesPerQuestion = 0.8

var objectiveTemplates = []string{
	"Understand the fundamental concepts of %s",
	"Identify key components and their relationships within %s",
	"Apply knowledge of %s to solve basic problems",
	"Analyze different aspects of %s and their implications",
	"Evaluate the importance and applications of %s",
	"Synthesize information about %s to form comprehensive understanding",
	"Develop critical thinking skills related to %s",
	"Recognize common misconceptions about %s",
}

// BuildQuiz assembles a complete quiz: one synthesized question per derived
// aspect, plus quiz-level metadata. contextText (typically extracted PDF
// text) contributes keyword tags; empty context is fine. The result always
// has exactly questionCount questions.
func BuildQuiz(topic string, difficulty Difficulty, questionCount int, quizType, contextText string) models.Quiz {
	if questionCount < 0 {
		questionCount = 0
	}
	keywords := ExtractKeywords(contextText)
	aspects := Aspects(topic, questionCount)

	questions := make([]models.Question, 0, questionCount)
	for i := 0; i < questionCount; i++ {
		questions = append(questions, SynthesizeQuestion(topic, aspects[i], i, difficulty, quizType))
	}

	tags := []string{Slug(topic), difficulty.String(), "educational", "comprehensive"}
	tags = append(tags, keywords...)

	prerequisites := "None"
	if difficulty != DifficultyEasy {
		prerequisites = "Basic understanding of " + topic
	}

	keywordSample := keywords
	if len(keywordSample) > 5 {
		keywordSample = keywordSample[:5]
	}

	return models.Quiz{
		Title: "Comprehensive Quiz: " + topic,
		Description: fmt.Sprintf("A detailed quiz covering various aspects of %s. "+
			"This quiz is designed to test understanding at %s level and covers "+
			"key concepts, applications, and principles.", topic, difficulty),
		Category:           string(Classify(topic)),
		Difficulty:         difficulty.String(),
		EstimatedTime:      float64(questionCount) * estimatedMinutesPerQuestion,
		TotalPoints:        questionCount * difficulty.Points(),
		LearningObjectives: LearningObjectives(topic, questionCount),
		Questions:          questions,
		Tags:               tags,
		Metadata: map[string]any{
			"educationalLevel": difficulty.EducationalLevel(),
			"prerequisites":    prerequisites,
			"targetAudience":   "Students, professionals, and lifelong learners",
			"generationMethod": "enhanced_fallback",
			"keywordsUsed":     keywordSample,
		},
	}
}

// LearningObjectives returns the first min(count, 8) objective statements
// for a topic. The objective count mirrors the question count.
func LearningObjectives(topic string, count int) []string {
	if count < 0 {
		count = 0
	}
	if count > len(objectiveTemplates) {
		count = len(objectiveTemplates)
	}
	objectives := make([]string, 0, count)
	for _, t := range objectiveTemplates[:count] {
		objectives = append(objectives, fmt.Sprintf(t, topic))
	}
	return objectives
}

var (
	keywordPattern   = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)
	keywordStopWords = map[string]bool{
		"this": true, "that": true, "with": true, "from": true, "have": true,
		"were": true, "their": true, "which": true, "about": true,
	}
)

// ExtractKeywords pulls the ten most frequent 4+-letter words out of free
// text, excluding a small stop-word set. Ties keep first-encountered order.
// Keywords are returned with the first letter upper-cased for use as tags.
func ExtractKeywords(text string) []string {
	if text == "" {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, word := range keywordPattern.FindAllString(strings.ToLower(text), -1) {
		if keywordStopWords[word] {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	// order is already first-encountered; a stable sort keeps that for ties.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > 10 {
		order = order[:10]
	}
	keywords := make([]string, 0, len(order))
	for _, w := range order {
		keywords = append(keywords, strings.ToUpper(w[:1])+w[1:])
	}
	return keywords
}

// SimpleQuestions produces a plain question list without the full quiz
// wrapper, used by the standalone question-generation path. Non-positive
// counts yield an empty list.
func SimpleQuestions(topic, quizType string, count int, difficulty Difficulty) []models.Question {
	if count < 0 {
		count = 0
	}
	aspects := Aspects(topic, count)

	questions := make([]models.Question, 0, count)
	for i := 0; i < count; i++ {
		aspect := aspects[i]
		questions = append(questions, models.Question{
			Text: fmt.Sprintf("What is important to know about %s in %s?", aspect, topic),
			Type: quizType,
			Options: []string{
				"Key concept A about " + aspect,
				"Key concept B about " + aspect,
				"Key concept C about " + aspect,
				"Key concept D about " + aspect,
			},
			CorrectAnswer: 0,
			Explanation:   fmt.Sprintf("This covers fundamental knowledge about %s in %s.", aspect, topic),
			Points:        difficulty.Points(),
			TimeLimit:     difficulty.TimeLimit(),
			Difficulty:    difficulty.String(),
			Category:      string(Classify(topic)),
		})
	}
	return questions
}
