package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"quizito/internal/models"
)

// questionTemplates are cycled by question index so consecutive questions
// vary in phrasing.
var questionTemplates = []string{
	"What is the primary concept of %[1]s regarding %[2]s?",
	"Which of the following best describes %[2]s in %[1]s?",
	"What is a key characteristic of %[1]s related to %[2]s?",
	"How does %[2]s function within %[1]s?",
	"What is the significance of %[2]s in understanding %[1]s?",
}

// distractorTemplates holds the wrong-answer wording per difficulty. Easy
// distractors are generic, hard ones reference the aspect itself to stay
// plausible. %[1]s is the topic, %[2]s the aspect; only the first three are
// used per question.
var distractorTemplates = map[Difficulty][]string{
	DifficultyEasy: {
		"A different aspect of %[1]s",
		"An unrelated concept to %[1]s",
		"A common misconception about %[1]s",
		"A basic principle of %[1]s",
	},
	DifficultyMedium: {
		"A related but incorrect aspect of %[1]s",
		"A partially correct concept about %[1]s",
		"An advanced but irrelevant concept in %[1]s",
		"A historical perspective on %[1]s",
	},
	DifficultyHard: {
		"A nuanced but incorrect interpretation of %[2]s",
		"A controversial viewpoint on %[1]s",
		"An advanced technical detail unrelated to %[2]s",
		"A theoretical concept that doesn't apply to %[2]s",
	},
}

var explanationTemplates = map[Difficulty]string{
	DifficultyEasy: "This is correct because understanding %[2]s is fundamental to %[1]s. " +
		"It represents a basic principle that forms the foundation for more advanced concepts.",
	DifficultyMedium: "The correct answer relates to %[2]s, which is a key component of %[1]s. " +
		"This aspect is important because it connects various concepts within %[1]s " +
		"and demonstrates practical applications.",
	DifficultyHard: "This answer correctly identifies %[2]s, which involves complex interplay " +
		"within %[1]s. Understanding this requires knowledge of underlying principles, " +
		"contextual factors, and potential implications in advanced scenarios of %[1]s.",
}

var tipTemplates = []string{
	"To better understand %[2]s in %[1]s, try relating it to practical examples.",
	"Consider how %[2]s connects to other concepts within %[1]s for deeper understanding.",
	"Research real-world applications of %[2]s to see how %[1]s is used in practice.",
	"Create mind maps linking %[2]s to related concepts in %[1]s.",
	"Discuss %[2]s with peers to gain different perspectives on %[1]s.",
}

// SynthesizeQuestion builds one multiple-choice question for an aspect of a
// topic. index selects the phrasing template; difficulty drives the
// distractor wording, points, and time limit. The correct option is always
// reported at index 0.
func SynthesizeQuestion(topic, aspect string, index int, difficulty Difficulty, quizType string) models.Question {
	template := questionTemplates[index%len(questionTemplates)]

	return models.Question{
		Text:           fmt.Sprintf(template, topic, aspect),
		Type:           quizType,
		Options:        buildOptions(topic, aspect, difficulty),
		CorrectAnswer:  0,
		Explanation:    Explanation(topic, aspect, difficulty),
		Points:         difficulty.Points(),
		TimeLimit:      difficulty.TimeLimit(),
		Difficulty:     difficulty.String(),
		Category:       string(Classify(topic)),
		Tags:           []string{Slug(topic), Slug(aspect), difficulty.String()},
		EducationalTip: EducationalTip(topic, aspect),
	}
}

// buildOptions assembles the 4-option list. The candidate list is shuffled
// and the correct option is then moved back to index 0; consumers rely on
// the correct answer being first.
func buildOptions(topic, aspect string, difficulty Difficulty) []string {
	correct := "The " + aspect

	templates := distractorTemplates[difficulty]
	options := []string{correct}
	for _, t := range templates[:3] {
		options = append(options, fmt.Sprintf(t, topic, aspect))
	}

	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	for i, opt := range options {
		if opt == correct && i != 0 {
			copy(options[1:i+1], options[:i])
			options[0] = correct
			break
		}
	}
	return options
}

// Explanation produces the canned answer explanation for a topic/aspect pair
// at the given difficulty.
func Explanation(topic, aspect string, difficulty Difficulty) string {
	return fmt.Sprintf(explanationTemplates[difficulty], topic, aspect)
}

// EducationalTip picks a study tip deterministically from the aspect string
// length.
func EducationalTip(topic, aspect string) string {
	return fmt.Sprintf(tipTemplates[len(aspect)%len(tipTemplates)], topic, aspect)
}

// Slug lower-cases a string and replaces spaces with hyphens, for use in
// tags.
func Slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}
