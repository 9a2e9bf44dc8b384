package engine

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"quizito/internal/models"
)

var (
	sentencePattern = regexp.MustCompile(`[.!?]+`)
	topicPattern    = regexp.MustCompile(`\b[A-Z][a-z]{3,}\b`)

	topicStopWords = map[string]bool{
		"This": true, "That": true, "With": true, "From": true, "Have": true,
		"Were": true, "Their": true, "Which": true, "About": true, "There": true,
	}

	technicalTerms = []string{
		"algorithm", "protocol", "architecture", "framework", "syntax",
		"theorem", "hypothesis", "methodology", "quantitative", "analysis",
	}
)

// AnalyzeText computes statistics and heuristic classifications over
// extracted document text. Empty input yields zeroed statistics, low
// complexity, and a Non-Technical level; the function never fails.
func AnalyzeText(fullText string, pages []string) models.PDFAnalysis {
	words := strings.Fields(fullText)
	sentences := splitSentences(fullText)

	var avgWordLen, avgSentenceLen float64
	if len(words) > 0 {
		total := 0
		for _, w := range words {
			total += len(w)
		}
		avgWordLen = round2(float64(total) / float64(len(words)))
	}
	if len(sentences) > 0 {
		avgSentenceLen = round2(float64(len(words)) / float64(len(sentences)))
	}

	complexity := "low"
	switch {
	case avgWordLen > 5 && avgSentenceLen > 15:
		complexity = "high"
	case avgWordLen > 4:
		complexity = "medium"
	}

	return models.PDFAnalysis{
		Statistics: models.PDFStatistics{
			TotalPages:            len(pages),
			TotalWords:            len(words),
			TotalSentences:        len(sentences),
			AverageWordLength:     avgWordLen,
			AverageSentenceLength: avgSentenceLen,
		},
		ContentAnalysis: models.PDFContentAnalysis{
			Type:           contentType(fullText),
			Complexity:     complexity,
			TechnicalLevel: technicalLevel(fullText),
		},
		PotentialTopics: potentialTopics(fullText),
		KeyThemes:       keyThemes(sentences),
	}
}

func splitSentences(text string) []string {
	var sentences []string
	for _, s := range sentencePattern.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// contentType buckets text into a broad content category; first matching
// bucket wins.
func contentType(text string) string {
	lower := strings.ToLower(text)
	buckets := []struct {
		label    string
		keywords []string
	}{
		{"Technology/Programming", []string{"algorithm", "code", "programming", "software"}},
		{"Scientific/Research", []string{"experiment", "research", "study", "scientific"}},
		{"Historical", []string{"historical", "century", "war", "civilization"}},
		{"Business/Economics", []string{"business", "market", "financial", "economic"}},
	}
	for _, bucket := range buckets {
		for _, keyword := range bucket.keywords {
			if strings.Contains(lower, keyword) {
				return bucket.label
			}
		}
	}
	return "General/Educational"
}

// technicalLevel grades text by how often a fixed technical vocabulary
// occurs in it.
func technicalLevel(text string) string {
	lower := strings.ToLower(text)
	count := 0
	for _, term := range technicalTerms {
		count += strings.Count(lower, term)
	}
	switch {
	case count > 10:
		return "Advanced Technical"
	case count > 5:
		return "Intermediate Technical"
	case count > 0:
		return "Basic Technical"
	default:
		return "Non-Technical"
	}
}

// potentialTopics ranks capitalized words of length >= 4 by frequency and
// returns the top ten.
func potentialTopics(text string) []string {
	counts := make(map[string]int)
	var order []string
	for _, word := range topicPattern.FindAllString(text, -1) {
		if topicStopWords[word] {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 10 {
		order = order[:10]
	}
	return order
}

// keyThemes collects capitalized non-initial words from the first 50
// sentences, skipping words that follow an article. Deduplicated in
// first-seen order, capped at ten.
func keyThemes(sentences []string) []string {
	if len(sentences) > 50 {
		sentences = sentences[:50]
	}

	seen := make(map[string]bool)
	var themes []string
	for _, sentence := range sentences {
		words := strings.Fields(sentence)
		if len(words) <= 5 {
			continue
		}
		for i := 1; i < len(words); i++ {
			word := words[i]
			if len(word) <= 3 {
				continue
			}
			first := []rune(word)[0]
			if !unicode.IsUpper(first) {
				continue
			}
			prev := words[i-1]
			if prev == "the" || prev == "a" || prev == "an" {
				continue
			}
			if !seen[word] {
				seen[word] = true
				themes = append(themes, word)
			}
		}
	}
	if len(themes) > 10 {
		themes = themes[:10]
	}
	return themes
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
