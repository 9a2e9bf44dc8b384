// Package engine implements the deterministic quiz content engine: topic
// classification, aspect derivation, question and quiz synthesis, text
// analysis, enhancement passes, and topic recommendations. Every function is
// a pure transform over its inputs; the only state is a set of static lookup
// tables, so concurrent calls are safe.
package engine

import "strings"

// Category is the closed set of broad topic categories.
type Category string

const (
	CategoryTechnology Category = "Technology"
	CategoryScience    Category = "Science"
	CategoryHistory    Category = "History"
	CategoryMath       Category = "Mathematics"
	CategoryBusiness   Category = "Business"
	CategoryGeneral    Category = "General"
)

// categoryKeywords is checked in declaration order; the first category with
// a keyword contained in the lower-cased topic wins.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryTechnology, []string{
		"programming", "software", "computer", "ai", "machine learning",
		"data science", "web", "mobile", "cloud", "cybersecurity",
	}},
	{CategoryScience, []string{
		"biology", "chemistry", "physics", "astronomy", "geology",
		"environmental", "medical", "neuroscience",
	}},
	{CategoryHistory, []string{
		"historical", "war", "civilization", "ancient", "medieval",
		"modern", "political", "cultural",
	}},
	{CategoryMath, []string{
		"math", "algebra", "calculus", "statistics", "geometry",
	}},
	{CategoryBusiness, []string{
		"marketing", "finance", "management", "economics", "entrepreneurship",
	}},
}

// Classify maps a free-text topic to a Category by substring keyword match.
// Topics matching no keyword list fall through to General.
func Classify(topic string) Category {
	lower := strings.ToLower(topic)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.category
			}
		}
	}
	return CategoryGeneral
}

// aspectFragments lists the sub-theme fragments per category. Categories
// without their own list (Mathematics, Business, General) use the general
// list.
var aspectFragments = map[Category][]string{
	CategoryTechnology: {
		"fundamentals", "applications", "architecture", "security", "performance",
		"implementation", "best practices", "trends", "tools", "methodologies",
	},
	CategoryScience: {
		"principles", "theories", "experiments", "discoveries", "applications",
		"methodologies", "impact", "research", "concepts", "phenomena",
	},
	CategoryHistory: {
		"events", "figures", "periods", "causes", "consequences", "themes",
		"movements", "cultures", "developments", "interpretations",
	},
}

var generalFragments = []string{
	"basics", "advanced concepts", "practical applications", "common mistakes",
	"best practices", "tools", "resources", "career aspects", "future trends",
}

// Aspects derives count ordered sub-themes for a topic, cycling through the
// category's fragment list when count exceeds it. Output is stable for a
// given (topic, count) pair; callers index into it. Non-positive counts
// yield an empty list.
func Aspects(topic string, count int) []string {
	if count < 0 {
		count = 0
	}
	fragments, ok := aspectFragments[Classify(topic)]
	if !ok {
		fragments = generalFragments
	}

	aspects := make([]string, 0, count)
	for i := 0; i < count; i++ {
		aspects = append(aspects, fragments[i%len(fragments)]+" of "+topic)
	}
	return aspects
}
