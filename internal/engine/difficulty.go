package engine

import "strings"

// Difficulty is the closed set of quiz difficulty levels. All per-difficulty
// values (points, time limits, wording) live in one table keyed by it.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty normalizes a free-form difficulty string. Unrecognized
// values map to medium.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

type difficultyProfile struct {
	points    int
	timeLimit int // seconds per question
	level     string
}

var difficultyProfiles = map[Difficulty]difficultyProfile{
	DifficultyEasy:   {points: 100, timeLimit: 30, level: "Beginner/Introductory"},
	DifficultyMedium: {points: 150, timeLimit: 45, level: "Intermediate"},
	DifficultyHard:   {points: 200, timeLimit: 60, level: "Advanced/Expert"},
}

// Points returns the per-question point value for the difficulty.
func (d Difficulty) Points() int { return difficultyProfiles[d].points }

// TimeLimit returns the per-question time limit in seconds.
func (d Difficulty) TimeLimit() int { return difficultyProfiles[d].timeLimit }

// EducationalLevel returns the human-readable level used in quiz metadata.
func (d Difficulty) EducationalLevel() string { return difficultyProfiles[d].level }

func (d Difficulty) String() string { return string(d) }
