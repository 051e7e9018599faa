package domain

import "strings"

// Difficulty selects how many cells the carver tries to open.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Removals is the target number of opened cells for a difficulty.
// Unknown values fall back to Medium.
func (d Difficulty) Removals() int {
	switch d {
	case Easy:
		return 35
	case Hard:
		return 53
	default:
		return 45
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a label to a Difficulty, defaulting to Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}
