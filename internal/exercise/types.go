package exercise

import (
	"math"
	"strconv"
	"strings"
)

// Exercise is a generated practice exercise ready for the client.
type Exercise struct {
	// Statement is the exercise prompt shown to the student. Spanish,
	// plain text math notation, exactly one question. May contain
	// embedded line breaks.
	Statement string `json:"statement"`

	// Type classifies the exercise style.
	Type Type `json:"exerciseType"`
}

// Type is the exercise classification tag.
type Type string

const (
	TypeBasicProcedural    Type = "basic_procedural"
	TypeMixedRules         Type = "mixed_rules"
	TypeAppliedWordProblem Type = "applied_word_problem"
	TypeExamMultiStep      Type = "exam_multi_step"
)

// Valid reports whether t is one of the four allowed classification tags.
func (t Type) Valid() bool {
	switch t {
	case TypeBasicProcedural, TypeMixedRules, TypeAppliedWordProblem, TypeExamMultiStep:
		return true
	}
	return false
}

// Difficulty is the requested exercise difficulty.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// NormalizeDifficulty coerces a free-form difficulty string to one of the
// three levels, defaulting to medium.
func NormalizeDifficulty(s string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Request describes one exercise generation request after sanitization.
type Request struct {
	SubtopicID   string
	SubtopicName string
	Difficulty   Difficulty
	Index        int // always in {1, 2, 3}
	Goal         string
}

// ClampIndex coerces an arbitrary decoded JSON value to an exercise index
// in {1, 2, 3}. It is total: missing (nil), non-numeric, and NaN values
// become 1; fractional values are floored; out-of-range values clamp to
// the nearest bound.
func ClampIndex(v any) int {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 1
		}
		f = parsed
	default:
		return 1
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 1
	}

	i := int(math.Floor(f))
	if i < 1 {
		return 1
	}
	if i > 3 {
		return 3
	}
	return i
}
