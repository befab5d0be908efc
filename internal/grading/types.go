package grading

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/mathcoach/mathcoach/internal/exercise"
)

// Result is the grade category.
type Result string

const (
	ResultCorrect   Result = "correct"
	ResultPartial   Result = "partial"
	ResultIncorrect Result = "incorrect"
)

// Valid reports whether r is one of the three allowed grade categories.
func (r Result) Valid() bool {
	switch r {
	case ResultCorrect, ResultPartial, ResultIncorrect:
		return true
	}
	return false
}

// Request describes one evaluation request after sanitization.
type Request struct {
	// Statement is the exercise the student solved. Required.
	Statement string

	// UserAnswer is the student's typed answer, if any.
	UserAnswer string

	// ImageURL points at the photo of the handwritten solution. Required.
	ImageURL string

	// SubtopicName defaults to "Derivadas" when empty.
	SubtopicName string

	Difficulty exercise.Difficulty
	Index      int // always in {1, 2, 3}
}

// Evaluation is the structured grade returned to the client.
type Evaluation struct {
	Result Result `json:"result"`

	// Score is an integer in [0, 100].
	Score int `json:"score"`

	// FeedbackSummary is 1-2 sentences of Spanish feedback.
	FeedbackSummary string `json:"feedbackSummary"`
}

// flexibleScore accepts a JSON number or a numeric string ("85"); models
// do not reliably honor the numeric type despite instructions.
type flexibleScore struct {
	value float64
	ok    bool
}

func (f *flexibleScore) UnmarshalJSON(b []byte) error {
	// json.Unmarshal treats null as a no-op success for float64, so a
	// null score must be rejected before the number attempt.
	if string(b) == "null" {
		return nil
	}

	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		f.value, f.ok = n, true
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if parsed, perr := strconv.ParseFloat(strings.TrimSpace(s), 64); perr == nil {
			f.value, f.ok = parsed, true
		}
	}

	// Other JSON kinds leave ok=false; the caller falls back.
	return nil
}

// clampScore rounds to the nearest integer and clamps into [0, 100].
// Non-finite values report ok=false.
func clampScore(f flexibleScore) (int, bool) {
	if !f.ok || math.IsNaN(f.value) || math.IsInf(f.value, 0) {
		return 0, false
	}
	score := int(math.Round(f.value))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, true
}
