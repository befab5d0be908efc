package httpapi

import (
	"github.com/mathcoach/mathcoach/internal/exercise"
	"github.com/mathcoach/mathcoach/internal/grading"
)

// generateExerciseReq is the raw, untyped generation request body.
// exerciseIndex is decoded as any: clients send numbers, strings, or
// nothing at all, and sanitization is total.
type generateExerciseReq struct {
	SubtopicID    string `json:"subtopicId"`
	SubtopicName  string `json:"subtopicName"`
	Difficulty    string `json:"difficulty"`
	ExerciseIndex any    `json:"exerciseIndex"`
	Goal          string `json:"goal"`
}

func (b generateExerciseReq) sanitize() exercise.Request {
	return exercise.Request{
		SubtopicID:   b.SubtopicID,
		SubtopicName: b.SubtopicName,
		Difficulty:   exercise.NormalizeDifficulty(b.Difficulty),
		Index:        exercise.ClampIndex(b.ExerciseIndex),
		Goal:         b.Goal,
	}
}

// evaluateAnswerReq is the raw, untyped evaluation request body.
type evaluateAnswerReq struct {
	Statement     string `json:"statement"`
	UserAnswer    string `json:"userAnswer"`
	ImageURL      string `json:"imageUrl"`
	SubtopicName  string `json:"subtopicName"`
	Difficulty    string `json:"difficulty"`
	ExerciseIndex any    `json:"exerciseIndex"`
}

func (b evaluateAnswerReq) sanitize() grading.Request {
	return grading.Request{
		Statement:    b.Statement,
		UserAnswer:   b.UserAnswer,
		ImageURL:     b.ImageURL,
		SubtopicName: b.SubtopicName,
		Difficulty:   exercise.NormalizeDifficulty(b.Difficulty),
		Index:        exercise.ClampIndex(b.ExerciseIndex),
	}
}
