package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/mathcoach/mathcoach/internal/exercise"
	"github.com/mathcoach/mathcoach/internal/grading"
)

// GenerateExerciseHandler serves POST /api/exercises/generate.
func GenerateExerciseHandler(svc *exercise.Service, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body generateExerciseReq
		if err := decodeBody(r, &body); err != nil {
			// A malformed body short-circuits to the default-index
			// fallback; the contract is 200 with a usable exercise.
			logger.Warn("malformed generation request body", zap.Error(err))
			writeJSON(w, logger, exercise.Fallback(1))
			return
		}

		writeJSON(w, logger, svc.Generate(r.Context(), body.sanitize()))
	}
}

// EvaluateAnswerHandler serves POST /api/answers/evaluate.
func EvaluateAnswerHandler(svc *grading.Service, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body evaluateAnswerReq
		if err := decodeBody(r, &body); err != nil {
			logger.Warn("malformed evaluation request body", zap.Error(err))
			writeJSON(w, logger, grading.Fallback(1))
			return
		}

		writeJSON(w, logger, svc.Evaluate(r.Context(), body.sanitize()))
	}
}

// decodeBody decodes a JSON request body. An entirely empty body is
// treated like {}: all fields take their defaults.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Warn("write response", zap.Error(err))
	}
}
