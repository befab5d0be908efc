// Package httpapi exposes the practice API over HTTP.
//
// The boundary has one availability rule: a request that reaches a
// handler always gets HTTP 200 with a well-formed payload, genuine or
// fallback. The only non-200 status is 405 for a wrong method.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/mathcoach/mathcoach/internal/exercise"
	"github.com/mathcoach/mathcoach/internal/grading"
)

// Deps holds everything the router needs.
type Deps struct {
	Exercises *exercise.Service
	Grades    *grading.Service
	Logger    *zap.Logger
}

// NewRouter builds the API router.
func NewRouter(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(requestLogger(logger))

	r.MethodNotAllowed(methodNotAllowedHandler)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/exercises/generate", GenerateExerciseHandler(deps.Exercises, logger))
		r.Post("/answers/evaluate", EvaluateAnswerHandler(deps.Grades, logger))
	})

	return r
}

// methodNotAllowedHandler rejects wrong methods before any body
// processing, advertising the accepted method.
func methodNotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	w.WriteHeader(http.StatusMethodNotAllowed)
}
