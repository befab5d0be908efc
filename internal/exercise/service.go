package exercise

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/mathcoach/mathcoach/internal/llm"
	"github.com/mathcoach/mathcoach/internal/subtopic"
)

// Service generates practice exercises through an LLM provider, falling
// back to deterministic records when the provider cannot produce a
// trustworthy result. Generate never fails: every path ends in a
// well-formed Exercise.
type Service struct {
	provider  llm.Provider
	subtopics subtopic.Resolver
	logger    *zap.Logger
	config    Config
}

// NewService creates a generation Service. provider may be nil (no
// credential configured); every request then resolves to fallback.
// subtopics may be nil; prompts then carry no curricular context.
func NewService(provider llm.Provider, subtopics subtopic.Resolver, logger *zap.Logger, cfg Config) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, subtopics: subtopics, logger: logger, config: cfg}
}

// generationOutput is the raw LLM response before validation.
type generationOutput struct {
	Statement    string `json:"statement"`
	ExerciseType string `json:"exerciseType"`
}

// Generate produces one exercise for the given request.
func (s *Service) Generate(ctx context.Context, req Request) Exercise {
	req.Index = clampInt(req.Index)

	if s.provider == nil {
		s.logger.Warn("no LLM provider configured, serving fallback exercise",
			zap.Int("index", req.Index))
		return Fallback(req.Index)
	}

	rec := s.resolveContext(ctx, req)

	ctx = llm.WithPurpose(ctx, "exercise-gen")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req, rec)},
		},
		Schema:      Schema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		s.logger.Warn("exercise generation failed, serving fallback",
			zap.Int("index", req.Index), zap.Error(err))
		return Fallback(req.Index)
	}

	var raw generationOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		s.logger.Warn("unparsable generation response, serving fallback",
			zap.Int("index", req.Index), zap.Error(err))
		return Fallback(req.Index)
	}

	statement := strings.TrimSpace(raw.Statement)
	if statement == "" {
		s.logger.Warn("empty statement in generation response, serving fallback",
			zap.Int("index", req.Index))
		return Fallback(req.Index)
	}

	typ := Type(raw.ExerciseType)
	if !typ.Valid() {
		hint := TypeHint(req.SubtopicName, req.Index)
		s.logger.Debug("unknown exercise type from model, using computed hint",
			zap.String("got", raw.ExerciseType), zap.String("hint", string(hint)))
		typ = hint
	}

	return Exercise{Statement: statement, Type: typ}
}

// resolveContext fetches curricular context for the prompt. Lookups by ID
// win over approximate name matches. Store errors degrade to no context:
// they affect prompt richness, never request correctness.
func (s *Service) resolveContext(ctx context.Context, req Request) *subtopic.Record {
	if s.subtopics == nil {
		return nil
	}

	if req.SubtopicID != "" {
		rec, err := s.subtopics.GetByID(ctx, req.SubtopicID)
		if err != nil {
			s.logger.Warn("subtopic lookup by ID failed",
				zap.String("subtopic_id", req.SubtopicID), zap.Error(err))
		} else if rec != nil {
			return rec
		}
	}

	if req.SubtopicName != "" {
		rec, err := s.subtopics.FindByName(ctx, req.SubtopicName)
		if err != nil {
			s.logger.Warn("subtopic lookup by name failed",
				zap.String("subtopic_name", req.SubtopicName), zap.Error(err))
			return nil
		}
		return rec
	}

	return nil
}

// clampInt clamps an already-int index into {1, 2, 3}.
func clampInt(i int) int {
	if i < 1 {
		return 1
	}
	if i > 3 {
		return 3
	}
	return i
}
