package grading

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/mathcoach/mathcoach/internal/llm"
)

// Service grades photographed handwritten solutions through a multimodal
// LLM provider. Evaluate never fails: every path ends in a well-formed
// Evaluation, genuine or fallback.
type Service struct {
	provider llm.Provider
	fetcher  ImageFetcher
	logger   *zap.Logger
	config   Config
}

// NewService creates an evaluation Service. provider may be nil (no
// credential configured); every request then resolves to fallback
// without any network activity.
func NewService(provider llm.Provider, fetcher ImageFetcher, logger *zap.Logger, cfg Config) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fetcher == nil {
		fetcher = NewHTTPFetcher(nil)
	}
	return &Service{provider: provider, fetcher: fetcher, logger: logger, config: cfg}
}

// evaluationOutput is the raw LLM response before validation.
type evaluationOutput struct {
	Result          string        `json:"result"`
	Score           flexibleScore `json:"score"`
	FeedbackSummary string        `json:"feedbackSummary"`
}

// Evaluate grades one answer for the given request.
func (s *Service) Evaluate(ctx context.Context, req Request) Evaluation {
	req.Index = clampInt(req.Index)
	req.Statement = strings.TrimSpace(req.Statement)
	req.ImageURL = strings.TrimSpace(req.ImageURL)

	// Required inputs and credential are checked before any network
	// activity: no image fetch, no completion call.
	if req.Statement == "" || req.ImageURL == "" {
		s.logger.Warn("evaluation request missing statement or image URL, serving fallback",
			zap.Int("index", req.Index))
		return Fallback(req.Index)
	}
	if s.provider == nil {
		s.logger.Warn("no LLM provider configured, serving fallback grade",
			zap.Int("index", req.Index))
		return Fallback(req.Index)
	}

	img, err := s.fetcher.Fetch(ctx, req.ImageURL)
	if err != nil {
		s.logger.Warn("answer image fetch failed, serving fallback",
			zap.Int("index", req.Index), zap.Error(err))
		return Fallback(req.Index)
	}

	ctx = llm.WithPurpose(ctx, "answer-eval")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{
				Role:    llm.RoleUser,
				Content: buildUserMessage(req),
				Images:  []llm.ImagePart{*img},
			},
		},
		Schema:      Schema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		s.logger.Warn("answer evaluation failed, serving fallback",
			zap.Int("index", req.Index), zap.Error(err))
		return Fallback(req.Index)
	}

	ev, ok := s.validate(resp.Content)
	if !ok {
		s.logger.Warn("invalid evaluation response, serving fallback",
			zap.Int("index", req.Index), zap.ByteString("content", resp.Content))
		return Fallback(req.Index)
	}
	return ev
}

// validate parses raw content into an Evaluation. Any single violation
// invalidates the whole response; partially-valid output gets no credit.
func (s *Service) validate(content json.RawMessage) (Evaluation, bool) {
	var raw evaluationOutput
	if err := json.Unmarshal(content, &raw); err != nil {
		return Evaluation{}, false
	}

	result := Result(raw.Result)
	if !result.Valid() {
		return Evaluation{}, false
	}

	score, ok := clampScore(raw.Score)
	if !ok {
		return Evaluation{}, false
	}

	feedback := strings.TrimSpace(raw.FeedbackSummary)
	if feedback == "" {
		return Evaluation{}, false
	}

	return Evaluation{Result: result, Score: score, FeedbackSummary: feedback}, true
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
