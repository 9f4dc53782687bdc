package suggest

import (
	"context"
	"fmt"

	"github.com/youthtopro/swotter/internal/llm"
	"github.com/youthtopro/swotter/internal/swot"
)

// Config holds suggestion generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for suggestion generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   300,
		Temperature: 0.7,
	}
}

// Service generates reflection hints for a category the mentee is stuck on.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a suggestion service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Suggest returns 3-5 short suggestions for the category, tailored to the
// career goal and the section's guiding questions. The response is freeform
// text parsed into bullet lines.
func (s *Service) Suggest(ctx context.Context, c swot.Category, goal string, questions []string) ([]string, error) {
	ctx = llm.WithPurpose(ctx, "suggestions")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(c, goal, questions)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("suggestion generation: %w", err)
	}

	suggestions := parseBullets(string(resp.Content))
	if len(suggestions) == 0 {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("no suggestions in response"),
		}
	}
	return suggestions, nil
}
