package structgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/youthtopro/swotter/internal/llm"
	"github.com/youthtopro/swotter/internal/swot"
)

// Service generates personalized SWOT question sets from a career goal.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a question-set generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type questionItemOutput struct {
	Question     string `json:"question"`
	SampleAnswer string `json:"sample_answer"`
}

type structureOutput struct {
	Strengths     []questionItemOutput `json:"strengths"`
	Weaknesses    []questionItemOutput `json:"weaknesses"`
	Opportunities []questionItemOutput `json:"opportunities"`
	Threats       []questionItemOutput `json:"threats"`
}

// Generate produces a question structure tailored to the career goal.
// The returned structure always has all four categories populated; a
// response missing a category is rejected as invalid.
func (s *Service) Generate(ctx context.Context, goal string) (swot.Structure, error) {
	ctx = llm.WithPurpose(ctx, "swot-structure")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(goal)},
		},
		Schema:      StructureSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question set generation: %w", err)
	}

	var out structureOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse question set response: %w", err)
	}

	structure := swot.Structure{
		swot.CategoryStrengths:     toQuestionItems(out.Strengths),
		swot.CategoryWeaknesses:    toQuestionItems(out.Weaknesses),
		swot.CategoryOpportunities: toQuestionItems(out.Opportunities),
		swot.CategoryThreats:       toQuestionItems(out.Threats),
	}

	for _, c := range swot.Categories() {
		if len(structure[c]) == 0 {
			return nil, &llm.ErrInvalidResponse{
				Content: resp.Content,
				Err:     fmt.Errorf("no %s questions in response", c),
			}
		}
	}

	return structure, nil
}

func toQuestionItems(items []questionItemOutput) []swot.QuestionItem {
	out := make([]swot.QuestionItem, len(items))
	for i, item := range items {
		out[i] = swot.QuestionItem{
			Question:     item.Question,
			SampleAnswer: item.SampleAnswer,
		}
	}
	return out
}
