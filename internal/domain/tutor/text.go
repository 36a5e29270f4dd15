package tutor

import (
	"context"

	"github.com/gyanguru/gyanguru/internal/infra/llm"
)

// Explainer is the single adapter call the text pipeline makes.
type Explainer interface {
	Explain(ctx context.Context, topic, depth string) (*llm.Explanation, error)
}

// TextService produces subject explanations. No persistence: the adapter
// result is returned to the client as-is.
type TextService struct {
	gen Explainer
}

// NewTextService creates a TextService.
func NewTextService(gen Explainer) *TextService {
	return &TextService{gen: gen}
}

// Explain runs the single-step text pipeline.
func (s *TextService) Explain(ctx context.Context, topic, depth string) (*llm.Explanation, error) {
	result, err := s.gen.Explain(ctx, topic, depth)
	if err != nil {
		return nil, upstream("text_generation", err)
	}
	return result, nil
}
