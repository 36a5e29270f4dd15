package tutor

import (
	"context"
	"fmt"

	"github.com/gyanguru/gyanguru/internal/artifact"
	"github.com/gyanguru/gyanguru/internal/infra/llm"
)

// CodeGenerator is the single adapter call the code pipeline makes.
type CodeGenerator interface {
	CodeExample(ctx context.Context, algorithm, complexity string) (*llm.CodeExample, error)
}

// CodeStore persists generated source and reports derived metadata.
// *artifact.Store satisfies this interface.
type CodeStore interface {
	SaveCode(code, algorithm string) (*artifact.CodeInfo, error)
}

// CodeService produces runnable code lessons: generate, persist, then attach
// run instructions. On adapter failure nothing is persisted.
type CodeService struct {
	gen   CodeGenerator
	store CodeStore
}

// NewCodeService creates a CodeService.
func NewCodeService(gen CodeGenerator, store CodeStore) *CodeService {
	return &CodeService{gen: gen, store: store}
}

// CodeLesson is the full result of the code pipeline.
type CodeLesson struct {
	Algorithm         string
	Complexity        string
	Code              string
	Description       string
	Dependencies      []string
	Model             string
	Filename          string
	SyntaxValid       bool
	LineCount         int
	ColabInstructions string
	LocalInstructions string
}

// Generate runs the code pipeline: adapter call, persistence with syntax
// check, then instruction synthesis parameterized by the saved filename and
// the adapter-reported dependency list.
func (s *CodeService) Generate(ctx context.Context, algorithm, complexity string) (*CodeLesson, error) {
	example, err := s.gen.CodeExample(ctx, algorithm, complexity)
	if err != nil {
		return nil, upstream("code_generation", err)
	}

	info, err := s.store.SaveCode(example.Code, algorithm)
	if err != nil {
		return nil, fmt.Errorf("persist code artifact: %w", err)
	}

	return &CodeLesson{
		Algorithm:         algorithm,
		Complexity:        example.Complexity,
		Code:              example.Code,
		Description:       example.Description,
		Dependencies:      example.Dependencies,
		Model:             example.Model,
		Filename:          info.Filename,
		SyntaxValid:       info.SyntaxValid,
		LineCount:         info.LineCount,
		ColabInstructions: ColabInstructions(info.Filename, example.Dependencies),
		LocalInstructions: LocalInstructions(info.Filename, example.Dependencies),
	}, nil
}
