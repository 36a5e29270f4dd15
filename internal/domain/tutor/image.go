package tutor

import (
	"context"
	"fmt"

	"github.com/gyanguru/gyanguru/internal/infra/llm"
)

// DefaultImageBackend is used when a request omits the backend selector.
const DefaultImageBackend = "gemini"

// PromptGenerator is the first adapter call of the image pipeline.
type PromptGenerator interface {
	ImagePrompts(ctx context.Context, concept string) ([]string, error)
}

// ImageStore persists generated images.
// *artifact.Store satisfies this interface.
type ImageStore interface {
	SaveImage(data []byte, mimeType, concept string, index int) (string, error)
}

// ImageService produces concept diagrams in two strictly ordered steps:
// prompt generation, then one synthesis call per prompt against the selected
// backend. A prompt failure aborts the pipeline before any synthesis call.
type ImageService struct {
	prompts  PromptGenerator
	backends map[string]llm.ImageSynthesizer
	store    ImageStore
}

// NewImageService creates an ImageService over the named synthesis backends.
func NewImageService(prompts PromptGenerator, backends map[string]llm.ImageSynthesizer, store ImageStore) *ImageService {
	return &ImageService{prompts: prompts, backends: backends, store: store}
}

// GeneratedImage describes one persisted diagram.
type GeneratedImage struct {
	Filename string
	MimeType string
	Prompt   string
}

// ImageLesson is the full result of the image pipeline.
type ImageLesson struct {
	Images  []GeneratedImage
	Prompts []string
	Concept string
	Backend string
}

// Generate runs the image pipeline. An empty backend selects the default;
// an unknown backend is rejected before any adapter call.
func (s *ImageService) Generate(ctx context.Context, concept, backend string) (*ImageLesson, error) {
	if backend == "" {
		backend = DefaultImageBackend
	}
	synth, ok := s.backends[backend]
	if !ok {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown image backend %q", backend)}
	}

	prompts, err := s.prompts.ImagePrompts(ctx, concept)
	if err != nil {
		return nil, upstream("prompt_generation", err)
	}

	images := make([]GeneratedImage, 0, len(prompts))
	for i, prompt := range prompts {
		result, err := synth.GenerateImage(ctx, prompt)
		if err != nil {
			return nil, upstream("image_synthesis", err)
		}
		filename, err := s.store.SaveImage(result.Data, result.MimeType, concept, i)
		if err != nil {
			return nil, fmt.Errorf("persist image artifact: %w", err)
		}
		images = append(images, GeneratedImage{
			Filename: filename,
			MimeType: result.MimeType,
			Prompt:   prompt,
		})
	}

	return &ImageLesson{
		Images:  images,
		Prompts: prompts,
		Concept: concept,
		Backend: backend,
	}, nil
}
