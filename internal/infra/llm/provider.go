// Package llm — adapter interfaces.
// Implementations (Gemini, OpenAI-compatible, pollinations) satisfy these so
// the orchestration services are never coupled to a specific vendor.
package llm

import "context"

// TextGenerator covers the four text-model calls the pipeline makes.
// Each method is a single opaque request/response call; a non-nil error means
// the adapter reported failure and its message is surfaced to the client.
type TextGenerator interface {
	// Explain produces a structured subject explanation for a topic.
	Explain(ctx context.Context, topic, depth string) (*Explanation, error)

	// CodeExample produces a runnable implementation of an algorithm,
	// with its dependency list.
	CodeExample(ctx context.Context, algorithm, complexity string) (*CodeExample, error)

	// AudioScript produces a narration script for a topic.
	AudioScript(ctx context.Context, topic, length string) (string, error)

	// ImagePrompts produces a list of image-generation prompts for a concept.
	ImagePrompts(ctx context.Context, concept string) ([]string, error)
}

// SpeechSynthesizer converts a narration script into audio bytes.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, script string) (*SpeechResult, error)
}

// ImageSynthesizer renders a single prompt into an image.
type ImageSynthesizer interface {
	GenerateImage(ctx context.Context, prompt string) (*ImageResult, error)
}

// ChatCompleter performs a non-streaming conversational completion.
// Used by the standalone tutorchat program only.
type ChatCompleter interface {
	ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}
