// Package llm defines the model-agnostic generation adapter abstraction.
// All types here are shared between the adapter interfaces and their
// implementations (Gemini, OpenAI-compatible, pollinations).
package llm

// Explanation is the result of a text-explanation call.
type Explanation struct {
	Topic       string `json:"topic"`
	Depth       string `json:"depth"` // canonical preset name actually used
	Explanation string `json:"explanation"`
	Model       string `json:"model"`
}

// CodeExample is the result of a code-generation call.
type CodeExample struct {
	Algorithm    string   `json:"algorithm"`
	Complexity   string   `json:"complexity"`
	Code         string   `json:"code"`
	Description  string   `json:"description"`
	Dependencies []string `json:"dependencies"`
	Model        string   `json:"model"`
}

// SpeechResult is the raw synthesized audio returned by a speech adapter.
// Persistence is the caller's concern; adapters never touch disk.
type SpeechResult struct {
	Data     []byte
	MimeType string
	Model    string
	Voice    string
}

// ImageResult is a single generated image returned by an image adapter.
type ImageResult struct {
	Data     []byte
	MimeType string
	Backend  string
}

// Message represents a single turn in a conversation (role + content).
type Message struct {
	Role    string // "system" | "user" | "assistant"
	Content string
}

// ChatRequest is the input for a non-streaming chat completion.
type ChatRequest struct {
	// Model overrides the client default when non-empty.
	Model       string
	Messages    []Message
	Temperature float32
	MaxTokens   int
}

// ChatResponse is the output from a non-streaming chat completion.
type ChatResponse struct {
	Content    string // The assistant message text.
	StopReason string // "stop" | "length" | "error"
	Tokens     int    // Total tokens consumed (prompt + completion).
}
