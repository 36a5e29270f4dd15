// Package tutor implements the generation pipeline: one orchestration
// service per content type, sitting between the HTTP handlers and the
// generation adapters / artifact store.
package tutor

// UpstreamError reports that a generation adapter failed. The adapter's
// message is surfaced to the client verbatim with a 500 status; in
// multi-step pipelines the failing step aborts all remaining steps.
type UpstreamError struct {
	Step    string // "text_generation", "script_generation", "prompt_generation", ...
	Message string
}

func (e *UpstreamError) Error() string { return e.Message }

// ValidationError reports client input that was rejected before any adapter
// call. Mapped to a 400 status.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func upstream(step string, err error) error {
	return &UpstreamError{Step: step, Message: err.Error()}
}
