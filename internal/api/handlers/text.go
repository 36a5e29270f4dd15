// HTTP handler for POST /api/generate/text.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/gyanguru/gyanguru/internal/infra/llm"
)

// TextService is the pipeline contract the text handler depends on.
// *tutor.TextService satisfies this interface.
type TextService interface {
	Explain(ctx context.Context, topic, depth string) (*llm.Explanation, error)
}

// TextHandler handles text-explanation generation requests.
type TextHandler struct {
	svc    TextService
	logger *zap.Logger
}

// NewTextHandler creates a TextHandler.
func NewTextHandler(svc TextService, logger *zap.Logger) *TextHandler {
	return &TextHandler{svc: svc, logger: logger}
}

type generateTextRequest struct {
	Topic string `json:"topic"`
	Depth string `json:"depth"`
}

type textResponse struct {
	Status      string `json:"status"`
	Topic       string `json:"topic"`
	Depth       string `json:"depth"`
	Explanation string `json:"explanation"`
	Model       string `json:"model"`
}

// Generate handles POST /api/generate/text.
func (h *TextHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateTextRequest
	decodeJSONBody(r, &req)

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		WriteError(w, http.StatusBadRequest, "Topic is required")
		return
	}
	depth := req.Depth
	if depth == "" {
		depth = "Comprehensive"
	}

	h.logger.Info("generating text explanation",
		zap.String("topic", topic),
		zap.String("depth", depth))

	result, err := h.svc.Explain(r.Context(), topic, depth)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, textResponse{
		Status:      statusSuccess,
		Topic:       result.Topic,
		Depth:       result.Depth,
		Explanation: result.Explanation,
		Model:       result.Model,
	})
}
