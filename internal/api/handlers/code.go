// HTTP handler for POST /api/generate/code.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/gyanguru/gyanguru/internal/domain/tutor"
)

// CodeService is the pipeline contract the code handler depends on.
// *tutor.CodeService satisfies this interface.
type CodeService interface {
	Generate(ctx context.Context, algorithm, complexity string) (*tutor.CodeLesson, error)
}

// CodeHandler handles code-generation requests.
type CodeHandler struct {
	svc    CodeService
	logger *zap.Logger
}

// NewCodeHandler creates a CodeHandler.
func NewCodeHandler(svc CodeService, logger *zap.Logger) *CodeHandler {
	return &CodeHandler{svc: svc, logger: logger}
}

type generateCodeRequest struct {
	Algorithm  string `json:"algorithm"`
	Complexity string `json:"complexity"`
}

type codeResponse struct {
	Status            string   `json:"status"`
	Algorithm         string   `json:"algorithm"`
	Complexity        string   `json:"complexity"`
	Code              string   `json:"code"`
	Description       string   `json:"description"`
	Dependencies      []string `json:"dependencies"`
	Model             string   `json:"model"`
	Filename          string   `json:"filename"`
	SyntaxValid       bool     `json:"syntax_valid"`
	LineCount         int      `json:"line_count"`
	ColabInstructions string   `json:"colab_instructions"`
	LocalInstructions string   `json:"local_instructions"`
}

// Generate handles POST /api/generate/code.
func (h *CodeHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateCodeRequest
	decodeJSONBody(r, &req)

	algorithm := strings.TrimSpace(req.Algorithm)
	if algorithm == "" {
		WriteError(w, http.StatusBadRequest, "Algorithm name is required")
		return
	}
	complexity := req.Complexity
	if complexity == "" {
		complexity = "Detailed"
	}

	h.logger.Info("generating code",
		zap.String("algorithm", algorithm),
		zap.String("complexity", complexity))

	lesson, err := h.svc.Generate(r.Context(), algorithm, complexity)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, codeResponse{
		Status:            statusSuccess,
		Algorithm:         lesson.Algorithm,
		Complexity:        lesson.Complexity,
		Code:              lesson.Code,
		Description:       lesson.Description,
		Dependencies:      lesson.Dependencies,
		Model:             lesson.Model,
		Filename:          lesson.Filename,
		SyntaxValid:       lesson.SyntaxValid,
		LineCount:         lesson.LineCount,
		ColabInstructions: lesson.ColabInstructions,
		LocalInstructions: lesson.LocalInstructions,
	})
}
