// HTTP handler for POST /api/generate/image.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/gyanguru/gyanguru/internal/domain/tutor"
)

// ImageService is the pipeline contract the image handler depends on.
// *tutor.ImageService satisfies this interface.
type ImageService interface {
	Generate(ctx context.Context, concept, backend string) (*tutor.ImageLesson, error)
}

// ImageHandler handles diagram-generation requests.
type ImageHandler struct {
	svc    ImageService
	logger *zap.Logger
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(svc ImageService, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{svc: svc, logger: logger}
}

type generateImageRequest struct {
	Concept string `json:"concept"`
	Backend string `json:"backend"`
}

type imageInfo struct {
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	Prompt   string `json:"prompt"`
}

type imageResponse struct {
	Status  string      `json:"status"`
	Images  []imageInfo `json:"images"`
	Prompts []string    `json:"prompts"`
	Concept string      `json:"concept"`
	Backend string      `json:"backend"`
}

// Generate handles POST /api/generate/image.
func (h *ImageHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateImageRequest
	decodeJSONBody(r, &req)

	concept := strings.TrimSpace(req.Concept)
	if concept == "" {
		WriteError(w, http.StatusBadRequest, "Concept is required")
		return
	}
	backend := req.Backend
	if backend == "" {
		backend = tutor.DefaultImageBackend
	}

	h.logger.Info("generating images",
		zap.String("concept", concept),
		zap.String("backend", backend))

	lesson, err := h.svc.Generate(r.Context(), concept, backend)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	images := make([]imageInfo, len(lesson.Images))
	for i, img := range lesson.Images {
		images[i] = imageInfo{Filename: img.Filename, MimeType: img.MimeType, Prompt: img.Prompt}
	}

	writeJSON(w, http.StatusOK, imageResponse{
		Status:  statusSuccess,
		Images:  images,
		Prompts: lesson.Prompts,
		Concept: lesson.Concept,
		Backend: lesson.Backend,
	})
}
