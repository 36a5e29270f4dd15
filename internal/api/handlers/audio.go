// HTTP handler for POST /api/generate/audio.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/gyanguru/gyanguru/internal/domain/tutor"
)

// AudioService is the pipeline contract the audio handler depends on.
// *tutor.AudioService satisfies this interface.
type AudioService interface {
	Generate(ctx context.Context, topic, length string) (*tutor.AudioLesson, error)
}

// AudioHandler handles audio-lesson generation requests.
type AudioHandler struct {
	svc    AudioService
	logger *zap.Logger
}

// NewAudioHandler creates an AudioHandler.
func NewAudioHandler(svc AudioService, logger *zap.Logger) *AudioHandler {
	return &AudioHandler{svc: svc, logger: logger}
}

type generateAudioRequest struct {
	Topic  string `json:"topic"`
	Length string `json:"length"`
}

type audioResponse struct {
	Status    string `json:"status"`
	Filename  string `json:"filename"`
	SizeBytes int64  `json:"size_bytes"`
	MimeType  string `json:"mime_type"`
	Model     string `json:"model"`
	Voice     string `json:"voice"`
	Script    string `json:"script"`
	Topic     string `json:"topic"`
}

// Generate handles POST /api/generate/audio.
func (h *AudioHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateAudioRequest
	decodeJSONBody(r, &req)

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		WriteError(w, http.StatusBadRequest, "Topic is required")
		return
	}
	length := req.Length
	if length == "" {
		length = "Medium"
	}

	h.logger.Info("generating audio",
		zap.String("topic", topic),
		zap.String("length", length))

	lesson, err := h.svc.Generate(r.Context(), topic, length)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, audioResponse{
		Status:    statusSuccess,
		Filename:  lesson.Filename,
		SizeBytes: lesson.SizeBytes,
		MimeType:  lesson.MimeType,
		Model:     lesson.Model,
		Voice:     lesson.Voice,
		Script:    lesson.Script,
		Topic:     lesson.Topic,
	})
}
