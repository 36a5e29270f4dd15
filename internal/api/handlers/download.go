// HTTP handlers for GET /download/{audio,code,image}/{filename}.
// The sanitizer runs before any filesystem access; a rejected filename never
// reaches the disk.
package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/gyanguru/gyanguru/pkg/safename"
)

// ArtifactDirs exposes the three artifact directories.
// *artifact.Store satisfies this interface.
type ArtifactDirs interface {
	AudioDir() string
	ImageDir() string
	CodeDir() string
}

// DownloadHandler serves stored artifacts as attachments.
type DownloadHandler struct {
	dirs   ArtifactDirs
	logger *zap.Logger
}

// NewDownloadHandler creates a DownloadHandler.
func NewDownloadHandler(dirs ArtifactDirs, logger *zap.Logger) *DownloadHandler {
	return &DownloadHandler{dirs: dirs, logger: logger}
}

// Audio handles GET /download/audio/{filename}.
func (h *DownloadHandler) Audio(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.dirs.AudioDir())
}

// Code handles GET /download/code/{filename}.
func (h *DownloadHandler) Code(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.dirs.CodeDir())
}

// Image handles GET /download/image/{filename}.
func (h *DownloadHandler) Image(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.dirs.ImageDir())
}

func (h *DownloadHandler) serve(w http.ResponseWriter, r *http.Request, baseDir string) {
	raw := chi.URLParam(r, "filename")
	safe := safename.Clean(raw)
	if safe == "" {
		h.logger.Warn("rejected download filename", zap.String("filename", raw))
		WriteError(w, http.StatusBadRequest, "Invalid filename")
		return
	}

	path := filepath.Join(baseDir, safe)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		WriteError(w, http.StatusNotFound, msgNotFound)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", safe))
	http.ServeFile(w, r, path)
}
