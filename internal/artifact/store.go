// Package artifact owns the on-disk artifact layout: three flat directories
// (audio, images, code) under one base folder, created at startup. Handlers
// write through the store; download endpoints read from it. Only audio
// artifacts are ever cleaned up — code and image files stay until operators
// remove them.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store manages the artifact directories.
type Store struct {
	audioDir string
	imageDir string
	codeDir  string
	logger   *zap.Logger
}

// NewStore creates the three artifact directories under baseDir (idempotent,
// parents included) and returns a Store over them.
func NewStore(baseDir string, logger *zap.Logger) (*Store, error) {
	s := &Store{
		audioDir: filepath.Join(baseDir, "audio"),
		imageDir: filepath.Join(baseDir, "images"),
		codeDir:  filepath.Join(baseDir, "code"),
		logger:   logger,
	}
	for _, dir := range []string{s.audioDir, s.imageDir, s.codeDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create artifact dir %s: %w", dir, err)
		}
	}
	return s, nil
}

// AudioDir returns the audio artifact directory.
func (s *Store) AudioDir() string { return s.audioDir }

// ImageDir returns the image artifact directory.
func (s *Store) ImageDir() string { return s.imageDir }

// CodeDir returns the code artifact directory.
func (s *Store) CodeDir() string { return s.codeDir }

// CodeInfo describes a persisted code artifact.
type CodeInfo struct {
	Filename    string
	LineCount   int
	SyntaxValid bool
}

// SaveCode writes generated source under a filename derived from the
// algorithm name and reports line count and a syntax-validity flag.
func (s *Store) SaveCode(code, algorithm string) (*CodeInfo, error) {
	filename, path := s.uniquePath(s.codeDir, Slug(algorithm), ".py")
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		return nil, fmt.Errorf("save code: %w", err)
	}
	return &CodeInfo{
		Filename:    filename,
		LineCount:   countLines(code),
		SyntaxValid: pythonSyntaxOK(code),
	}, nil
}

// AudioInfo describes a persisted audio artifact.
type AudioInfo struct {
	Filename  string
	SizeBytes int64
}

// SaveAudio writes synthesized audio under a filename derived from the topic.
func (s *Store) SaveAudio(data []byte, topic string) (*AudioInfo, error) {
	filename, path := s.uniquePath(s.audioDir, Slug(topic), ".mp3")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("save audio: %w", err)
	}
	return &AudioInfo{Filename: filename, SizeBytes: int64(len(data))}, nil
}

// SaveImage writes a generated image under a filename derived from the
// concept and the prompt index. The extension follows the mime type.
func (s *Store) SaveImage(data []byte, mimeType, concept string, index int) (string, error) {
	base := fmt.Sprintf("%s_%d", Slug(concept), index+1)
	filename, path := s.uniquePath(s.imageDir, base, extForMime(mimeType))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return filename, nil
}

// CleanupAudio removes audio artifacts older than maxAge. It is best-effort:
// removal failures are counted and logged, never raised, so a sweep can never
// fail the request that triggered it.
func (s *Store) CleanupAudio(maxAge time.Duration) (removed, failed int) {
	entries, err := os.ReadDir(s.audioDir)
	if err != nil {
		s.logger.Warn("audio cleanup: read dir", zap.Error(err))
		return 0, 0
	}

	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			failed++
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.audioDir, entry.Name())); err != nil {
			failed++
			s.logger.Warn("audio cleanup: remove", zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		removed++
	}
	if removed > 0 || failed > 0 {
		s.logger.Info("audio cleanup sweep",
			zap.Int("removed", removed),
			zap.Int("failed", failed))
	}
	return removed, failed
}

// uniquePath derives the artifact filename. When the derived name is already
// taken a short random suffix is appended, so two concurrent requests with
// the same subject never clobber each other's file.
func (s *Store) uniquePath(dir, base, ext string) (string, string) {
	filename := base + ext
	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); err == nil {
		filename = fmt.Sprintf("%s_%s%s", base, uuid.NewString()[:8], ext)
		path = filepath.Join(dir, filename)
	}
	return filename, path
}

// Slug derives a filesystem-safe base name from free-form subject text.
// The result only contains lowercase ASCII letters, digits, and underscores.
func Slug(subject string) string {
	var b strings.Builder
	lastUnderscore := true // also trims leading underscores
	for _, r := range strings.ToLower(strings.TrimSpace(subject)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	slug := strings.TrimRight(b.String(), "_")
	if len(slug) > 60 {
		slug = strings.TrimRight(slug[:60], "_")
	}
	if slug == "" {
		return "artifact"
	}
	return slug
}

func countLines(code string) int {
	if code == "" {
		return 0
	}
	return len(strings.Split(strings.TrimRight(code, "\n"), "\n"))
}

func extForMime(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
