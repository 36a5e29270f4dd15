package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/gyanguru/gyanguru/internal/artifact"
	"github.com/gyanguru/gyanguru/internal/infra/config"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := zaptest.NewLogger(t)
	store, err := artifact.NewStore(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	cfg := config.Config{
		GeminiAPIKey:     "test-key",
		GeminiTextModel:  "gemini-2.0-flash",
		GeminiImageModel: "gemini-2.0-flash-preview-image-generation",
		OpenAIBaseURL:    "http://127.0.0.1:0",
		MaxContentLength: 1 << 20,
	}
	r, err := NewRouter(t.Context(), cfg, store, logger)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return r
}

func TestRouterHealth(t *testing.T) {
	t.Parallel()
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %q, want ok status", rec.Body.String())
	}
}

func TestRouterPages(t *testing.T) {
	t.Parallel()
	r := newTestRouter(t)

	for _, path := range []string{"/", "/text", "/code", "/audio", "/image"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
			t.Errorf("GET %s Content-Type = %q, want text/html", path, ct)
		}
	}
}

func TestRouterNotFoundEnvelope(t *testing.T) {
	t.Parallel()
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["status"] != "error" || body["message"] != "Resource not found" {
		t.Errorf("body = %v, want error envelope", body)
	}
}

func TestRouterMethodNotAllowedEnvelope(t *testing.T) {
	t.Parallel()
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/generate/text", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["status"] != "error" {
		t.Errorf("body = %v, want error envelope", body)
	}
}

// Empty bodies reach field validation, not the upstream adapters.
func TestRouterValidationWithoutUpstream(t *testing.T) {
	t.Parallel()
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate/text", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Topic is required") {
		t.Errorf("body = %q, want topic validation message", rec.Body.String())
	}
}
