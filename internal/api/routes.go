package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/gyanguru/gyanguru/internal/api/handlers"
	"github.com/gyanguru/gyanguru/internal/api/middleware"
	"github.com/gyanguru/gyanguru/internal/artifact"
	"github.com/gyanguru/gyanguru/internal/domain/tutor"
	"github.com/gyanguru/gyanguru/internal/infra/config"
	"github.com/gyanguru/gyanguru/internal/infra/llm"
	"github.com/gyanguru/gyanguru/internal/infra/prompts"
)

// NewRouter wires adapters, services and handlers into a chi router.
//
// Route map:
//
//	GET  /                          page shells
//	POST /api/generate/{kind}       generation endpoints
//	GET  /download/{kind}/{name}    artifact downloads
func NewRouter(ctx context.Context, cfg config.Config, store *artifact.Store, logger *zap.Logger) (*chi.Mux, error) {
	presets := prompts.Default()

	gemini, err := llm.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiTextModel, cfg.GeminiImageModel, presets)
	if err != nil {
		return nil, err
	}
	openai := llm.NewOpenAIClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.SpeechModel, cfg.SpeechVoice, cfg.ChatModel)
	pollinations := llm.NewPollinationsClient("")

	textSvc := tutor.NewTextService(gemini)
	codeSvc := tutor.NewCodeService(gemini, store)
	audioSvc := tutor.NewAudioService(gemini, openai, store, cfg.AudioMaxAge)
	imageSvc := tutor.NewImageService(gemini, map[string]llm.ImageSynthesizer{
		"gemini":       gemini,
		"pollinations": pollinations,
	}, store)

	pageHandler := handlers.NewPageHandler()
	textHandler := handlers.NewTextHandler(textSvc, logger)
	codeHandler := handlers.NewCodeHandler(codeSvc, logger)
	audioHandler := handlers.NewAudioHandler(audioSvc, logger)
	imageHandler := handlers.NewImageHandler(imageSvc, logger)
	downloadHandler := handlers.NewDownloadHandler(store, logger)

	r := chi.NewRouter()

	// Global middleware (runs on all routes)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recoverer(logger))

	// Unmatched routes get the same JSON envelope as handler errors.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusNotFound, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Health check — unauthenticated, used by load balancers and health probes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck
	})

	r.Get("/", pageHandler.Index)
	r.Get("/text", pageHandler.Text)
	r.Get("/code", pageHandler.Code)
	r.Get("/audio", pageHandler.Audio)
	r.Get("/image", pageHandler.Image)

	r.Route("/api/generate", func(r chi.Router) {
		r.Use(middleware.BodyLimit(cfg.MaxContentLength))
		r.Post("/text", textHandler.Generate)   // POST /api/generate/text
		r.Post("/code", codeHandler.Generate)   // POST /api/generate/code
		r.Post("/audio", audioHandler.Generate) // POST /api/generate/audio
		r.Post("/image", imageHandler.Generate) // POST /api/generate/image
	})

	r.Route("/download", func(r chi.Router) {
		r.Get("/audio/{filename}", downloadHandler.Audio)
		r.Get("/code/{filename}", downloadHandler.Code)
		r.Get("/image/{filename}", downloadHandler.Image)
	})

	return r, nil
}
