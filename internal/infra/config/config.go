// Package config provides application-wide configuration loaded from env vars.
// All fields except the API keys have safe defaults; the server refuses to
// start without GEMINI_API_KEY since every generation endpoint depends on it.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration for GyanGuru.
type Config struct {
	// HTTP
	SecretKey        string // SECRET_KEY — session secret, default: "gyanguru-dev-secret-2024"
	MaxContentLength int64  // MAX_CONTENT_LENGTH — request body cap in bytes, default: 16 MiB
	Port             int    // PORT — default: 5000
	Debug            bool   // DEBUG — default: true

	// Artifacts
	GeneratedDir string        // GENERATED_FOLDER — base artifact directory, default: "generated"
	AudioMaxAge  time.Duration // AUDIO_MAX_AGE — audio sweep threshold, default: 1h

	// Gemini (explanation, code, script, image prompts, image synthesis)
	GeminiAPIKey     string // GEMINI_API_KEY
	GeminiTextModel  string // GEMINI_TEXT_MODEL — default: "gemini-2.0-flash"
	GeminiImageModel string // GEMINI_IMAGE_MODEL — default: "gemini-2.0-flash-preview-image-generation"

	// OpenAI-compatible endpoint (speech synthesis, tutorchat)
	OpenAIBaseURL string // OPENAI_BASE_URL — default: "https://api.openai.com"
	OpenAIAPIKey  string // OPENAI_API_KEY
	SpeechModel   string // SPEECH_MODEL — default: "tts-1"
	SpeechVoice   string // SPEECH_VOICE — default: "alloy"
	ChatModel     string // CHAT_MODEL — default: "gpt-4o-mini"
}

const (
	envKeySecretKey        = "SECRET_KEY"
	envKeyMaxContentLength = "MAX_CONTENT_LENGTH"
	envKeyPort             = "PORT"
	envKeyDebug            = "DEBUG"
	envKeyGeneratedDir     = "GENERATED_FOLDER"
	envKeyAudioMaxAge      = "AUDIO_MAX_AGE"
	envKeyGeminiAPIKey     = "GEMINI_API_KEY"
	envKeyGeminiTextModel  = "GEMINI_TEXT_MODEL"
	envKeyGeminiImageModel = "GEMINI_IMAGE_MODEL"
	envKeyOpenAIBaseURL    = "OPENAI_BASE_URL"
	envKeyOpenAIAPIKey     = "OPENAI_API_KEY"
	envKeySpeechModel      = "SPEECH_MODEL"
	envKeySpeechVoice      = "SPEECH_VOICE"
	envKeyChatModel        = "CHAT_MODEL"
)

const defaultMaxContentLength = 16 << 20 // 16 MiB

// Load reads configuration from environment variables, applying defaults for missing values.
func Load() Config {
	return Config{
		SecretKey:        envOr(envKeySecretKey, "gyanguru-dev-secret-2024"),
		MaxContentLength: envOrInt64(envKeyMaxContentLength, defaultMaxContentLength),
		Port:             envOrInt(envKeyPort, 5000),
		Debug:            envOrBool(envKeyDebug, true),
		GeneratedDir:     envOr(envKeyGeneratedDir, "generated"),
		AudioMaxAge:      envOrDuration(envKeyAudioMaxAge, time.Hour),
		GeminiAPIKey:     os.Getenv(envKeyGeminiAPIKey),
		GeminiTextModel:  envOr(envKeyGeminiTextModel, "gemini-2.0-flash"),
		GeminiImageModel: envOr(envKeyGeminiImageModel, "gemini-2.0-flash-preview-image-generation"),
		OpenAIBaseURL:    envOr(envKeyOpenAIBaseURL, "https://api.openai.com"),
		OpenAIAPIKey:     os.Getenv(envKeyOpenAIAPIKey),
		SpeechModel:      envOr(envKeySpeechModel, "tts-1"),
		SpeechVoice:      envOr(envKeySpeechVoice, "alloy"),
		ChatModel:        envOr(envKeyChatModel, "gpt-4o-mini"),
	}
}

// envOr returns the value of the environment variable key, or fallback if not set.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envOrInt parses key as an int, falling back on missing or invalid values.
func envOrInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// envOrInt64 parses key as an int64, falling back on missing or invalid values.
func envOrInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// envOrBool parses key as a bool, falling back on missing or invalid values.
func envOrBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// envOrDuration parses key as a time.Duration (e.g. "30m", "1h"), falling
// back on missing or invalid values.
func envOrDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
