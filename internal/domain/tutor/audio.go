package tutor

import (
	"context"
	"fmt"
	"time"

	"github.com/gyanguru/gyanguru/internal/artifact"
	"github.com/gyanguru/gyanguru/internal/infra/llm"
)

// ScriptGenerator is the first adapter call of the audio pipeline.
type ScriptGenerator interface {
	AudioScript(ctx context.Context, topic, length string) (string, error)
}

// AudioStore persists audio artifacts and sweeps stale ones.
// *artifact.Store satisfies this interface.
type AudioStore interface {
	SaveAudio(data []byte, topic string) (*artifact.AudioInfo, error)
	CleanupAudio(maxAge time.Duration) (removed, failed int)
}

// AudioService produces audio lessons in two strictly ordered steps: script
// generation, then speech synthesis. A script failure aborts the pipeline
// before the synthesizer is ever invoked. The stale-audio sweep runs only
// after the new artifact is on disk, so it can never race the current write.
type AudioService struct {
	scripts ScriptGenerator
	speech  llm.SpeechSynthesizer
	store   AudioStore
	maxAge  time.Duration
}

// NewAudioService creates an AudioService. maxAge is the sweep threshold for
// old audio artifacts.
func NewAudioService(scripts ScriptGenerator, speech llm.SpeechSynthesizer, store AudioStore, maxAge time.Duration) *AudioService {
	return &AudioService{scripts: scripts, speech: speech, store: store, maxAge: maxAge}
}

// AudioLesson is the full result of the audio pipeline.
type AudioLesson struct {
	Filename  string
	SizeBytes int64
	MimeType  string
	Model     string
	Voice     string
	Script    string
	Topic     string
}

// Generate runs the audio pipeline.
func (s *AudioService) Generate(ctx context.Context, topic, length string) (*AudioLesson, error) {
	script, err := s.scripts.AudioScript(ctx, topic, length)
	if err != nil {
		return nil, upstream("script_generation", err)
	}

	speech, err := s.speech.Synthesize(ctx, script)
	if err != nil {
		return nil, upstream("audio_synthesis", err)
	}

	info, err := s.store.SaveAudio(speech.Data, topic)
	if err != nil {
		return nil, fmt.Errorf("persist audio artifact: %w", err)
	}

	// Sweep after the write completes; failures are the store's concern.
	s.store.CleanupAudio(s.maxAge)

	return &AudioLesson{
		Filename:  info.Filename,
		SizeBytes: info.SizeBytes,
		MimeType:  speech.MimeType,
		Model:     speech.Model,
		Voice:     speech.Voice,
		Script:    script,
		Topic:     topic,
	}, nil
}
