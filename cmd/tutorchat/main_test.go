package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gyanguru/gyanguru/internal/infra/llm"
)

type scriptedChat struct {
	replies []string
	calls   []llm.ChatRequest
	err     error
}

func (s *scriptedChat) ChatCompletion(_ context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	s.calls = append(s.calls, req)
	if s.err != nil {
		return nil, s.err
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return &llm.ChatResponse{Content: reply, StopReason: "stop"}, nil
}

func TestRun_Version_PrintsVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	code := run([]string{"--version"}, strings.NewReader(""), &out)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(out.String(), "gyanguru version") {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestRun_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	var out bytes.Buffer
	code := run([]string{}, strings.NewReader(""), &out)

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "OPENAI_API_KEY") {
		t.Fatalf("expected key guidance, got %q", out.String())
	}
}

func TestChatLoop_KeepsHistoryAcrossTurns(t *testing.T) {
	t.Parallel()

	client := &scriptedChat{replies: []string{"A slice is a view.", "Yes, append may reallocate."}}
	in := strings.NewReader("what is a slice\ndoes append copy\nexit\n")
	var out bytes.Buffer

	code := chatLoop(t.Context(), client, "gpt-4o-mini", in, &out)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if len(client.calls) != 2 {
		t.Fatalf("expected 2 completions, got %d", len(client.calls))
	}
	// Second call carries system + first exchange + second question.
	second := client.calls[1].Messages
	if len(second) != 4 {
		t.Fatalf("expected 4 messages in second call, got %d", len(second))
	}
	if second[0].Role != "system" {
		t.Errorf("first message role = %q, want system", second[0].Role)
	}
	if second[2].Content != "A slice is a view." {
		t.Errorf("history missing assistant turn: %q", second[2].Content)
	}
	if !strings.Contains(out.String(), "tutor> A slice is a view.") {
		t.Errorf("output missing tutor reply: %q", out.String())
	}
}

func TestChatLoop_UpstreamErrorStops(t *testing.T) {
	t.Parallel()

	client := &scriptedChat{err: errors.New("rate limit exceeded")}
	in := strings.NewReader("hello\n")
	var out bytes.Buffer

	code := chatLoop(t.Context(), client, "gpt-4o-mini", in, &out)

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "rate limit exceeded") {
		t.Errorf("expected upstream message, got %q", out.String())
	}
}

func TestChatLoop_EOFExitsCleanly(t *testing.T) {
	t.Parallel()

	client := &scriptedChat{}
	var out bytes.Buffer

	code := chatLoop(t.Context(), client, "gpt-4o-mini", strings.NewReader(""), &out)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if len(client.calls) != 0 {
		t.Fatalf("expected no completions, got %d", len(client.calls))
	}
}
