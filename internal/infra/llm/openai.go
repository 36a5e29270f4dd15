// Package llm — OpenAI-compatible HTTP adapter.
// OpenAIClient calls an OpenAI-compatible REST API using stdlib net/http.
// Endpoints used:
//   - POST /v1/audio/speech      — script-to-audio synthesis (mp3)
//   - POST /v1/chat/completions  — non-streaming chat completion (tutorchat)
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	mimeJSON          = "application/json"
	headerContentType = "Content-Type"
)

// OpenAIClient implements SpeechSynthesizer and ChatCompleter against an
// OpenAI-compatible endpoint.
type OpenAIClient struct {
	baseURL     string
	apiKey      string
	speechModel string
	speechVoice string
	chatModel   string
	httpClient  *http.Client
}

// NewOpenAIClient creates an OpenAIClient with a 120s default timeout
// (speech synthesis of a long script is slow).
func NewOpenAIClient(baseURL, apiKey, speechModel, speechVoice, chatModel string) *OpenAIClient {
	return &OpenAIClient{
		baseURL:     baseURL,
		apiKey:      apiKey,
		speechModel: speechModel,
		speechVoice: speechVoice,
		chatModel:   chatModel,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type openaiSpeechRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format"`
}

type openaiChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiChatRequest struct {
	Model       string              `json:"model"`
	Messages    []openaiChatMessage `json:"messages"`
	Temperature float32             `json:"temperature,omitempty"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
}

type openaiChatResponse struct {
	Choices []struct {
		Message      openaiChatMessage `json:"message"`
		FinishReason string            `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

type openaiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Synthesize converts a narration script into mp3 bytes via POST /v1/audio/speech.
func (c *OpenAIClient) Synthesize(ctx context.Context, script string) (*SpeechResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("speech synthesis: API key not configured")
	}

	body, err := json.Marshal(openaiSpeechRequest{
		Model:          c.speechModel,
		Input:          script,
		Voice:          c.speechVoice,
		ResponseFormat: "mp3",
	})
	if err != nil {
		return nil, err
	}

	respBody, postErr := c.doPost(ctx, "/v1/audio/speech", body)
	if postErr != nil {
		return nil, fmt.Errorf("speech synthesis: %w", postErr)
	}
	defer respBody.Close() //nolint:errcheck

	data, err := io.ReadAll(respBody)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis: read audio: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("speech synthesis: empty audio response")
	}
	return &SpeechResult{
		Data:     data,
		MimeType: "audio/mpeg",
		Model:    c.speechModel,
		Voice:    c.speechVoice,
	}, nil
}

// ChatCompletion performs a non-streaming chat via POST /v1/chat/completions.
func (c *OpenAIClient) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("chat completion: API key not configured")
	}

	model := req.Model
	if model == "" {
		model = c.chatModel
	}

	msgs := make([]openaiChatMessage, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = openaiChatMessage(m)
	}

	body, err := json.Marshal(openaiChatRequest{
		Model:       model,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	respBody, postErr := c.doPost(ctx, "/v1/chat/completions", body)
	if postErr != nil {
		return nil, fmt.Errorf("chat completion: %w", postErr)
	}
	defer respBody.Close() //nolint:errcheck

	var chatResp openaiChatResponse
	if decodeErr := json.NewDecoder(respBody).Decode(&chatResp); decodeErr != nil {
		return nil, fmt.Errorf("chat completion: decode response: %w", decodeErr)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion: no choices in response")
	}
	return &ChatResponse{
		Content:    chatResp.Choices[0].Message.Content,
		StopReason: chatResp.Choices[0].FinishReason,
		Tokens:     chatResp.Usage.TotalTokens,
	}, nil
}

// doPost sends an authorized POST to baseURL+path and returns the response body.
// Caller is responsible for closing the returned ReadCloser.
// Non-2xx responses are decoded for the upstream error message so it can be
// surfaced to the client verbatim.
func (c *OpenAIClient) doPost(ctx context.Context, path string, body []byte) (io.ReadCloser, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("post %s: build request: %w", path, err)
	}
	req.Header.Set(headerContentType, mimeJSON)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close() //nolint:errcheck
		var apiErr openaiErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("post %s: status %d: %s", path, resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("post %s: status %d", path, resp.StatusCode)
	}
	return resp.Body, nil
}
