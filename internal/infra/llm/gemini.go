// Package llm — Gemini adapter.
// GeminiProvider implements TextGenerator and ImageSynthesizer on top of the
// official google.golang.org/genai SDK. Text calls that need structured output
// request application/json and decode the payload; the model occasionally
// wraps JSON in markdown fences anyway, so decoding strips them first.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/gyanguru/gyanguru/internal/infra/prompts"
)

// GeminiProvider calls the Gemini API for explanation, code, script and
// image-prompt generation, and for image synthesis.
type GeminiProvider struct {
	client     *genai.Client
	textModel  string
	imageModel string
	presets    *prompts.Catalog
}

// NewGeminiProvider creates a Gemini adapter. The API key is required.
func NewGeminiProvider(ctx context.Context, apiKey, textModel, imageModel string, presets *prompts.Catalog) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiProvider{
		client:     client,
		textModel:  textModel,
		imageModel: imageModel,
		presets:    presets,
	}, nil
}

// Explain produces a structured explanation of an ML topic.
func (p *GeminiProvider) Explain(ctx context.Context, topic, depth string) (*Explanation, error) {
	depthName, depthInstr := p.presets.Depth(depth)

	prompt := fmt.Sprintf(
		"You are an expert machine-learning tutor. Explain the topic %q to a student.\n%s\n"+
			"Write in plain prose with short section headings. Do not use markdown code fences.",
		topic, depthInstr)

	text, err := p.generateText(ctx, prompt, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini explain: %w", err)
	}
	return &Explanation{
		Topic:       topic,
		Depth:       depthName,
		Explanation: text,
		Model:       p.textModel,
	}, nil
}

// codePayload is the structured-output shape requested from the model.
type codePayload struct {
	Code         string   `json:"code"`
	Description  string   `json:"description"`
	Dependencies []string `json:"dependencies"`
}

// CodeExample produces a runnable Python implementation of an algorithm.
func (p *GeminiProvider) CodeExample(ctx context.Context, algorithm, complexity string) (*CodeExample, error) {
	complexityName, complexityInstr := p.presets.Complexity(complexity)

	prompt := fmt.Sprintf(
		"Write a complete, runnable Python implementation of the %q algorithm.\n%s\n"+
			"Respond with a JSON object: {\"code\": \"<full source>\", "+
			"\"description\": \"<one paragraph>\", \"dependencies\": [\"<pip package>\", ...]}. "+
			"List only third-party pip packages in dependencies.",
		algorithm, complexityInstr)

	raw, err := p.generateText(ctx, prompt, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("gemini code: %w", err)
	}

	payload, err := parseCodePayload(raw)
	if err != nil {
		return nil, fmt.Errorf("gemini code: %w", err)
	}
	return &CodeExample{
		Algorithm:    algorithm,
		Complexity:   complexityName,
		Code:         payload.Code,
		Description:  payload.Description,
		Dependencies: payload.Dependencies,
		Model:        p.textModel,
	}, nil
}

// AudioScript produces a narration script for an audio lesson.
func (p *GeminiProvider) AudioScript(ctx context.Context, topic, length string) (string, error) {
	_, lengthInstr := p.presets.Length(length)

	prompt := fmt.Sprintf(
		"Write a narration script for an educational audio lesson about %q.\n%s\n"+
			"Write flowing prose meant to be read aloud: no headings, no bullet points, "+
			"no stage directions, no markdown.",
		topic, lengthInstr)

	script, err := p.generateText(ctx, prompt, nil)
	if err != nil {
		return "", fmt.Errorf("gemini script: %w", err)
	}
	return script, nil
}

// ImagePrompts produces diagram prompts for a concept.
func (p *GeminiProvider) ImagePrompts(ctx context.Context, concept string) ([]string, error) {
	prompt := fmt.Sprintf(
		"Produce 3 prompts for generating clean educational diagrams that explain %q. "+
			"Each prompt must describe a single self-contained diagram with labels. "+
			"Respond with a JSON array of 3 strings.",
		concept)

	raw, err := p.generateText(ctx, prompt, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("gemini prompts: %w", err)
	}

	list, err := parsePromptList(raw)
	if err != nil {
		return nil, fmt.Errorf("gemini prompts: %w", err)
	}
	return list, nil
}

// GenerateImage renders a single prompt via the Gemini image model.
func (p *GeminiProvider) GenerateImage(ctx context.Context, prompt string) (*ImageResult, error) {
	resp, err := p.client.Models.GenerateContent(ctx, p.imageModel, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		})
	if err != nil {
		return nil, fmt.Errorf("gemini image: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &ImageResult{
					Data:     part.InlineData.Data,
					MimeType: part.InlineData.MIMEType,
					Backend:  "gemini",
				}, nil
			}
		}
	}
	return nil, fmt.Errorf("gemini image: no image data in response")
}

// generateText runs a single text completion and returns the response text.
func (p *GeminiProvider) generateText(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := p.client.Models.GenerateContent(ctx, p.textModel, genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// parseCodePayload decodes the JSON code payload, tolerating markdown fences.
func parseCodePayload(raw string) (*codePayload, error) {
	var payload codePayload
	if err := json.Unmarshal([]byte(stripFences(raw)), &payload); err != nil {
		return nil, fmt.Errorf("decode code payload: %w", err)
	}
	if strings.TrimSpace(payload.Code) == "" {
		return nil, fmt.Errorf("code payload has empty code field")
	}
	if payload.Dependencies == nil {
		payload.Dependencies = []string{}
	}
	return &payload, nil
}

// parsePromptList decodes a JSON array of prompt strings, tolerating markdown
// fences and dropping blank entries.
func parsePromptList(raw string) ([]string, error) {
	var list []string
	if err := json.Unmarshal([]byte(stripFences(raw)), &list); err != nil {
		return nil, fmt.Errorf("decode prompt list: %w", err)
	}
	out := make([]string, 0, len(list))
	for _, p := range list {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("prompt list is empty")
	}
	return out, nil
}

// stripFences removes a surrounding ```json / ``` markdown fence if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
