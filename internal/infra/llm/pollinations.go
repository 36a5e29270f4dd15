// Package llm — pollinations.ai image backend.
// A keyless fallback for image synthesis: the prompt is URL-encoded into a
// GET request and the response body is the rendered image.
package llm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultPollinationsBaseURL = "https://image.pollinations.ai"

// PollinationsClient implements ImageSynthesizer against the pollinations.ai
// image API. No API key is needed.
type PollinationsClient struct {
	baseURL    string
	width      int
	height     int
	httpClient *http.Client
}

// NewPollinationsClient creates a pollinations image backend. An empty
// baseURL selects the public endpoint.
func NewPollinationsClient(baseURL string) *PollinationsClient {
	if baseURL == "" {
		baseURL = defaultPollinationsBaseURL
	}
	return &PollinationsClient{
		baseURL: baseURL,
		width:   1024,
		height:  768,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// GenerateImage renders a single prompt via GET /prompt/<encoded prompt>.
func (c *PollinationsClient) GenerateImage(ctx context.Context, prompt string) (*ImageResult, error) {
	u := fmt.Sprintf("%s/prompt/%s?width=%d&height=%d&nologo=true",
		c.baseURL, url.PathEscape(prompt), c.width, c.height)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("pollinations: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pollinations: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pollinations: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pollinations: read image: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("pollinations: empty image response")
	}

	mime := resp.Header.Get(headerContentType)
	if mime == "" {
		mime = "image/jpeg"
	}
	return &ImageResult{Data: data, MimeType: mime, Backend: "pollinations"}, nil
}
