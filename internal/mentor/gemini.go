package mentor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sinaw-id/sinaw/internal/model"
	"golang.org/x/time/rate"
)

// GeminiConfig configures the Generative Language API client.
type GeminiConfig struct {
	APIKey      string
	Model       string
	Endpoint    string // base URL up to and including the API version
	Temperature float64
	Rate        float64
	Burst       int
	HTTPClient  *http.Client
}

// GeminiClient sends one-shot generateContent requests.
type GeminiClient struct {
	cfg     GeminiConfig
	limiter *rate.Limiter // nil when limiting is disabled
}

// NewGeminiClient fills defaults and builds the client.
func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = model.DefaultMentorModel
	}
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = model.DefaultMentorEndpoint
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")

	var limiter *rate.Limiter
	if cfg.Rate > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.Rate), burst)
	}

	return &GeminiClient{cfg: cfg, limiter: limiter}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction geminiContent   `json:"systemInstruction"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Reply asks the model for an answer to prompt under SystemInstruction.
func (g *GeminiClient) Reply(ctx context.Context, prompt string) (string, error) {
	apiKey := strings.TrimSpace(g.cfg.APIKey)
	if apiKey == "" {
		return "", errors.New("gemini: api key is required")
	}
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("gemini: prompt is required")
	}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("gemini: rate limit wait: %w", err)
		}
	}

	var body geminiRequest
	body.SystemInstruction = geminiContent{Parts: []geminiPart{{Text: SystemInstruction}}}
	body.Contents = []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}}
	body.GenerationConfig.Temperature = g.cfg.Temperature

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.cfg.Endpoint, g.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gemini: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// The key travels only in this header and never appears in errors.
	req.Header.Set("x-goog-api-key", apiKey)

	res, err := g.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, err := io.ReadAll(io.LimitReader(res.Body, 4096))
		if err != nil {
			return "", fmt.Errorf("gemini: read error body: %w", err)
		}
		return "", fmt.Errorf("gemini: status %d: %s", res.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out geminiResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}

	var text strings.Builder
	for _, cand := range out.Candidates {
		for _, part := range cand.Content.Parts {
			text.WriteString(part.Text)
		}
		if text.Len() > 0 {
			break
		}
	}
	reply := strings.TrimSpace(text.String())
	if reply == "" {
		return "", errors.New("gemini: response has no text")
	}
	return reply, nil
}
