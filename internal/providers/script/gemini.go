package script

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"scriptviral/internal/domain"
)

type GeminiOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// GeminiGenerator calls the Gemini generateContent endpoint with a strict
// response schema so the reply arrives as structured JSON.
type GeminiGenerator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

const (
	geminiDefaultTimeout = 15 * time.Second
	geminiDefaultModel   = "gemini-1.5-flash"
	geminiDefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature      float64       `json:"temperature,omitempty"`
	CandidateCount   int           `json:"candidateCount,omitempty"`
	ResponseMimeType string        `json:"responseMimeType,omitempty"`
	ResponseSchema   *geminiSchema `json:"responseSchema,omitempty"`
}

type geminiSchema struct {
	Type        string                   `json:"type"`
	Description string                   `json:"description,omitempty"`
	Properties  map[string]*geminiSchema `json:"properties,omitempty"`
	Items       *geminiSchema            `json:"items,omitempty"`
	Required    []string                 `json:"required,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func NewGeminiGenerator(opts GeminiOptions) (*GeminiGenerator, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("gemini api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = geminiDefaultBaseURL
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = geminiDefaultModel
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: geminiDefaultTimeout}
	}
	return &GeminiGenerator{
		apiKey:  strings.TrimSpace(opts.APIKey),
		model:   model,
		baseURL: baseURL,
		client:  client,
	}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{{
				Text: BuildInstruction(req),
			}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:      0.7,
			CandidateCount:   1,
			ResponseMimeType: "application/json",
			ResponseSchema:   resultSchema(),
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, fmt.Errorf("gemini encode request: %v: %w", err, domain.ErrProviderFailure)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), &buf)
	if err != nil {
		return nil, fmt.Errorf("gemini build request: %v: %w", err, domain.ErrProviderFailure)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)
	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini request: %v: %w", err, domain.ErrProviderFailure)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gemini status %d: %w", resp.StatusCode, domain.ErrProviderFailure)
	}
	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("gemini decode response: %v: %w", err, domain.ErrProviderFailure)
	}
	text := extractText(out)
	if text == "" {
		return nil, fmt.Errorf("gemini returned no text candidate: %w", domain.ErrProviderFailure)
	}
	return decodeResult(text, req.OutputCount)
}

func (g *GeminiGenerator) endpoint() string {
	model := url.PathEscape(g.model)
	return fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, model)
}

func extractText(resp geminiResponse) string {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if strings.TrimSpace(part.Text) != "" {
				return part.Text
			}
		}
	}
	return ""
}

// resultSchema mirrors the GenerationResult shape so the provider is bound to
// the seven named fields instead of prose alone.
func resultSchema() *geminiSchema {
	option := &geminiSchema{
		Type: "OBJECT",
		Properties: map[string]*geminiSchema{
			"durasi":   {Type: "STRING", Description: "The duration of the video script in seconds."},
			"judul":    {Type: "STRING", Description: "A catchy title for the video."},
			"hook":     {Type: "STRING", Description: "The hook to grab the viewer's attention."},
			"script":   {Type: "STRING", Description: "The main body of the script."},
			"cta":      {Type: "STRING", Description: "The call to action."},
			"caption":  {Type: "STRING", Description: "A short caption for the social media post."},
			"hashtags": {Type: "STRING", Description: "Relevant and powerful hashtags for the script."},
		},
		Required: []string{"durasi", "judul", "hook", "script", "cta", "caption", "hashtags"},
	}
	return &geminiSchema{
		Type: "OBJECT",
		Properties: map[string]*geminiSchema{
			"scriptOptions": {Type: "ARRAY", Items: option},
		},
		Required: []string{"scriptOptions"},
	}
}

var _ Generator = (*GeminiGenerator)(nil)
