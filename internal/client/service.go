package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"scriptviral/internal/domain"
)

// Service is the HTTP client for the script generation API.
type Service struct {
	baseURL string
	client  *http.Client
}

func NewService(baseURL string, httpClient *http.Client) *Service {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}
}

// Generate submits one validated request and decodes either the result or the
// service's error payload into a provider failure.
func (s *Service) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %v: %w", err, domain.ErrProviderFailure)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/scripts/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %v: %w", err, domain.ErrProviderFailure)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call service: %v: %w", err, domain.ErrProviderFailure)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("service returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("%s: %w", apiErr.Message, domain.ErrProviderFailure)
	}

	var result domain.GenerationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode result: %v: %w", err, domain.ErrProviderFailure)
	}
	return &result, nil
}
