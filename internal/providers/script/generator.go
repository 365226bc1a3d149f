package script

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"scriptviral/internal/domain"
)

// Generator produces a full set of script options for one validated request.
// Each call is stateless and independent; implementations must return either
// a complete result or an error, never a partial one.
type Generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
}

// decodeResult parses the provider's raw text reply against the shared output
// shape and enforces the structural contract: exactly want options, every
// field populated. Any mismatch is a hard provider failure.
func decodeResult(raw string, want int) (*domain.GenerationResult, error) {
	cleaned := extractJSONFragment(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty reply: %w", domain.ErrProviderFailure)
	}
	var result domain.GenerationResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("malformed reply: %v: %w", err, domain.ErrProviderFailure)
	}
	if len(result.ScriptOptions) != want {
		return nil, fmt.Errorf("got %d script options, want %d: %w", len(result.ScriptOptions), want, domain.ErrProviderFailure)
	}
	for i, opt := range result.ScriptOptions {
		if field := emptyOptionField(opt); field != "" {
			return nil, fmt.Errorf("option %d is missing %s: %w", i+1, field, domain.ErrProviderFailure)
		}
	}
	return &result, nil
}

func emptyOptionField(opt domain.ScriptOption) string {
	fields := []struct {
		name  string
		value string
	}{
		{"durasi", opt.Durasi},
		{"judul", opt.Judul},
		{"hook", opt.Hook},
		{"script", opt.Script},
		{"cta", opt.CTA},
		{"caption", opt.Caption},
		{"hashtags", opt.Hashtags},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return f.name
		}
	}
	return ""
}

func extractJSONFragment(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = trimCodeFence(text)
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "]}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
