package script

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"scriptviral/internal/domain"
)

func newChatCompletionServer(t *testing.T, content string, hits *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]any{
			"choices": []map[string]any{{
				"message": map[string]any{"role": "assistant", "content": content},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestOpenAIGenerateReturnsRequestedOptions(t *testing.T) {
	var hits int
	srv := newChatCompletionServer(t, optionsJSON(3), &hits)
	defer srv.Close()

	gen, err := NewOpenAIGenerator(OpenAIOptions{APIKey: "dummy", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatalf("NewOpenAIGenerator returned error: %v", err)
	}
	res, err := gen.Generate(context.Background(), testRequest(3))
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(res.ScriptOptions) != 3 {
		t.Fatalf("got %d options, want 3", len(res.ScriptOptions))
	}
	if hits != 1 {
		t.Fatalf("provider hit %d times, want 1", hits)
	}
}

func TestOpenAIGenerateRejectsWrongCount(t *testing.T) {
	srv := newChatCompletionServer(t, optionsJSON(1), nil)
	defer srv.Close()

	gen, err := NewOpenAIGenerator(OpenAIOptions{APIKey: "dummy", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatalf("NewOpenAIGenerator returned error: %v", err)
	}
	_, err = gen.Generate(context.Background(), testRequest(3))
	if !errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("error = %v, want ErrProviderFailure", err)
	}
}

func TestOpenAIGenerateWrapsTransportErrors(t *testing.T) {
	gen, err := NewOpenAIGenerator(OpenAIOptions{
		APIKey: "dummy",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return nil, errors.New("boom")
		})},
	})
	if err != nil {
		t.Fatalf("NewOpenAIGenerator returned error: %v", err)
	}
	_, err = gen.Generate(context.Background(), testRequest(2))
	if !errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("error = %v, want ErrProviderFailure", err)
	}
}

func TestNewOpenAIGeneratorRequiresAPIKey(t *testing.T) {
	if _, err := NewOpenAIGenerator(OpenAIOptions{}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}
