package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"scriptviral/internal/domain"
)

type fakeGenerator struct {
	calls    int
	lastReq  domain.GenerationRequest
	generate func(context.Context, domain.GenerationRequest) (*domain.GenerationResult, error)
}

func (f *fakeGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	f.calls++
	f.lastReq = req
	if f.generate != nil {
		return f.generate(ctx, req)
	}
	return nil, errors.New("generate not implemented")
}

func echoOptions(_ context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	opts := make([]domain.ScriptOption, 0, req.OutputCount)
	for i := 0; i < req.OutputCount; i++ {
		opts = append(opts, domain.ScriptOption{
			Durasi:   "30",
			Judul:    "Judul",
			Hook:     "Hook",
			Script:   "Script",
			CTA:      "Klik link di bio!",
			Caption:  "Caption",
			Hashtags: "#fyp",
		})
	}
	return &domain.GenerationResult{ScriptOptions: opts}, nil
}

func postJSON(t *testing.T, app *App, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	switch path {
	case "/v1/scripts/generate":
		app.GenerateScripts(rr, req)
	case "/v1/scripts/export":
		app.ExportDocx(rr, req)
	case "/v1/scripts/copytext":
		app.CopyText(rr, req)
	default:
		t.Fatalf("unknown path %s", path)
	}
	return rr
}

const validGenerateBody = `{
	"productLink": "https://shopee.co.id/x",
	"languageStyle": "santai",
	"hookType": "tidak ada",
	"ctaType": "klik link",
	"scriptLength": 30,
	"outputCount": 3
}`

func TestGenerateScriptsReturnsRequestedOptions(t *testing.T) {
	gen := &fakeGenerator{generate: echoOptions}
	app := NewApp(gen, zerolog.Nop())

	rr := postJSON(t, app, "/v1/scripts/generate", validGenerateBody)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rr.Code, rr.Body.String())
	}
	var result domain.GenerationResult
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(result.ScriptOptions) != 3 {
		t.Fatalf("got %d options, want 3", len(result.ScriptOptions))
	}
	for i, opt := range result.ScriptOptions {
		if opt.Durasi != "30" {
			t.Fatalf("option %d durasi = %q", i+1, opt.Durasi)
		}
		if opt.CTA == "" {
			t.Fatalf("option %d has empty cta", i+1)
		}
	}
	if gen.calls != 1 {
		t.Fatalf("generator called %d times, want 1", gen.calls)
	}
	if gen.lastReq.CTAType != domain.CTAKlikLink {
		t.Fatalf("generator saw ctaType %q", gen.lastReq.CTAType)
	}
}

func TestGenerateScriptsRejectsInvalidWithoutProviderCall(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "bad url",
			body:  `{"productLink":"not a link","languageStyle":"santai","hookType":"tidak ada","ctaType":"klik link","scriptLength":30,"outputCount":3}`,
			field: "productLink",
		},
		{
			name:  "duration out of range",
			body:  `{"productLink":"https://shopee.co.id/x","languageStyle":"santai","hookType":"tidak ada","ctaType":"klik link","scriptLength":90,"outputCount":3}`,
			field: "scriptLength",
		},
		{
			name:  "count out of range",
			body:  `{"productLink":"https://shopee.co.id/x","languageStyle":"santai","hookType":"tidak ada","ctaType":"klik link","scriptLength":30,"outputCount":16}`,
			field: "outputCount",
		},
		{
			name:  "unknown enum",
			body:  `{"productLink":"https://shopee.co.id/x","languageStyle":"puitis","hookType":"tidak ada","ctaType":"klik link","scriptLength":30,"outputCount":3}`,
			field: "languageStyle",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := &fakeGenerator{generate: echoOptions}
			app := NewApp(gen, zerolog.Nop())

			rr := postJSON(t, app, "/v1/scripts/generate", tc.body)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rr.Code)
			}
			if gen.calls != 0 {
				t.Fatalf("provider invoked %d times for invalid request", gen.calls)
			}
			var body struct {
				Code   string              `json:"code"`
				Fields []domain.FieldError `json:"fields"`
			}
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body.Code != "validation_error" {
				t.Fatalf("code = %q, want validation_error", body.Code)
			}
			found := false
			for _, f := range body.Fields {
				if f.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Fatalf("fields %#v missing %q", body.Fields, tc.field)
			}
		})
	}
}

func TestGenerateScriptsMapsProviderFailure(t *testing.T) {
	gen := &fakeGenerator{generate: func(context.Context, domain.GenerationRequest) (*domain.GenerationResult, error) {
		return nil, domain.ErrProviderFailure
	}}
	app := NewApp(gen, zerolog.Nop())

	rr := postJSON(t, app, "/v1/scripts/generate", validGenerateBody)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rr.Code)
	}
	var body errorBody
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Code != "provider_failure" {
		t.Fatalf("code = %q, want provider_failure", body.Code)
	}
	if body.Message == "" {
		t.Fatal("expected human-readable failure message")
	}
}

func TestGenerateScriptsRejectsMalformedJSON(t *testing.T) {
	gen := &fakeGenerator{generate: echoOptions}
	app := NewApp(gen, zerolog.Nop())

	rr := postJSON(t, app, "/v1/scripts/generate", "{nope")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if gen.calls != 0 {
		t.Fatal("provider invoked for malformed payload")
	}
}
