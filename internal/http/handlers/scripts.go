package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"scriptviral/internal/domain"
	"scriptviral/internal/middleware"
)

var generateMessages = map[string]struct {
	invalidPayload string
	invalidRequest string
	providerFailed string
}{
	"id": {
		invalidPayload: "Payload tidak valid.",
		invalidRequest: "Periksa kembali isian form.",
		providerFailed: "Gagal membuat script. Silakan coba lagi.",
	},
	"en": {
		invalidPayload: "Invalid payload.",
		invalidRequest: "Please review the form fields.",
		providerFailed: "Failed to generate scripts. Please try again.",
	},
}

// GenerateScripts validates one GenerationRequest and runs it through the
// configured provider. Validation failures never reach the provider.
func (a *App) GenerateScripts(w http.ResponseWriter, r *http.Request) {
	msgs, ok := generateMessages[middleware.LocaleFromContext(r.Context())]
	if !ok {
		msgs = generateMessages["en"]
	}

	var req domain.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", msgs.invalidPayload)
		return
	}
	if err := req.Validate(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			a.validationError(w, msgs.invalidRequest, verr.Fields)
			return
		}
		a.error(w, http.StatusBadRequest, "bad_request", msgs.invalidRequest)
		return
	}

	result, err := a.Generator.Generate(r.Context(), req)
	if err != nil {
		a.Log.Error().
			Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Int("output_count", req.OutputCount).
			Msg("script generation failed")
		a.error(w, http.StatusBadGateway, "provider_failure", msgs.providerFailed)
		return
	}
	a.json(w, http.StatusOK, result)
}
