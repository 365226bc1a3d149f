package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"scriptviral/internal/domain"
	"scriptviral/internal/export"
	"scriptviral/internal/middleware"
)

type exportDocxRequest struct {
	Script   string `json:"script"`
	Hashtags string `json:"hashtags"`
}

// ExportDocx renders the script/hashtags pair as a downloadable document.
// Export failures are logged and reported without touching generation state.
func (a *App) ExportDocx(w http.ResponseWriter, r *http.Request) {
	var req exportDocxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Script) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "script is required")
		return
	}

	data, err := export.Docx(req.Script, req.Hashtags)
	if err != nil {
		a.Log.Error().
			Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Msg("docx export failed")
		a.error(w, http.StatusInternalServerError, "export_failure", "failed to build document")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.DocxFilename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// CopyText returns the labeled plain-text rendering of one option, the exact
// payload the UI places on the clipboard.
func (a *App) CopyText(w http.ResponseWriter, r *http.Request) {
	var opt domain.ScriptOption
	if err := json.NewDecoder(r.Body).Decode(&opt); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(export.OptionText(opt)))
}
