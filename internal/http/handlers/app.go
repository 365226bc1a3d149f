package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"scriptviral/internal/domain"
	"scriptviral/internal/providers/script"
)

type App struct {
	Generator script.Generator
	Log       zerolog.Logger
}

func NewApp(gen script.Generator, log zerolog.Logger) *App {
	return &App{Generator: gen, Log: log}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, errorBody{Code: code, Message: message})
}

func (a *App) validationError(w http.ResponseWriter, message string, fields []domain.FieldError) {
	a.json(w, http.StatusBadRequest, errorBody{Code: "validation_error", Message: message, Fields: fields})
}
