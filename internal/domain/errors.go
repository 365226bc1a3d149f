package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrProviderFailure = errors.New("provider failure")
	ErrExportFailure   = errors.New("export failure")
)

// FieldError describes one constraint violation on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field-level violation found on a
// GenerationRequest. It is raised before any provider call.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidRequest }

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}
