package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"scriptviral/internal/domain"
	"scriptviral/internal/export"
)

// State is the form's submission state. Transitions follow
// idle -> pending -> {success, failure}; terminal states re-enter pending on
// resubmission.
type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
	StateSuccess State = "success"
	StateFailure State = "failure"
)

// ErrSubmissionPending is returned when Submit is called while an earlier
// submission is still in flight; one form allows a single outstanding request.
var ErrSubmissionPending = errors.New("submission already pending")

// DefaultRequest mirrors the form's initial values.
func DefaultRequest() domain.GenerationRequest {
	return domain.GenerationRequest{
		LanguageStyle: domain.StylePersuasif,
		HookType:      domain.HookTidakAda,
		CTAType:       domain.CTAMarketplace,
		ScriptLength:  30,
		OutputCount:   3,
	}
}

// Form is the preference collector: it validates submissions locally, tracks
// the submission state machine, and holds the latest result or failure
// message for display.
type Form struct {
	svc *Service

	mu      sync.Mutex
	state   State
	result  *domain.GenerationResult
	failure string
}

func NewForm(svc *Service) *Form {
	return &Form{svc: svc, state: StateIdle}
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Result returns the held GenerationResult, nil unless the form is in the
// success state.
func (f *Form) Result() *domain.GenerationResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

// FailureMessage returns the human-readable error held in the failure state.
func (f *Form) FailureMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failure
}

// Submit validates the request and, if it passes, runs it through the service
// to completion. Validation failures surface field-level messages and perform
// no network call; the form state is untouched by them.
func (f *Form) Submit(ctx context.Context, req domain.GenerationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	f.mu.Lock()
	if f.state == StatePending {
		f.mu.Unlock()
		return ErrSubmissionPending
	}
	f.state = StatePending
	f.result = nil
	f.failure = ""
	f.mu.Unlock()

	result, err := f.svc.Generate(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StateFailure
		f.failure = err.Error()
		return err
	}
	f.state = StateSuccess
	f.result = result
	return nil
}

func (f *Form) option(index int) (domain.ScriptOption, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateSuccess || f.result == nil {
		return domain.ScriptOption{}, errors.New("no result to act on")
	}
	if index < 0 || index >= len(f.result.ScriptOptions) {
		return domain.ScriptOption{}, fmt.Errorf("option %d out of range", index+1)
	}
	return f.result.ScriptOptions[index], nil
}

// CopyOption returns the labeled clipboard text for one held option.
func (f *Form) CopyOption(index int) (string, error) {
	opt, err := f.option(index)
	if err != nil {
		return "", err
	}
	return export.OptionText(opt), nil
}

// ExportOption writes one held option as a .docx file at path. A failed
// export leaves the form state alone so the user can retry it independently.
func (f *Form) ExportOption(index int, path string) error {
	opt, err := f.option(index)
	if err != nil {
		return err
	}
	data, err := export.Docx(opt.Script, opt.Hashtags)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write document: %v: %w", err, domain.ErrExportFailure)
	}
	return nil
}
