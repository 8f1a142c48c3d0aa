// Package wizard implements the five-step intake form as a reducer-style
// state machine: one struct owns the current step, the field values, and the
// submission status, and every transition goes through a guarded method.
package wizard

import (
	"context"
	"errors"
	"sync"
)

// Status is the submission lifecycle of a wizard session.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

const (
	FirstStep = 1
	LastStep  = 5
)

var (
	// ErrSubmitInFlight means a submission is already running; the call
	// was ignored and no duplicate request was made.
	ErrSubmitInFlight = errors.New("submission already in flight")
	// ErrCompleted means the session already succeeded; a fresh wizard is
	// required to submit again.
	ErrCompleted = errors.New("wizard session already completed")
	// ErrNotFinalStep means Submit was called before reaching step 5.
	ErrNotFinalStep = errors.New("submit is only available on the final step")
)

// Payload is the wire snapshot of a completed form. Optional fields the
// user left blank carry explicit placeholder values so the service never
// sees a missing key.
type Payload struct {
	FullName          string   `json:"fullName"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	BusinessName      string   `json:"businessName"`
	BusinessType      string   `json:"businessType"`
	WebsitePurpose    string   `json:"websitePurpose"`
	TargetAudience    string   `json:"targetAudience"`
	MainGoal          string   `json:"mainGoal"`
	DesignStyle       string   `json:"designStyle"`
	ColorPreference   string   `json:"colorPreference"`
	ReferenceWebsites string   `json:"referenceWebsites"`
	RequiredPages     []string `json:"requiredPages"`
	HasContent        string   `json:"hasContent"`
	SpecialFeatures   string   `json:"specialFeatures"`
	DomainPreference  string   `json:"domainPreference"`
	ExistingDomain    string   `json:"existingDomain"`
	Timeline          string   `json:"timeline"`
}

// Submitter delivers a completed form to the submission service.
type Submitter interface {
	Submit(ctx context.Context, p Payload) error
}

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, p Payload) error

func (f SubmitterFunc) Submit(ctx context.Context, p Payload) error { return f(ctx, p) }

// Wizard is one intake session. Methods are safe for concurrent use; at
// most one submission is in flight at a time.
type Wizard struct {
	mu        sync.Mutex
	step      int
	status    Status
	form      Form
	submitter Submitter
}

func New(submitter Submitter) *Wizard {
	return &Wizard{
		step:      FirstStep,
		status:    StatusIdle,
		form:      NewForm(),
		submitter: submitter,
	}
}

// Step returns the current step, 1..5.
func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Form returns a snapshot of the current field values.
func (w *Wizard) Form() Form {
	w.mu.Lock()
	defer w.mu.Unlock()
	f := w.form
	f.RequiredPages = append([]string(nil), w.form.RequiredPages...)
	return f
}

// Update mutates field values in place. It does not validate; validation
// happens on Continue and Submit.
func (w *Wizard) Update(fn func(*Form)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(&w.form)
}

// Continue validates the current step's fields and advances on success.
// It returns one message per invalid field; the step does not change
// unless the map is empty.
func (w *Wizard) Continue() map[string]string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.status == StatusSubmitting || w.status == StatusSucceeded {
		return nil
	}
	if errs := validateStep(w.form, w.step); len(errs) > 0 {
		return errs
	}
	if w.step < LastStep {
		w.step++
	}
	return nil
}

// Back moves to the previous step. No validation runs and no values are
// discarded.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.status == StatusSubmitting || w.status == StatusSucceeded {
		return
	}
	if w.step > FirstStep {
		w.step--
	}
}

// Submit validates the final step and delivers the form. While a
// submission is in flight further calls are inert. On failure the session
// returns to step 5 with all values intact so the user can retry; on
// success the session is complete.
func (w *Wizard) Submit(ctx context.Context) (map[string]string, error) {
	w.mu.Lock()
	switch {
	case w.status == StatusSubmitting:
		w.mu.Unlock()
		return nil, ErrSubmitInFlight
	case w.status == StatusSucceeded:
		w.mu.Unlock()
		return nil, ErrCompleted
	case w.step != LastStep:
		w.mu.Unlock()
		return nil, ErrNotFinalStep
	}
	if errs := validateStep(w.form, LastStep); len(errs) > 0 {
		w.mu.Unlock()
		return errs, nil
	}
	w.status = StatusSubmitting
	payload := w.form.payload()
	w.mu.Unlock()

	err := w.submitter.Submit(ctx, payload)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.status = StatusFailed
		w.step = LastStep
		return nil, err
	}
	w.status = StatusSucceeded
	return nil, nil
}

// payload flattens the form, substituting the placeholder defaults for
// blank optional fields.
func (f Form) payload() Payload {
	return Payload{
		FullName:          f.FullName,
		Email:             f.Email,
		Phone:             f.Phone,
		BusinessName:      f.BusinessName,
		BusinessType:      f.BusinessType,
		WebsitePurpose:    f.WebsitePurpose,
		TargetAudience:    f.TargetAudience,
		MainGoal:          f.MainGoal,
		DesignStyle:       f.DesignStyle,
		ColorPreference:   orDefault(f.ColorPreference, "Not specified"),
		ReferenceWebsites: orDefault(f.ReferenceWebsites, "None provided"),
		RequiredPages:     append([]string(nil), f.RequiredPages...),
		HasContent:        f.HasContent,
		SpecialFeatures:   orDefault(f.SpecialFeatures, "None specified"),
		DomainPreference:  f.DomainPreference,
		ExistingDomain:    orDefault(f.ExistingDomain, "N/A"),
		Timeline:          f.Timeline,
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
