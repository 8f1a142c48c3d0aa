package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/syedwebdesign/intake_backend/config"
	"github.com/syedwebdesign/intake_backend/internal/api/http/middleware"
	"github.com/syedwebdesign/intake_backend/internal/service/intake"
	"github.com/syedwebdesign/intake_backend/pkg/email"
	"github.com/syedwebdesign/intake_backend/pkg/ratelimit"
)

type fakeMailer struct {
	mu   sync.Mutex
	sent []email.Message
	errs []error // consumed one per Send call; nil entries mean success
}

func (f *fakeMailer) Send(_ context.Context, m email.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var err error
	if len(f.errs) > 0 {
		err = f.errs[0]
		f.errs = f.errs[1:]
	}
	if err != nil {
		return err
	}
	f.sent = append(f.sent, m)
	return nil
}

func (f *fakeMailer) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

// newTestApp wires the form routes the way the router does: a per-route
// fixed-window limiter ahead of the POST handler, and a catch-all for the
// other verbs.
func newTestApp(t *testing.T, m intake.Mailer, contactCfg, onboardingCfg config.RateLimitConfig) *fiber.App {
	t.Helper()

	newLimit := func(cfg config.RateLimitConfig) fiber.Handler {
		l := ratelimit.New(cfg.MaxRequests, time.Duration(cfg.WindowSeconds)*time.Second)
		t.Cleanup(l.Close)
		return middleware.Limit(l)
	}

	svc := intake.New(m, config.IntakeConfig{AdminAddress: "admin@example.com"})
	contactH := NewContactHandler(svc)
	onboardingH := NewOnboardingHandler(svc)

	app := fiber.New()
	api := app.Group("/api/v1")

	api.Post("/contact", newLimit(contactCfg), contactH.Submit)
	api.All("/contact", MethodNotAllowed)

	api.Post("/onboarding", newLimit(onboardingCfg), onboardingH.Submit)
	api.All("/onboarding", MethodNotAllowed)

	return app
}

func defaultLimits() (config.RateLimitConfig, config.RateLimitConfig) {
	return config.RateLimitConfig{MaxRequests: 5, WindowSeconds: 60},
		config.RateLimitConfig{MaxRequests: 3, WindowSeconds: 300}
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, headers map[string]string) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal body %q: %v", raw, err)
	}
	return out
}

func validContact() map[string]any {
	return map[string]any{
		"name":    "Dana Ortiz",
		"email":   "dana@example.com",
		"subject": "Redesign quote",
		"message": "We would like a quote for a full site redesign.",
	}
}

func TestContactSubmit_Success(t *testing.T) {
	m := &fakeMailer{}
	contactCfg, onboardingCfg := defaultLimits()
	app := newTestApp(t, m, contactCfg, onboardingCfg)

	resp := postJSON(t, app, "/api/v1/contact", validContact(), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["success"] != true {
		t.Errorf("body = %v, want success=true", body)
	}

	if got := m.sentCount(); got != 2 {
		t.Fatalf("emails sent = %d, want 2 (admin + confirmation)", got)
	}
	if to := m.sent[0].To; len(to) != 1 || to[0] != "admin@example.com" {
		t.Errorf("admin email To = %v", to)
	}
	if to := m.sent[1].To; len(to) != 1 || to[0] != "dana@example.com" {
		t.Errorf("confirmation email To = %v", to)
	}
}

func TestContactSubmit_ValidationFailure(t *testing.T) {
	m := &fakeMailer{}
	contactCfg, onboardingCfg := defaultLimits()
	app := newTestApp(t, m, contactCfg, onboardingCfg)

	payload := validContact()
	payload["message"] = "short"

	resp := postJSON(t, app, "/api/v1/contact", payload, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["error"] != "Validation failed" {
		t.Errorf("error = %v, want %q", body["error"], "Validation failed")
	}
	details, ok := body["details"].([]any)
	if !ok || len(details) != 1 {
		t.Fatalf("details = %v, want one entry", body["details"])
	}
	if details[0] != "Message must be at least 10 characters" {
		t.Errorf("detail = %v", details[0])
	}

	if got := m.sentCount(); got != 0 {
		t.Errorf("emails sent = %d, want 0 on validation failure", got)
	}
}

func TestContactSubmit_AdminSendFailure(t *testing.T) {
	m := &fakeMailer{errs: []error{fmt.Errorf("smtp unavailable")}}
	contactCfg, onboardingCfg := defaultLimits()
	app := newTestApp(t, m, contactCfg, onboardingCfg)

	resp := postJSON(t, app, "/api/v1/contact", validContact(), nil)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["error"] != "Failed to send email. Please try again later." {
		t.Errorf("error = %v", body["error"])
	}
}

func TestContactSubmit_RateLimit(t *testing.T) {
	m := &fakeMailer{}
	contactCfg, onboardingCfg := defaultLimits()
	app := newTestApp(t, m, contactCfg, onboardingCfg)

	headers := map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}

	for i := 0; i < 5; i++ {
		resp := postJSON(t, app, "/api/v1/contact", validContact(), headers)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, resp.StatusCode)
		}
		resp.Body.Close()
	}

	resp := postJSON(t, app, "/api/v1/contact", validContact(), headers)
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("6th request: status = %d, want 429", resp.StatusCode)
	}
	if got := resp.Header.Get("Retry-After"); got != "60" {
		t.Errorf("Retry-After = %q, want %q", got, "60")
	}
	body := decodeBody(t, resp)
	if body["error"] != "Too many requests. Please try again later." {
		t.Errorf("error = %v", body["error"])
	}

	// The rejected request must be stopped ahead of the handler, so no
	// emails go out for it.
	if got := m.sentCount(); got != 10 {
		t.Errorf("emails sent = %d, want 10 (2 per accepted request)", got)
	}

	// Another identity is unaffected.
	other := postJSON(t, app, "/api/v1/contact", validContact(),
		map[string]string{"X-Forwarded-For": "198.51.100.4"})
	if other.StatusCode != http.StatusOK {
		t.Errorf("other identity: status = %d, want 200", other.StatusCode)
	}
	other.Body.Close()
}

func TestRateLimit_RunsBeforeHandler(t *testing.T) {
	m := &fakeMailer{}
	app := newTestApp(t, m,
		config.RateLimitConfig{MaxRequests: 1, WindowSeconds: 60},
		config.RateLimitConfig{MaxRequests: 1, WindowSeconds: 60})

	headers := map[string]string{"X-Forwarded-For": "203.0.113.5"}

	first := postJSON(t, app, "/api/v1/contact", validContact(), headers)
	if first.StatusCode != http.StatusOK {
		t.Fatalf("1st request: status = %d, want 200", first.StatusCode)
	}
	first.Body.Close()

	second := postJSON(t, app, "/api/v1/contact", validContact(), headers)
	if second.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("2nd request: status = %d, want 429", second.StatusCode)
	}
	second.Body.Close()

	if got := m.sentCount(); got != 2 {
		t.Errorf("emails sent = %d, want 2 (only the accepted request)", got)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	m := &fakeMailer{}
	contactCfg, onboardingCfg := defaultLimits()
	app := newTestApp(t, m, contactCfg, onboardingCfg)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/v1/contact", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Fatalf("%s: status = %d, want 405", method, resp.StatusCode)
		}
		body := decodeBody(t, resp)
		if body["error"] != "Method not allowed" {
			t.Errorf("%s: error = %v", method, body["error"])
		}
	}
}

func TestOptionsProbe(t *testing.T) {
	m := &fakeMailer{}
	contactCfg, onboardingCfg := defaultLimits()
	app := newTestApp(t, m, contactCfg, onboardingCfg)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/onboarding", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
}

func TestOnboardingSubmit_Success(t *testing.T) {
	m := &fakeMailer{}
	contactCfg, onboardingCfg := defaultLimits()
	app := newTestApp(t, m, contactCfg, onboardingCfg)

	payload := map[string]any{
		"fullName":          "Priya Shah",
		"email":             "priya@example.com",
		"phone":             "555-0100",
		"businessName":      "Shah Interiors",
		"businessType":      "Professional Services",
		"websitePurpose":    "Showcase my work",
		"targetAudience":    "Homeowners",
		"mainGoal":          "Get more inquiries",
		"designStyle":       "modern-minimal",
		"colorPreference":   "Not specified",
		"referenceWebsites": "None provided",
		"requiredPages":     []string{"Home Page", "About Us", "Contact Us"},
		"hasContent":        "partial",
		"specialFeatures":   "None specified",
		"domainPreference":  "need-domain",
		"existingDomain":    "N/A",
		"timeline":          "normal",
	}

	resp := postJSON(t, app, "/api/v1/onboarding", payload, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["success"] != true {
		t.Errorf("body = %v, want success=true", body)
	}

	if got := m.sentCount(); got != 2 {
		t.Fatalf("emails sent = %d, want 2", got)
	}
	if want := "🚀 New Website Project: Shah Interiors"; m.sent[0].Subject != want {
		t.Errorf("admin subject = %q, want %q", m.sent[0].Subject, want)
	}
}

func TestOnboardingSubmit_ValidationFailure(t *testing.T) {
	m := &fakeMailer{}
	contactCfg, onboardingCfg := defaultLimits()
	app := newTestApp(t, m, contactCfg, onboardingCfg)

	resp := postJSON(t, app, "/api/v1/onboarding", map[string]any{
		"fullName": "P",
		"email":    "not-an-email",
	}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	details, ok := body["details"].([]any)
	if !ok || len(details) != 2 {
		t.Fatalf("details = %v, want two entries", body["details"])
	}
	if m.sentCount() != 0 {
		t.Errorf("emails sent on invalid submission")
	}
}

func TestOnboardingSubmit_RateLimit(t *testing.T) {
	m := &fakeMailer{}
	contactCfg, onboardingCfg := defaultLimits()
	app := newTestApp(t, m, contactCfg, onboardingCfg)

	headers := map[string]string{"X-Forwarded-For": "192.0.2.77"}
	payload := map[string]any{"fullName": "Priya Shah", "email": "priya@example.com"}

	for i := 0; i < 3; i++ {
		resp := postJSON(t, app, "/api/v1/onboarding", payload, headers)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, resp.StatusCode)
		}
		resp.Body.Close()
	}

	resp := postJSON(t, app, "/api/v1/onboarding", payload, headers)
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("4th request: status = %d, want 429", resp.StatusCode)
	}
	if got := resp.Header.Get("Retry-After"); got != "300" {
		t.Errorf("Retry-After = %q, want %q", got, "300")
	}
	resp.Body.Close()
}

func TestContactSubmit_MalformedBody(t *testing.T) {
	m := &fakeMailer{}
	contactCfg, onboardingCfg := defaultLimits()
	app := newTestApp(t, m, contactCfg, onboardingCfg)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
