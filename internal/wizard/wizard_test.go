package wizard

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
)

func fillStep1(f *Form) {
	f.FullName = "Jo Smith"
	f.Email = "jo@x.com"
	f.Phone = "5551234"
	f.BusinessName = "Jo's Flowers"
	f.BusinessType = "Small Business"
}

func fillStep2(f *Form) {
	f.WebsitePurpose = "Generate leads and inquiries"
	f.TargetAudience = "Local flower buyers in town"
	f.MainGoal = "Bring in more weekly orders"
}

func fillStep3(f *Form) {
	f.DesignStyle = "modern-minimal"
}

func fillStep4(f *Form) {
	f.HasContent = "partial"
}

func fillStep5(f *Form) {
	f.DomainPreference = "need-domain"
	f.Timeline = "normal"
	f.AgreeToTerms = true
}

// advance fills and validates through the given step.
func advance(t *testing.T, w *Wizard, through int) {
	t.Helper()
	fillers := []func(*Form){fillStep1, fillStep2, fillStep3, fillStep4, fillStep5}
	for s := 1; s <= through; s++ {
		w.Update(fillers[s-1])
		if s < through {
			if errs := w.Continue(); len(errs) > 0 {
				t.Fatalf("step %d should validate, got %v", s, errs)
			}
		}
	}
}

func nopSubmitter() Submitter {
	return SubmitterFunc(func(context.Context, Payload) error { return nil })
}

func TestNew_StartsAtStepOne(t *testing.T) {
	w := New(nopSubmitter())
	if w.Step() != 1 {
		t.Errorf("initial step = %d", w.Step())
	}
	if w.Status() != StatusIdle {
		t.Errorf("initial status = %v", w.Status())
	}
	if got := w.Form().RequiredPages; len(got) != 3 {
		t.Errorf("expected starter page selection, got %v", got)
	}
}

func TestContinue_BlocksOnInvalidStep(t *testing.T) {
	for step := 1; step <= 5; step++ {
		w := New(nopSubmitter())
		advance(t, w, step)
		// Blank one required field of the current step.
		w.Update(func(f *Form) {
			switch step {
			case 1:
				f.Email = "not-an-email"
			case 2:
				f.MainGoal = "short"
			case 3:
				f.DesignStyle = ""
			case 4:
				f.RequiredPages = nil
			case 5:
				f.Timeline = ""
			}
		})

		before := w.Step()
		errs := w.Continue()
		if len(errs) == 0 {
			t.Errorf("step %d: invalid field should block advancement", step)
		}
		if w.Step() != before {
			t.Errorf("step %d: step index mutated on failed validation", step)
		}
	}
}

func TestContinue_OneMessagePerInvalidField(t *testing.T) {
	w := New(nopSubmitter())

	errs := w.Continue()
	if len(errs) != 5 {
		t.Fatalf("empty step 1 should report 5 field errors, got %d: %v", len(errs), errs)
	}
	for _, field := range []string{"fullName", "email", "phone", "businessName", "businessType"} {
		if errs[field] == "" {
			t.Errorf("missing error for %s", field)
		}
	}
}

func TestContinue_EnumMembershipEnforced(t *testing.T) {
	w := New(nopSubmitter())
	advance(t, w, 1)
	w.Update(func(f *Form) { f.BusinessType = "Ice Cream Van" })

	errs := w.Continue()
	if errs["businessType"] == "" {
		t.Error("business type outside the option set should be rejected")
	}
}

func TestBack_NeverValidatesOrDiscards(t *testing.T) {
	w := New(nopSubmitter())
	advance(t, w, 3)
	if errs := w.Continue(); len(errs) > 0 {
		t.Fatalf("step 3 should validate, got %v", errs)
	}
	// Now on step 4 with steps 1-3 filled. Walk back to step 1.
	w.Back()
	w.Back()
	w.Back()
	if w.Step() != 1 {
		t.Fatalf("expected step 1, got %d", w.Step())
	}
	w.Back() // below first step: no-op
	if w.Step() != 1 {
		t.Errorf("Back below step 1 should be a no-op")
	}

	// Forward again without touching anything: values must be unchanged.
	for i := 0; i < 3; i++ {
		if errs := w.Continue(); len(errs) > 0 {
			t.Fatalf("refilled steps should still validate, got %v", errs)
		}
	}
	if got := w.Form().DesignStyle; got != "modern-minimal" {
		t.Errorf("design style lost on round-trip: %q", got)
	}
}

func TestSubmit_RequiresFinalStep(t *testing.T) {
	w := New(nopSubmitter())
	if _, err := w.Submit(context.Background()); !errors.Is(err, ErrNotFinalStep) {
		t.Errorf("expected ErrNotFinalStep, got %v", err)
	}
}

func TestSubmit_AgreeToTermsRequired(t *testing.T) {
	called := false
	w := New(SubmitterFunc(func(context.Context, Payload) error {
		called = true
		return nil
	}))
	advance(t, w, 5)
	w.Update(func(f *Form) { f.AgreeToTerms = false })

	errs, err := w.Submit(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errs["agreeToTerms"] == "" {
		t.Error("agreeToTerms=false must block submission")
	}
	if called {
		t.Error("submitter must not be called when validation fails")
	}
	if w.Status() != StatusIdle {
		t.Errorf("status should stay idle, got %v", w.Status())
	}
}

func TestSubmit_SuccessIsTerminal(t *testing.T) {
	w := New(nopSubmitter())
	advance(t, w, 5)

	errs, err := w.Submit(context.Background())
	if err != nil || len(errs) > 0 {
		t.Fatalf("submit failed: errs=%v err=%v", errs, err)
	}
	if w.Status() != StatusSucceeded {
		t.Fatalf("status = %v", w.Status())
	}

	if _, err := w.Submit(context.Background()); !errors.Is(err, ErrCompleted) {
		t.Errorf("resubmitting a completed session should fail, got %v", err)
	}
	before := w.Step()
	w.Back()
	if w.Step() != before {
		t.Error("Back should be inert after success")
	}
}

func TestSubmit_FailureReturnsToFinalStep(t *testing.T) {
	boom := errors.New("service unavailable")
	w := New(SubmitterFunc(func(context.Context, Payload) error { return boom }))
	advance(t, w, 5)

	_, err := w.Submit(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected submitter error, got %v", err)
	}
	if w.Status() != StatusFailed {
		t.Errorf("status = %v", w.Status())
	}
	if w.Step() != LastStep {
		t.Errorf("step = %d, want %d", w.Step(), LastStep)
	}
	if got := w.Form().FullName; got != "Jo Smith" {
		t.Error("field values must survive a failed submission")
	}

	// Manual retry succeeds.
	w.submitter = nopSubmitter()
	if _, err := w.Submit(context.Background()); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if w.Status() != StatusSucceeded {
		t.Errorf("status after retry = %v", w.Status())
	}
}

func TestSubmit_InertWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	calls := 0
	var callMu sync.Mutex

	w := New(SubmitterFunc(func(context.Context, Payload) error {
		callMu.Lock()
		calls++
		callMu.Unlock()
		<-release
		return nil
	}))
	advance(t, w, 5)

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Submit(context.Background())
	}()

	// Wait until the first submission is in flight.
	for w.Status() != StatusSubmitting {
		runtime.Gosched()
	}

	if _, err := w.Submit(context.Background()); !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("expected ErrSubmitInFlight, got %v", err)
	}

	close(release)
	<-done

	callMu.Lock()
	defer callMu.Unlock()
	if calls != 1 {
		t.Errorf("submitter called %d times, want 1", calls)
	}
}

func TestPayload_DefaultsOptionalFields(t *testing.T) {
	f := NewForm()
	fillStep1(&f)
	fillStep2(&f)
	fillStep3(&f)
	fillStep4(&f)
	fillStep5(&f)

	p := f.payload()
	if p.ColorPreference != "Not specified" {
		t.Errorf("ColorPreference = %q", p.ColorPreference)
	}
	if p.ReferenceWebsites != "None provided" {
		t.Errorf("ReferenceWebsites = %q", p.ReferenceWebsites)
	}
	if p.SpecialFeatures != "None specified" {
		t.Errorf("SpecialFeatures = %q", p.SpecialFeatures)
	}
	if p.ExistingDomain != "N/A" {
		t.Errorf("ExistingDomain = %q", p.ExistingDomain)
	}

	f.ColorPreference = "Blue and gold"
	if got := f.payload().ColorPreference; got != "Blue and gold" {
		t.Errorf("filled optional field should pass through, got %q", got)
	}
}

func TestTogglePage(t *testing.T) {
	f := NewForm()
	f.TogglePage("Blog")
	if len(f.RequiredPages) != 4 {
		t.Errorf("expected Blog added, got %v", f.RequiredPages)
	}
	f.TogglePage("Blog")
	f.TogglePage("Home Page")
	if len(f.RequiredPages) != 2 {
		t.Errorf("expected Blog and Home Page removed, got %v", f.RequiredPages)
	}
}
