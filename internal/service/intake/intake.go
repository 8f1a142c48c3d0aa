package intake

import (
	"context"
	"log/slog"

	"github.com/syedwebdesign/intake_backend/config"
	"github.com/syedwebdesign/intake_backend/pkg/email"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// ContactRequest is a plain contact-form submission.
type ContactRequest struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// OnboardingRequest is the flattened snapshot of the five-step intake
// wizard. Only FullName and Email are required; every other field arrives
// defaulted to an empty string or slice.
type OnboardingRequest struct {
	FullName          string
	Email             string
	Phone             string
	BusinessName      string
	BusinessType      string
	WebsitePurpose    string
	TargetAudience    string
	MainGoal          string
	DesignStyle       string
	ColorPreference   string
	ReferenceWebsites string
	RequiredPages     []string
	HasContent        string
	SpecialFeatures   string
	DomainPreference  string
	ExistingDomain    string
	Timeline          string
}

// ---------------------------------------------------------------------------
// Interfaces
// ---------------------------------------------------------------------------

// Mailer sends one email message. Satisfied by *email.Client.
type Mailer interface {
	Send(ctx context.Context, m email.Message) error
}

// Service relays validated form submissions as email.
type Service interface {
	SubmitContact(ctx context.Context, req ContactRequest) error
	SubmitOnboarding(ctx context.Context, req OnboardingRequest) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

const defaultAdminAddress = "syedwebdesigndevelopers@gmail.com"

type intakeService struct {
	mailer Mailer
	admin  string
}

func New(mailer Mailer, cfg config.IntakeConfig) Service {
	admin := cfg.AdminAddress
	if admin == "" {
		admin = defaultAdminAddress
	}
	return &intakeService{mailer: mailer, admin: admin}
}

// SubmitContact runs the contact pipeline: validate, sanitize, notify the
// operator, then confirm to the requester best-effort.
func (s *intakeService) SubmitContact(ctx context.Context, req ContactRequest) error {
	req = trimContact(req)

	if details := validateContact(req); len(details) > 0 {
		submissionsTotal.WithLabelValues(formContact, outcomeValidationFailed).Inc()
		return &ValidationError{Details: details}
	}

	safe := sanitizeContact(req)

	slog.Info("processing contact form", "from", safe.Email)

	if err := s.mailer.Send(ctx, buildContactAdminEmail(s.admin, safe)); err != nil {
		submissionsTotal.WithLabelValues(formContact, outcomeSendFailed).Inc()
		slog.Error("failed to send admin email", "form", formContact, "error", err)
		return ErrSendFailed
	}

	// The confirmation is advisory. Its failure must never surface.
	if err := s.mailer.Send(ctx, buildContactConfirmationEmail(req.Email, safe)); err != nil {
		confirmationFailures.WithLabelValues(formContact).Inc()
		slog.Warn("failed to send confirmation email", "form", formContact, "error", err)
	}

	submissionsTotal.WithLabelValues(formContact, outcomeAccepted).Inc()
	return nil
}

// SubmitOnboarding runs the same pipeline for the five-step intake form.
func (s *intakeService) SubmitOnboarding(ctx context.Context, req OnboardingRequest) error {
	req = trimOnboarding(req)

	if details := validateOnboarding(req); len(details) > 0 {
		submissionsTotal.WithLabelValues(formOnboarding, outcomeValidationFailed).Inc()
		return &ValidationError{Details: details}
	}

	safe := sanitizeOnboarding(req)

	slog.Info("processing onboarding form", "from", safe.Email)

	if err := s.mailer.Send(ctx, buildOnboardingAdminEmail(s.admin, safe)); err != nil {
		submissionsTotal.WithLabelValues(formOnboarding, outcomeSendFailed).Inc()
		slog.Error("failed to send admin email", "form", formOnboarding, "error", err)
		return ErrSendFailed
	}

	if err := s.mailer.Send(ctx, buildOnboardingConfirmationEmail(req.Email, safe)); err != nil {
		confirmationFailures.WithLabelValues(formOnboarding).Inc()
		slog.Warn("failed to send confirmation email", "form", formOnboarding, "error", err)
	}

	submissionsTotal.WithLabelValues(formOnboarding, outcomeAccepted).Inc()
	return nil
}
