package intake

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	formContact    = "contact"
	formOnboarding = "onboarding"

	outcomeAccepted         = "accepted"
	outcomeValidationFailed = "validation_failed"
	outcomeSendFailed       = "send_failed"
)

var (
	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "intake_submissions_total",
		Help: "Form submissions by form and outcome.",
	}, []string{"form", "outcome"})

	confirmationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "intake_confirmation_send_failures_total",
		Help: "Best-effort requester confirmation emails that failed to send.",
	}, []string{"form"})
)
