package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/syedwebdesign/intake_backend/internal/service/intake"
)

type OnboardingHandler struct {
	svc intake.Service
}

func NewOnboardingHandler(svc intake.Service) *OnboardingHandler {
	return &OnboardingHandler{svc: svc}
}

// submitOnboardingRequest mirrors the wizard's wire payload. Optional
// fields absent from the body decode to their zero values, so the service
// never sees a missing field.
type submitOnboardingRequest struct {
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

func (h *OnboardingHandler) Submit(c fiber.Ctx) error {
	var req submitOnboardingRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	err := h.svc.SubmitOnboarding(c.Context(), intake.OnboardingRequest{
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		BusinessName:      req.BusinessName,
		BusinessType:      req.BusinessType,
		WebsitePurpose:    req.WebsitePurpose,
		TargetAudience:    req.TargetAudience,
		MainGoal:          req.MainGoal,
		DesignStyle:       req.DesignStyle,
		ColorPreference:   req.ColorPreference,
		ReferenceWebsites: req.ReferenceWebsites,
		RequiredPages:     req.RequiredPages,
		HasContent:        req.HasContent,
		SpecialFeatures:   req.SpecialFeatures,
		DomainPreference:  req.DomainPreference,
		ExistingDomain:    req.ExistingDomain,
		Timeline:          req.Timeline,
	})

	var verr *intake.ValidationError
	switch {
	case errors.As(err, &verr):
		return validationFailed(c, verr.Details)
	case err != nil:
		return sendFailure(c)
	}
	return success(c)
}
