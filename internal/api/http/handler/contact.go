package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/syedwebdesign/intake_backend/internal/service/intake"
)

type ContactHandler struct {
	svc intake.Service
}

func NewContactHandler(svc intake.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

type submitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req submitContactRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	err := h.svc.SubmitContact(c.Context(), intake.ContactRequest{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
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
