package router

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/syedwebdesign/intake_backend/config"
	"github.com/syedwebdesign/intake_backend/internal/api/http/handler"
	"github.com/syedwebdesign/intake_backend/internal/api/http/middleware"
	"github.com/syedwebdesign/intake_backend/pkg/ratelimit"
)

// Each form route carries its own fixed-window limiter, checked before the
// body is parsed. Non-POST verbs fall through to the 405 handler.
func (r *Router) registerIntakeRoutes(api fiber.Router, contactH *handler.ContactHandler, onboardingH *handler.OnboardingHandler) {
	contactLimit := r.newLimiter(r.p.Cfg.Intake.Contact)
	onboardingLimit := r.newLimiter(r.p.Cfg.Intake.Onboarding)

	api.Post("/contact", contactLimit, contactH.Submit)
	api.All("/contact", handler.MethodNotAllowed)

	api.Post("/onboarding", onboardingLimit, onboardingH.Submit)
	api.All("/onboarding", handler.MethodNotAllowed)
}

// newLimiter builds a route's limiter and stops its background sweep on
// shutdown.
func (r *Router) newLimiter(cfg config.RateLimitConfig) fiber.Handler {
	l := ratelimit.New(cfg.MaxRequests, time.Duration(cfg.WindowSeconds)*time.Second)
	r.p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			l.Close()
			return nil
		},
	})
	return middleware.Limit(l)
}
