package app

import (
	"go.uber.org/fx"

	"github.com/syedwebdesign/intake_backend/config"
	"github.com/syedwebdesign/intake_backend/internal/service/intake"
	"github.com/syedwebdesign/intake_backend/pkg/email"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(ProvideIntakeService),
)

func ProvideIntakeService(emailClient *email.Client, cfg *config.Config) intake.Service {
	return intake.New(emailClient, cfg.Intake)
}
