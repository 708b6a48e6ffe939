package app

import (
	"go.uber.org/fx"

	"github.com/habitacasa/habitacasa_backend/internal/repo"
	"github.com/habitacasa/habitacasa_backend/internal/service/commission"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideCommissionService,
	),
)

func ProvideCommissionService(db *repo.Client) commission.Service {
	return commission.New(db)
}
