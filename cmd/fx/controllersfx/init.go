package controllersfx

import (
	"go.uber.org/fx"

	"servio/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewOfferController),
	fx.Provide(controllers.NewOrderController),
	fx.Provide(controllers.NewReviewController),
	fx.Provide(controllers.NewDashboardController),
)
