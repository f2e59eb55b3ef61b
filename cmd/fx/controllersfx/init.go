package controllersfx

import (
	"go.uber.org/fx"

	"wander/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewTripsController))
