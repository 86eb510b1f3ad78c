package controllersfx

import (
	"go.uber.org/fx"
	"roamio/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewCountryController,
	controllers.NewDestinationController,
	controllers.NewHotelController,
	controllers.NewAttractionController,
	controllers.NewTripController,
	controllers.NewGuideController,
	controllers.NewAccountController,
)
