package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"roamio/cmd/fx/accountfx"
	"roamio/cmd/fx/catalogfx"
	"roamio/cmd/fx/controllersfx"
	"roamio/cmd/fx/guidefx"
	"roamio/cmd/fx/memcachefx"
	"roamio/cmd/fx/plannerfx"
	"roamio/cmd/fx/storefx"
	"roamio/cmd/fx/tripfx"
	"roamio/internal/api/controllers"
	mem "roamio/pkg/memcache"
	"roamio/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		storefx.Module,
		memcachefx.Module,
		plannerfx.Module,
		catalogfx.Module,
		tripfx.Module,
		guidefx.Module,
		accountfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	countryController *controllers.CountryController,
	destinationController *controllers.DestinationController,
	hotelController *controllers.HotelController,
	attractionController *controllers.AttractionController,
	tripController *controllers.TripController,
	guideController *controllers.GuideController,
	accountController *controllers.AccountController,
	revoked mem.RevokedTokenStore) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	RegisterRoutes(r,
		countryController,
		destinationController,
		hotelController,
		attractionController,
		tripController,
		guideController,
		accountController,
		revoked)

	return r
}

func RegisterRoutes(r *gin.Engine,
	countryController *controllers.CountryController,
	destinationController *controllers.DestinationController,
	hotelController *controllers.HotelController,
	attractionController *controllers.AttractionController,
	tripController *controllers.TripController,
	guideController *controllers.GuideController,
	accountController *controllers.AccountController,
	revoked mem.RevokedTokenStore) {

	api := r.Group("/api")

	countryGroup := api.Group("/countries")
	countryGroup.GET("", countryController.ListCountries)
	countryGroup.GET("/:code", countryController.GetCountryByCode)

	destinationGroup := api.Group("/destinations")
	destinationGroup.GET("", destinationController.ListDestinations)
	destinationGroup.POST("/search", destinationController.SearchDestinations)
	destinationGroup.GET("/:id", destinationController.GetDestination)
	destinationGroup.GET("/:id/hotels", hotelController.ListHotelsByDestination)
	destinationGroup.GET("/:id/attractions", attractionController.ListAttractionsByDestination)

	hotelGroup := api.Group("/hotels")
	hotelGroup.GET("", hotelController.ListAllHotels)
	hotelGroup.GET("/:id", hotelController.GetHotel)

	attractionGroup := api.Group("/attractions")
	attractionGroup.GET("", attractionController.ListAllAttractions)
	attractionGroup.GET("/:id", attractionController.GetAttraction)

	tripGroup := api.Group("/trips")
	tripGroup.GET("", tripController.ListTrips)
	tripGroup.POST("", tripController.CreateTrip)
	tripGroup.GET("/:id", tripController.GetTrip)
	tripGroup.PUT("/:id", tripController.UpdateTrip)
	tripGroup.DELETE("/:id", tripController.DeleteTrip)
	tripGroup.GET("/:id/details", tripController.GetTripDetails)
	tripGroup.POST("/:id/details", tripController.AddTripDetail)
	tripGroup.GET("/:id/budget", tripController.GetBudget)
	tripGroup.PUT("/:id/budget", tripController.UpdateBudget)

	guideGroup := api.Group("/tour-guides")
	guideGroup.GET("", guideController.ListTourGuides)
	guideGroup.POST("", guideController.CreateTourGuide)
	guideGroup.GET("/:id", guideController.GetTourGuide)
	guideGroup.GET("/:id/reviews", guideController.ListReviews)
	guideGroup.POST("/:id/reviews", guideController.AddReview)
	guideGroup.GET("/:id/photos", guideController.ListPhotos)
	guideGroup.POST("/:id/photos", guideController.AddPhoto)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)
	authGroup.POST("/logout", middleware.JWTAuthMiddleware(revoked), accountController.Logout)
}
