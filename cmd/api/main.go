package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wander/cmd/fx/accountfx"
	"wander/cmd/fx/chatfx"
	"wander/cmd/fx/controllersfx"
	"wander/cmd/fx/dbfx"
	"wander/cmd/fx/llmfx"
	"wander/cmd/fx/planfx"
	"wander/cmd/fx/tripsfx"
	"wander/internal/api/controllers"
	"wander/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	app := fx.New(
		dbfx.Module,
		llmfx.Module,
		planfx.Module,
		chatfx.Module,
		accountfx.Module,
		tripsfx.Module,
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
	planController *controllers.PlanController,
	chatController *controllers.ChatController,
	authController *controllers.AuthController,
	tripsController *controllers.TripsController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, planController, chatController, authController, tripsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	planController *controllers.PlanController,
	chatController *controllers.ChatController,
	authController *controllers.AuthController,
	tripsController *controllers.TripsController) {

	r.POST("/plan-trip", planController.PlanTrip)
	r.POST("/chat", chatController.Chat)

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", authController.SignUp)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/google", authController.GoogleAuth)
	authGroup.GET("/me", middleware.JWTAuthMiddleware(), authController.GetProfile)
	authGroup.PUT("/me", middleware.JWTAuthMiddleware(), authController.UpdateProfile)

	tripsGroup := r.Group("/trips", middleware.JWTAuthMiddleware())
	tripsGroup.POST("", tripsController.SaveTrip)
	tripsGroup.GET("", tripsController.ListTrips)
	tripsGroup.GET("/:id", tripsController.GetTrip)
	tripsGroup.PATCH("/:id", tripsController.UpdateTrip)
	tripsGroup.DELETE("/:id", tripsController.DeleteTrip)
}
