package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wander/internal/web"
	"wander/pkg/nominatim"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	app := fx.New(
		fx.Provide(ProvideAPIClient),
		fx.Provide(ProvidePlanner),
		fx.Provide(web.NewSessionStore),
		fx.Provide(web.NewHandlers),
		fx.Provide(web.NewRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideAPIClient() *web.APIClient {
	base := os.Getenv("API_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return web.NewAPIClient(base)
}

func ProvidePlanner() *web.Planner {
	return web.NewPlanner(nominatim.NewClient(os.Getenv("NOMINATIM_URL")))
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("WEB_PORT")
				if port == "" {
					port = "3000"
				}
				log.Printf("Starting web server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping web server")
			return nil
		},
	})
}
