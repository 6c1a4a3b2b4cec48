package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wayfarer/cmd/fx/exportfx"
	"wayfarer/cmd/fx/plannerfx"
	"wayfarer/internal/api/controllers"
	"wayfarer/pkg/middleware"
)

func main() {
	// .env is optional in deployed environments.
	_ = godotenv.Load()

	app := fx.New(
		plannerfx.Module,
		exportfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
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
	plannerController *controllers.PlannerController,
	exportController *controllers.ExportController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.TraceIDMiddleware())
	r.LoadHTMLGlob("web/templates/*")

	RegisterRoutes(r, plannerController, exportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	exportController *controllers.ExportController) {

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})

	api := r.Group("/api")
	api.POST("/plans", plannerController.CreatePlanHandler)
	api.POST("/plans/export", exportController.ExportPlanHandler)
	api.GET("/diagnostics", plannerController.DiagnosticsHandler)
}
