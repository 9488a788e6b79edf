package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/sairaj2832-star/DISHANVESHI/cmd/fx/accountfx"
	"github.com/sairaj2832-star/DISHANVESHI/cmd/fx/cachefx"
	"github.com/sairaj2832-star/DISHANVESHI/cmd/fx/dbfx"
	"github.com/sairaj2832-star/DISHANVESHI/cmd/fx/itineraryfx"
	"github.com/sairaj2832-star/DISHANVESHI/cmd/fx/placesfx"
	"github.com/sairaj2832-star/DISHANVESHI/internal/api/controllers"
	"github.com/sairaj2832-star/DISHANVESHI/internal/config"
	"github.com/sairaj2832-star/DISHANVESHI/pkg/logger"
	"github.com/sairaj2832-star/DISHANVESHI/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(config.Load, provideLogger, ProvideRouter),
		dbfx.Module,
		cachefx.Module,
		accountfx.Module,
		placesfx.Module,
		itineraryfx.Module,

		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Log.Level)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
				if err := engine.Run(":" + cfg.Server.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController) {

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	itinerariesGroup := r.Group("/itineraries")
	itinerariesGroup.Use(middleware.JWTAuthMiddleware())
	itinerariesGroup.POST("/generate", itineraryController.Generate)
	itinerariesGroup.POST("", itineraryController.Save)
	itinerariesGroup.GET("", itineraryController.List)
	itinerariesGroup.POST("/recommendation", itineraryController.Recommend)
}
