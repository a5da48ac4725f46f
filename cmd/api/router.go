package main

import (
	"context"
	"net/http"
	"time"

	"eco-restaurants/internal/shared/middleware"
	"eco-restaurants/internal/shared/response"
	"eco-restaurants/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		c.RestaurantHandler.RegisterRoutes(api)
	}

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Route not found")
	})

	return router
}

// healthCheckHandler reports the record store and Redis. The store is
// critical (503 when down); Redis only degrades the name lock.
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"store":     appCtx.Config.Store.Driver,
		}
		services := gin.H{}

		if appCtx.DB != nil {
			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				services["database"] = gin.H{"status": "down", "error": err.Error()}
				health["status"] = "unavailable"
				status = http.StatusServiceUnavailable
			} else {
				dbHealth := gin.H{"status": "ok"}
				if stats, err := appCtx.DB.Stats(); err == nil {
					dbHealth["pool"] = stats
				}
				services["database"] = dbHealth
			}
		}

		if appCtx.Redis == nil {
			services["redis"] = gin.H{"status": "disabled"}
		} else if latency, err := appCtx.Redis.HealthCheck(ctx); err != nil {
			services["redis"] = gin.H{"status": "down", "error": err.Error()}
			if status == http.StatusOK {
				health["status"] = "degraded"
			}
		} else {
			services["redis"] = gin.H{"status": "ok", "latency_ms": latency.Milliseconds()}
		}

		health["services"] = services
		c.JSON(status, health)
	}
}
