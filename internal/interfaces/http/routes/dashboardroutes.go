package routes

import (
	"github.com/gin-gonic/gin"

	"caterly/internal/interfaces/http/handlers"
	"caterly/internal/interfaces/http/middleware"
	"caterly/internal/shared/authorization"
)

// DashboardRouteConfig holds dependencies for dashboard routes.
type DashboardRouteConfig struct {
	DashboardHandler *handlers.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupDashboardRoutes configures the caterer dashboard route.
func SetupDashboardRoutes(engine *gin.Engine, cfg *DashboardRouteConfig) {
	dashboard := engine.Group("/caterer/dashboard")
	dashboard.Use(cfg.AuthMiddleware.RequireAuth())
	dashboard.Use(authorization.RequireCaterer())
	{
		dashboard.GET("", cfg.DashboardHandler.GetStats)
	}
}
