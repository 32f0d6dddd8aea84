package routes

import (
	"github.com/gin-gonic/gin"

	"caterly/internal/interfaces/http/handlers"
	"caterly/internal/interfaces/http/middleware"
	"caterly/internal/shared/authorization"
)

// DishRouteConfig holds dependencies for dish routes.
type DishRouteConfig struct {
	DishHandler    *handlers.DishHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupDishRoutes configures caterer dish routes.
func SetupDishRoutes(engine *gin.Engine, cfg *DishRouteConfig) {
	dishes := engine.Group("/caterer/dishes")
	dishes.Use(cfg.AuthMiddleware.RequireAuth())
	dishes.Use(authorization.RequireCaterer())
	{
		dishes.GET("", cfg.DishHandler.List)
		dishes.GET("/:id", cfg.DishHandler.Get)
		dishes.POST("", cfg.DishHandler.Create)
		dishes.PUT("/:id", cfg.DishHandler.Update)
		dishes.DELETE("/:id", cfg.DishHandler.Delete)
	}
}
