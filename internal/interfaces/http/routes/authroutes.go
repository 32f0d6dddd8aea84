package routes

import (
	"github.com/gin-gonic/gin"

	"caterly/internal/interfaces/http/handlers"
	"caterly/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter // nil when redis is disabled
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		if cfg.RateLimiter != nil {
			auth.POST("/signup", cfg.RateLimiter.Limit(), cfg.AuthHandler.Signup)
			auth.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		} else {
			auth.POST("/signup", cfg.AuthHandler.Signup)
			auth.POST("/login", cfg.AuthHandler.Login)
		}

		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}
}
