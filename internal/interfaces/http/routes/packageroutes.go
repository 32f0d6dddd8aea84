package routes

import (
	"github.com/gin-gonic/gin"

	"caterly/internal/interfaces/http/handlers"
	"caterly/internal/interfaces/http/middleware"
	"caterly/internal/shared/authorization"
)

// PackageRouteConfig holds dependencies for package and package item routes.
type PackageRouteConfig struct {
	PackageHandler     *handlers.PackageHandler
	PackageItemHandler *handlers.PackageItemHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// SetupPackageRoutes configures caterer package routes. Item routes live
// under the static /items prefix so they never collide with package IDs.
func SetupPackageRoutes(engine *gin.Engine, cfg *PackageRouteConfig) {
	packages := engine.Group("/caterer/packages")
	packages.Use(cfg.AuthMiddleware.RequireAuth())
	packages.Use(authorization.RequireCaterer())
	{
		items := packages.Group("/items")
		{
			items.GET("", cfg.PackageItemHandler.List)
			items.GET("/:id", cfg.PackageItemHandler.Get)
			items.POST("", cfg.PackageItemHandler.Create)
			items.PUT("/:id", cfg.PackageItemHandler.Update)
			items.DELETE("/:id", cfg.PackageItemHandler.Delete)
		}

		packages.GET("", cfg.PackageHandler.List)
		packages.GET("/:id", cfg.PackageHandler.Get)
		packages.POST("", cfg.PackageHandler.Create)
		packages.PUT("/:id", cfg.PackageHandler.Update)
		packages.POST("/:id/items/link", cfg.PackageHandler.LinkItems)
	}
}
