package routes

import (
	"github.com/gin-gonic/gin"

	"caterly/internal/interfaces/http/handlers"
	"caterly/internal/interfaces/http/middleware"
	"caterly/internal/shared/authorization"
)

// MetadataRouteConfig holds dependencies for lookup metadata routes.
type MetadataRouteConfig struct {
	MetadataHandler *handlers.MetadataHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupMetadataRoutes configures caterer metadata routes.
func SetupMetadataRoutes(engine *gin.Engine, cfg *MetadataRouteConfig) {
	meta := engine.Group("/caterer/metadata")
	meta.Use(cfg.AuthMiddleware.RequireAuth())
	meta.Use(authorization.RequireCaterer())
	{
		meta.GET("/cuisine-types", cfg.MetadataHandler.ListCuisineTypes)
		meta.GET("/categories", cfg.MetadataHandler.ListCategories)
		meta.GET("/subcategories", cfg.MetadataHandler.ListSubCategories)
		meta.GET("/freeforms", cfg.MetadataHandler.ListFreeForms)
		meta.GET("/package-types", cfg.MetadataHandler.ListPackageTypes)
	}
}
