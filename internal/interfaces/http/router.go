// Package http wires repositories, use cases, handlers and routes into a
// single Gin engine.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUC "caterly/internal/application/auth/usecases"
	catalogUC "caterly/internal/application/catalog/usecases"
	dashboardUC "caterly/internal/application/dashboard/usecases"
	metadataApp "caterly/internal/application/metadata"
	"caterly/internal/infrastructure/auth"
	"caterly/internal/infrastructure/config"
	"caterly/internal/infrastructure/repository"
	"caterly/internal/infrastructure/storage"
	"caterly/internal/interfaces/http/handlers"
	"caterly/internal/interfaces/http/middleware"
	"caterly/internal/interfaces/http/routes"
	"caterly/internal/shared/db"
	"caterly/internal/shared/logger"
)

// Router holds the configured Gin engine and its route dependencies.
type Router struct {
	engine             *gin.Engine
	authHandler        *handlers.AuthHandler
	dishHandler        *handlers.DishHandler
	packageHandler     *handlers.PackageHandler
	packageItemHandler *handlers.PackageItemHandler
	metadataHandler    *handlers.MetadataHandler
	dashboardHandler   *handlers.DashboardHandler
	healthHandler      *handlers.HealthHandler
	authMiddleware     *middleware.AuthMiddleware
	rateLimiter        *middleware.RateLimiter
	logger             logger.Interface
}

// NewRouter builds the full dependency graph on top of the given database
// handle. redisClient may be nil, in which case auth routes run without a
// rate limiter.
func NewRouter(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(gormDB, log)
	dishRepo := repository.NewDishRepository(gormDB, log)
	packageRepo := repository.NewPackageRepository(gormDB, log)
	itemRepo := repository.NewPackageItemRepository(gormDB, log)
	metaRepo := repository.NewMetadataRepository(gormDB, log)
	dashboardRepo := repository.NewDashboardRepository(gormDB, log)

	txMgr := db.NewTransactionManager(gormDB)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpiryDays)
	uploader := storage.NewHTTPImageUploader(&cfg.Upload, log)

	signupUC := authUC.NewSignupUseCase(userRepo, hasher, jwtService, log)
	loginUC := authUC.NewLoginUseCase(userRepo, hasher, jwtService, log)
	getCurrentUserUC := authUC.NewGetCurrentUserUseCase(userRepo, log)

	createDishUC := catalogUC.NewCreateDishUseCase(dishRepo, metaRepo, log)
	listDishesUC := catalogUC.NewListDishesUseCase(dishRepo, log)
	getDishUC := catalogUC.NewGetDishUseCase(dishRepo, log)
	updateDishUC := catalogUC.NewUpdateDishUseCase(dishRepo, metaRepo, log)
	deleteDishUC := catalogUC.NewDeleteDishUseCase(dishRepo, txMgr, log)

	createPackageUC := catalogUC.NewCreatePackageUseCase(packageRepo, metaRepo, log)
	listPackagesUC := catalogUC.NewListPackagesUseCase(packageRepo, log)
	getPackageUC := catalogUC.NewGetPackageUseCase(packageRepo, log)
	updatePackageUC := catalogUC.NewUpdatePackageUseCase(packageRepo, metaRepo, log)
	linkItemsUC := catalogUC.NewLinkPackageItemsUseCase(packageRepo, itemRepo, txMgr, log)

	createItemUC := catalogUC.NewCreatePackageItemUseCase(itemRepo, dishRepo, packageRepo, log)
	listItemsUC := catalogUC.NewListPackageItemsUseCase(itemRepo, log)
	getItemUC := catalogUC.NewGetPackageItemUseCase(itemRepo, log)
	updateItemUC := catalogUC.NewUpdatePackageItemUseCase(itemRepo, dishRepo, log)
	deleteItemUC := catalogUC.NewDeletePackageItemUseCase(itemRepo, log)

	metadataService := metadataApp.NewService(metaRepo, log)
	getStatsUC := dashboardUC.NewGetStatsUseCase(userRepo, dashboardRepo, log)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		window := time.Duration(cfg.Redis.RateWindowSecs) * time.Second
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.Redis.RateLimit, window)
	}

	return &Router{
		engine:             engine,
		authHandler:        handlers.NewAuthHandler(signupUC, loginUC, getCurrentUserUC, log),
		dishHandler:        handlers.NewDishHandler(createDishUC, listDishesUC, getDishUC, updateDishUC, deleteDishUC, uploader, log),
		packageHandler:     handlers.NewPackageHandler(createPackageUC, listPackagesUC, getPackageUC, updatePackageUC, linkItemsUC, log),
		packageItemHandler: handlers.NewPackageItemHandler(createItemUC, listItemsUC, getItemUC, updateItemUC, deleteItemUC, log),
		metadataHandler:    handlers.NewMetadataHandler(metadataService, log),
		dashboardHandler:   handlers.NewDashboardHandler(getStatsUC, log),
		healthHandler:      handlers.NewHealthHandler(gormDB),
		authMiddleware:     middleware.NewAuthMiddleware(jwtService, log),
		rateLimiter:        rateLimiter,
		logger:             log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.Logger(r.logger))

	r.engine.GET("/health", r.healthHandler.Check)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupDishRoutes(r.engine, &routes.DishRouteConfig{
		DishHandler:    r.dishHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupPackageRoutes(r.engine, &routes.PackageRouteConfig{
		PackageHandler:     r.packageHandler,
		PackageItemHandler: r.packageItemHandler,
		AuthMiddleware:     r.authMiddleware,
	})

	routes.SetupMetadataRoutes(r.engine, &routes.MetadataRouteConfig{
		MetadataHandler: r.metadataHandler,
		AuthMiddleware:  r.authMiddleware,
	})

	routes.SetupDashboardRoutes(r.engine, &routes.DashboardRouteConfig{
		DashboardHandler: r.dashboardHandler,
		AuthMiddleware:   r.authMiddleware,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
