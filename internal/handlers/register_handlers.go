package handlers

import (
	"github.com/SscSPs/newswire_macros/cmd/docs"
	portssvc "github.com/SscSPs/newswire_macros/internal/core/ports/services"
	"github.com/SscSPs/newswire_macros/internal/middleware"
	"github.com/SscSPs/newswire_macros/internal/platform/config"
	"github.com/SscSPs/newswire_macros/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteDeps carries the optional cross-cutting collaborators of the routes.
type RouteDeps struct {
	// RateLimiter guards the macro run route when set.
	RateLimiter *limiter.Limiter
	// Posthog receives usage events. A nil or uninitialized client is a no-op.
	Posthog *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	// Add health check route
	r.GET("/health", getHealth)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, deps)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	// Apply AuthMiddleware to the entire v1 group, usage tracking runs after auth so the user is known
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret), middleware.PosthogMiddleware(deps.Posthog))

	var runLimits []gin.HandlerFunc
	if deps.RateLimiter != nil {
		runLimits = append(runLimits, middleware.RateLimit(deps.RateLimiter))
	}

	// Delegate route registration to specific handlers, passing required services
	registerExchangeRateRoutes(v1, service.ExchangeRate)
	registerMacroRoutes(v1, service.Macro, deps.Posthog, runLimits...)
	registerLocatorRoutes(v1, service.Locator)
	registerFormatterRoutes(v1, service.Formatter)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
