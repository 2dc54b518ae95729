package handlers

import (
	"github.com/fxcalc/currency-calculator-api/cmd/docs"
	portssvc "github.com/fxcalc/currency-calculator-api/internal/core/ports/services"
	"github.com/fxcalc/currency-calculator-api/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup /api routes, passing service interfaces
	setupAPIRoutes(r, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group and delegates to specific route registrations
func setupAPIRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api")

	// Delegate route registration to specific handlers, passing required services
	registerExchangeRoutes(api, services.Exchange)
	registerInfoRoutes(api, services.Info)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
