package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/finance_tracker/cmd/docs"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// posthogClient may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	if err := RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if err := registerAuthRoutes(r, cfg, services); err != nil {
		return err
	}

	setupAPIV1Routes(r, cfg, services, posthogClient)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates to the entity registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	if posthogClient.IsInitialized() {
		v1.Use(middleware.PosthogMiddleware(posthogClient))
	}

	registerUserRoutes(v1, services.User)
	registerTransactionRoutes(v1, services.Transaction)
	registerDashboardRoutes(v1, services.Dashboard)
	registerCategoryRoutes(v1, services.Dashboard)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
