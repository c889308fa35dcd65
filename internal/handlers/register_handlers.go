package handlers

import (
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	portssvc "github.com/sahakari-app/sahakari_backend/internal/core/ports/services"
	"github.com/sahakari-app/sahakari_backend/internal/middleware"
	"github.com/sahakari-app/sahakari_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, services.Auth, loginLimiter)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerMemberRoutes(v1, services.Member)
	registerSavingRoutes(v1, services.Saving)
	registerLoanRoutes(v1, services.Loan)
	registerPaymentRoutes(v1, services.Payment)
	registerFineRoutes(v1, services.Fine)
	registerExpenditureRoutes(v1, services.Expenditure)
	registerChatRoutes(v1, services.Chat)
	registerUserRoutes(v1, services.User)
	registerSettingsRoutes(v1, services.Settings)
	registerBackupRoutes(v1, services.Backup)
	registerReportingRoutes(v1, services.Reporting)
}
