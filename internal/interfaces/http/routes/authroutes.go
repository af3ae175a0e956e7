package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "helpdesk/internal/interfaces/http/handlers/auth"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"

	"helpdesk/internal/infrastructure/ratelimit"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *authhandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    ratelimit.RateLimiter
	Logger         logger.Interface
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login",
			middleware.LoginRateLimit(cfg.RateLimiter, cfg.Logger),
			cfg.AuthHandler.Login)
		auth.POST("/logout", cfg.AuthHandler.Logout)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}
}
