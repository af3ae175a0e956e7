package routes

import (
	"github.com/gin-gonic/gin"

	referencehandlers "helpdesk/internal/interfaces/http/handlers/reference"
	"helpdesk/internal/interfaces/http/middleware"
)

type ReferenceRouteConfig struct {
	ReferenceHandler *referencehandlers.Handler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupReferenceRoutes(engine *gin.Engine, config *ReferenceRouteConfig) {
	engine.GET("/organizations",
		config.AuthMiddleware.RequireAuth(),
		config.ReferenceHandler.ListOrganizations)
	engine.GET("/platforms",
		config.AuthMiddleware.RequireAuth(),
		config.ReferenceHandler.ListPlatforms)
}
