package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	// Ticket submission is the public intake form: requesters are not admins
	// and carry no session. Everything else is dashboard-only.
	engine.POST("/tickets", config.TicketHandler.CreateTicket)

	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.GET("",
			config.TicketHandler.ListTickets)
		tickets.GET("/stats",
			config.TicketHandler.GetStats)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.PUT("/:id/status",
			config.TicketHandler.ChangeStatus)
		tickets.PUT("/:id/remarks",
			config.TicketHandler.UpdateRemarks)
		tickets.POST("/:id/comments",
			config.TicketHandler.AddComment)
		tickets.GET("/:id/comments",
			config.TicketHandler.ListComments)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.PATCH("/:id",
			config.TicketHandler.PatchTicket)
		tickets.DELETE("/:id",
			authorization.RequireAdmin(),
			config.TicketHandler.DeleteTicket)
	}
}
