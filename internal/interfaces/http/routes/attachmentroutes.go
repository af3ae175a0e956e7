package routes

import (
	"github.com/gin-gonic/gin"

	attachmenthandlers "helpdesk/internal/interfaces/http/handlers/attachment"
	"helpdesk/internal/interfaces/http/middleware"
)

type AttachmentRouteConfig struct {
	AttachmentHandler *attachmenthandlers.Handler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupAttachmentRoutes(engine *gin.Engine, config *AttachmentRouteConfig) {
	// Requesters attach files while filling the public submission form, so
	// presigning is open; the grant itself is bounded by size and expiry.
	engine.POST("/attachments/presign", config.AttachmentHandler.Presign)

	// Uploads are authorized by the presigned URL signature, not a session.
	engine.PUT("/uploads/:key", config.AttachmentHandler.Upload)
	engine.GET("/uploads/:key", config.AttachmentHandler.Serve)
}
