// Package http wires repositories, use cases, and handlers into the Gin
// engine serving the admin dashboard API.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	authusecases "helpdesk/internal/application/auth/usecases"
	referenceusecases "helpdesk/internal/application/reference/usecases"
	ticketusecases "helpdesk/internal/application/ticket/usecases"
	infraauth "helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/storage"
	attachmenthandlers "helpdesk/internal/interfaces/http/handlers/attachment"
	authhandlers "helpdesk/internal/interfaces/http/handlers/auth"
	referencehandlers "helpdesk/internal/interfaces/http/handlers/reference"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"

	infraservices "helpdesk/internal/infrastructure/services"
)

// Router represents the HTTP router configuration
type Router struct {
	engine            *gin.Engine
	ticketHandler     *tickethandlers.Handler
	authHandler       *authhandlers.Handler
	referenceHandler  *referencehandlers.Handler
	attachmentHandler *attachmenthandlers.Handler
	authMiddleware    *middleware.AuthMiddleware
	rateLimiter       ratelimit.RateLimiter
	cfg               *config.Config
	logger            logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	orgRepo := repository.NewOrganizationRepository(gormDB)
	platformRepo := repository.NewPlatformRepository(gormDB)
	adminRepo := repository.NewAdminRepository(gormDB)

	txManager := db.NewTransactionManager(gormDB)
	serials := infraservices.NewSerialAllocator(gormDB)
	markdownSvc := markdown.NewService()

	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := infraauth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpiryMinutes)

	var notifier ticketusecases.Notifier
	if cfg.Email.Enabled {
		notifier = email.NewSMTPNotifier(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Server.BaseURL,
		})
	} else {
		notifier = email.NewNoopNotifier()
	}

	var limiter ratelimit.RateLimiter
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	} else {
		limiter = ratelimit.NewNoopRateLimiter()
	}

	presigner := storage.NewPresigner(
		cfg.Upload.SigningSecret,
		time.Duration(cfg.Upload.ExpiryMinutes)*time.Minute,
		cfg.Server.BaseURL,
	)
	store, err := storage.NewLocalStore(cfg.Upload.Dir, cfg.Upload.MaxSizeMB)
	if err != nil {
		return nil, err
	}

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, orgRepo, platformRepo, serials, txManager, notifier, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, orgRepo, platformRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, orgRepo, platformRepo, log)
	patchTicketUC := ticketusecases.NewPatchTicketUseCase(ticketRepo, orgRepo, platformRepo, txManager, notifier, log)
	changeStatusUC := ticketusecases.NewChangeStatusUseCase(ticketRepo, orgRepo, platformRepo, txManager, notifier, log)
	updateRemarksUC := ticketusecases.NewUpdateRemarksUseCase(ticketRepo, orgRepo, platformRepo, txManager, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, log)
	getStatsUC := ticketusecases.NewGetTicketStatsUseCase(ticketRepo, log)
	addCommentUC := ticketusecases.NewAddCommentUseCase(ticketRepo, commentRepo, markdownSvc, log)
	listCommentsUC := ticketusecases.NewListCommentsUseCase(ticketRepo, commentRepo, markdownSvc, log)

	loginUC := authusecases.NewLoginUseCase(adminRepo, hasher, jwtService, log)
	currentAdminUC := authusecases.NewGetCurrentAdminUseCase(adminRepo, log)

	listOrganizationsUC := referenceusecases.NewListOrganizationsUseCase(orgRepo, log)
	listPlatformsUC := referenceusecases.NewListPlatformsUseCase(platformRepo, log)

	ticketHandler := tickethandlers.NewHandler(
		createTicketUC, getTicketUC, listTicketsUC, patchTicketUC,
		changeStatusUC, updateRemarksUC, deleteTicketUC, getStatsUC,
		addCommentUC, listCommentsUC,
	)
	authHandler := authhandlers.NewHandler(loginUC, currentAdminUC, cfg.Auth.Cookie)
	referenceHandler := referencehandlers.NewHandler(listOrganizationsUC, listPlatformsUC)
	attachmentHandler := attachmenthandlers.NewHandler(presigner, store)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	return &Router{
		engine:            engine,
		ticketHandler:     ticketHandler,
		authHandler:       authHandler,
		referenceHandler:  referenceHandler,
		attachmentHandler: attachmentHandler,
		authMiddleware:    authMiddleware,
		rateLimiter:       limiter,
		cfg:               cfg,
		logger:            log,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.ErrorHandler())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
		Logger:         r.logger,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupReferenceRoutes(r.engine, &routes.ReferenceRouteConfig{
		ReferenceHandler: r.referenceHandler,
		AuthMiddleware:   r.authMiddleware,
	})

	routes.SetupAttachmentRoutes(r.engine, &routes.AttachmentRouteConfig{
		AttachmentHandler: r.attachmentHandler,
		AuthMiddleware:    r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
