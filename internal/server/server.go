package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/farellandr/eventportal/config"
	"github.com/farellandr/eventportal/internal/browse"
	"github.com/farellandr/eventportal/internal/filterstore"
	"github.com/farellandr/eventportal/internal/gateway"
	"github.com/farellandr/eventportal/internal/handlers"
	"github.com/farellandr/eventportal/internal/helpers"
	"github.com/farellandr/eventportal/internal/logger"
	"github.com/farellandr/eventportal/internal/middleware"
	"github.com/farellandr/eventportal/internal/models"
)

// Dependencies are the long-lived values the routes are served with.
type Dependencies struct {
	DB       *gorm.DB
	Browse   *browse.Service
	Signer   *helpers.PassSigner
	Logger   *zap.Logger
	Settings middleware.Settings
}

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	log := logger.New(&logger.Config{
		Level:       cfg.LogLevel,
		ServiceName: "eventportal",
		Development: cfg.LogDevelopment,
	})
	defer log.Sync()

	gin.SetMode(cfg.GinMode)

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	var store *filterstore.Store
	redisClient, err := config.InitRedis(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		store = filterstore.New(redisClient, cfg.FilterTTL)
	} else {
		log.Info("REDIS_URL not set, saved filters disabled")
	}

	backend := gateway.NewClient(cfg.GatewayURL, cfg.GatewayTimeout)
	svc := browse.NewService(backend, backend,
		browse.WithFilterStore(store),
		browse.WithLogger(log),
		browse.WithPageSizes(cfg.BrowsePageSize, cfg.ManagePageSize),
	)

	r := gin.New()
	setupRoutes(r, Dependencies{
		DB:     db,
		Browse: svc,
		Signer: helpers.NewPassSigner(cfg.PassSecret),
		Logger: log,
		Settings: middleware.Settings{
			JWTSecret: cfg.JWTSecret,
			JWTTTL:    cfg.JWTTTL,
			UploadDir: cfg.UploadDir,
		},
	})
	r.Static(helpers.PublicUploadPrefix, cfg.UploadDir)

	log.Info("starting server", zap.String("port", cfg.Port), zap.String("gateway", cfg.GatewayURL))
	return r.Run(":" + cfg.Port)
}

func setupRoutes(r *gin.Engine, deps Dependencies) {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())
	r.Use(gin.Recovery())
	r.Use(middleware.DatabaseMiddleware(deps.DB))
	r.Use(middleware.BrowseMiddleware(deps.Browse))
	r.Use(middleware.PassSignerMiddleware(deps.Signer))
	r.Use(middleware.SettingsMiddleware(deps.Settings))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	secret := deps.Settings.JWTSecret

	public := r.Group("/v1")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
		}

		eventPublic := public.Group("/events")
		eventPublic.Use(middleware.OptionalAuth(secret))
		{
			eventPublic.GET("", handlers.ListEvents)
			eventPublic.GET("/categories", handlers.ListCategories)
			eventPublic.GET("/:id", handlers.GetEvent)
		}
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware(secret))
	{
		protected.GET("/me", handlers.GetProfile)
		protected.GET("/me/filters", handlers.GetSavedFilters)
		protected.DELETE("/me/filters", handlers.ClearSavedFilters)
		protected.GET("/me/registrations", handlers.MyRegistrations)

		protected.POST("/events/:id/registrations", handlers.RegisterForEvent)
		protected.DELETE("/registrations/:id", handlers.CancelRegistration)
		protected.GET("/registrations/:id/pass", handlers.RegistrationPass)

		notifications := protected.Group("/notifications")
		{
			notifications.GET("", handlers.ListNotifications)
			notifications.GET("/unread-count", handlers.UnreadCount)
			notifications.PUT("/:id/read", handlers.MarkNotificationRead)
		}
	}

	organizer := r.Group("/v1/organizer")
	organizer.Use(middleware.JWTAuthMiddleware(secret))
	organizer.Use(middleware.RequireRole(models.RoleOrganizer, models.RoleAdmin))
	{
		organizer.GET("/stats", handlers.OrganizerStats)

		events := organizer.Group("/events")
		{
			events.GET("", handlers.ManageEvents)
			events.GET("/export", handlers.ExportEvents)
			events.POST("", handlers.CreateEvent)
			events.PUT("/:id", handlers.UpdateEvent)
			events.DELETE("/:id", handlers.DeleteEvent)
			events.PATCH("/:id/status", handlers.ChangeEventStatus)
			events.GET("/:id/registrations", handlers.EventRegistrations)
			events.GET("/:id/registrations/export", handlers.ExportEventRegistrations)
		}

		organizer.PUT("/registrations/:id/status", handlers.UpdateRegistrationStatus)
		organizer.POST("/passes/verify", handlers.VerifyPass)
	}
}
