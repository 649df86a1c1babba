package container

import (
	"fmt"
	"log/slog"

	"github.com/creadoresuy/directorio-backend/internal/config"
	"github.com/creadoresuy/directorio-backend/internal/delivery/http"
	"github.com/creadoresuy/directorio-backend/internal/delivery/http/handler"
	"github.com/creadoresuy/directorio-backend/internal/delivery/http/middleware"
	"github.com/creadoresuy/directorio-backend/internal/infrastructure/database"
	"github.com/creadoresuy/directorio-backend/internal/infrastructure/server"
	"github.com/creadoresuy/directorio-backend/internal/lib/logger/sl"
	"github.com/creadoresuy/directorio-backend/internal/repository/postgres"
	"github.com/creadoresuy/directorio-backend/internal/usecase/auth"
	"github.com/creadoresuy/directorio-backend/internal/usecase/directory"
	"github.com/creadoresuy/directorio-backend/internal/usecase/moderation"
	"github.com/creadoresuy/directorio-backend/internal/usecase/registration"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Log    *slog.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, log *slog.Logger) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Redis is optional; it only backs the login throttle
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn("redis unavailable, login throttle disabled", sl.Err(err))
			redisClient = nil
		}
	}

	// Initialize repositories
	influencerRepo := postgres.NewInfluencerRepository(db)

	// Initialize use cases
	authUseCase := auth.NewAdminAuthUseCase(cfg.Admin, redisClient)
	registrationUseCase := registration.NewRegistrationUseCase(influencerRepo)
	directoryUseCase := directory.NewDirectoryUseCase(influencerRepo)
	moderationUseCase := moderation.NewModerationUseCase(influencerRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase, cfg.Server.IsProduction())
	registrationHandler := handler.NewRegistrationHandler(registrationUseCase, log)
	directoryHandler := handler.NewDirectoryHandler(directoryUseCase, log)
	moderationHandler := handler.NewModerationHandler(moderationUseCase, log)

	// Initialize middleware
	adminSession := middleware.NewAdminSessionMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		registrationHandler,
		directoryHandler,
		moderationHandler,
		adminSession,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config: cfg,
		Log:    log,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Warn("error closing redis", sl.Err(err))
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
