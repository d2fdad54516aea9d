package container

import (
	"github.com/Arockiam07/College-Voting-System/internal/config"
	"github.com/Arockiam07/College-Voting-System/internal/service"
	"github.com/Arockiam07/College-Voting-System/internal/service/auth"
	"github.com/Arockiam07/College-Voting-System/pkg/logger"
	"github.com/Arockiam07/College-Voting-System/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logger.Logger
	RedisClient *redis.Client
	AuthService service.AuthService
}

// New creates a new dependency injection container. Redis is optional;
// without it, the services run straight against the database.
func New(cfg *config.Config, logger *logger.Logger) (*Container, error) {
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL, cfg.Environment, logger.Logger)
		if err != nil {
			logger.WithError(err).Warn("Failed to initialize Redis client, proceeding without caching")
		} else {
			redisClient = client
			logger.Info("Redis client initialized successfully")
		}
	} else {
		logger.Info("Redis URL not configured, proceeding without caching")
	}

	authService := auth.NewService(cfg.SSOJWTSecret, cfg.SSOIssuer, logger)

	return &Container{
		Config:      cfg,
		Logger:      logger,
		RedisClient: redisClient,
		AuthService: authService,
	}, nil
}

// GetAuthService returns the auth service
func (c *Container) GetAuthService() service.AuthService {
	return c.AuthService
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetRedisClient returns the Redis client (may be nil if not configured)
func (c *Container) GetRedisClient() *redis.Client {
	return c.RedisClient
}

// HasRedis returns true if Redis client is available
func (c *Container) HasRedis() bool {
	return c.RedisClient != nil
}
