package container

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hokies-connect/backend/internal/config"
	"github.com/hokies-connect/backend/internal/delivery/http"
	"github.com/hokies-connect/backend/internal/delivery/http/handler"
	"github.com/hokies-connect/backend/internal/delivery/http/middleware"
	"github.com/hokies-connect/backend/internal/infrastructure/database"
	"github.com/hokies-connect/backend/internal/infrastructure/gemini"
	"github.com/hokies-connect/backend/internal/infrastructure/server"
	"github.com/hokies-connect/backend/internal/logger"
	"github.com/hokies-connect/backend/internal/matching"
	"github.com/hokies-connect/backend/internal/repository/postgres"
	"github.com/hokies-connect/backend/internal/repository/rediscache"
	"github.com/hokies-connect/backend/internal/usecase/callrequest"
	"github.com/hokies-connect/backend/internal/usecase/match"
	"github.com/hokies-connect/backend/internal/usecase/profile"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log, err := logger.New(cfg.Logging.JSON, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Redis is optional: without it the alumni pool cache degrades to
	// direct database reads.
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, alumni pool cache disabled", zap.Error(err))
		redisClient = nil
	}

	// Gemini is optional: without it matching runs on the heuristic
	// strategy alone.
	geminiClient, err := gemini.NewClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Warn("gemini unavailable, matching will use heuristic strategy only", zap.Error(err))
		geminiClient = nil
	}

	// Initialize repositories
	studentRepo := postgres.NewStudentProfileRepository(db)
	alumniRepo := postgres.NewAlumniProfileRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	callRequestRepo := postgres.NewCallRequestRepository(db)

	cachedAlumniRepo := rediscache.NewAlumniProfileCache(
		alumniRepo,
		redisClient,
		cfg.Matching.PoolCacheTTL,
		log,
	)

	// Initialize matching strategies
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	heuristic := matching.NewHeuristicStrategy(rng, cfg.Matching.TopN)

	var strategy matching.Strategy = heuristic
	if geminiClient != nil {
		strategy = matching.NewAIStrategy(
			geminiClient,
			heuristic,
			cfg.Matching.RemoteTimeout,
			cfg.Matching.TopN,
			log,
		)
	}

	// Initialize use cases
	profileUseCase := profile.NewProfileUseCase(studentRepo, cachedAlumniRepo)
	matchUseCase := match.NewMatchUseCase(studentRepo, cachedAlumniRepo, matchRepo, strategy, log)
	callRequestUseCase := callrequest.NewCallRequestUseCase(callRequestRepo, matchRepo)

	// Initialize handlers
	profileHandler := handler.NewProfileHandler(profileUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	callRequestHandler := handler.NewCallRequestHandler(callRequestUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.AccessSecret)

	// Initialize router
	router := http.NewRouter(
		profileHandler,
		matchHandler,
		callRequestHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	_ = c.Logger.Sync()
	return nil
}
