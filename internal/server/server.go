package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"workout-store/internal/config"
	"workout-store/internal/database"
	"workout-store/internal/metrics"
	custommiddleware "workout-store/internal/middleware"
	"workout-store/internal/pagination"
	"workout-store/internal/repository"
	"workout-store/internal/service"
	"workout-store/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Dependencies are the store handles built at startup. Redis is nil when rate
// limiting is disabled.
type Dependencies struct {
	Postgres database.Service
	Mongo    *database.Mongo
	Redis    *redis.Client
	Metrics  *metrics.Metrics
}

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	deps   Dependencies
}

func NewServer(cfg *config.Config, logger *zap.Logger, deps Dependencies) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(custommiddleware.LoggingMiddleware(logger, deps.Metrics))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(cfg.Server.AllowedOrigins, cfg.Server.IsDevelopment()))

	if cfg.RateLimit.Enabled && deps.Redis != nil {
		router.Use(custommiddleware.RateLimitMiddleware(deps.Redis, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.Requests,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         "workout_store:rate_limit",
		}, logger))
	}

	router.Get("/health", healthHandler(map[string]HealthChecker{
		"postgres": deps.Postgres,
		"mongo":    deps.Mongo,
	}))
	router.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())

	// Initialize repositories
	productRepo := repository.NewProductRepository(deps.Mongo.Database)
	athleteRepo := repository.NewAthleteRepository(deps.Postgres.DB())
	categoryRepo := repository.NewCategoryRepository(deps.Postgres.DB())
	centerRepo := repository.NewTrainingCenterRepository(deps.Postgres.DB())

	// Initialize services
	productService := service.NewProductService(productRepo)
	athleteService := service.NewAthleteService(athleteRepo, categoryRepo, centerRepo)
	catalogService := service.NewCatalogService(categoryRepo, centerRepo)

	limits := pagination.Limits{
		DefaultSize: cfg.Pagination.DefaultSize,
		MaxSize:     cfg.Pagination.MaxSize,
	}

	writeGuard := custommiddleware.WriteGuard(cfg.JWT.Secret, logger)

	transport.NewProductHandler(productService, logger, deps.Metrics).RegisterRoutes(router, writeGuard)
	transport.NewAthleteHandler(athleteService, limits, logger, deps.Metrics).RegisterRoutes(router, writeGuard)
	transport.NewCatalogHandler(catalogService, logger, deps.Metrics).RegisterRoutes(router, writeGuard)

	return &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		deps:   deps,
	}
}

// Close releases the store connections after the HTTP server has stopped.
func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.deps.Postgres != nil {
		if err := s.deps.Postgres.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	if s.deps.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.deps.Mongo.Close(ctx); err != nil {
			s.logger.Error("Failed to disconnect from mongo", zap.Error(err))
		}
	}

	if s.deps.Redis != nil {
		if err := s.deps.Redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
