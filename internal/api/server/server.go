package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/feral-file/ff-tipping-ledger/internal/api/graphql"
	"github.com/feral-file/ff-tipping-ledger/internal/api/middleware"
	"github.com/feral-file/ff-tipping-ledger/internal/api/rest"
	"github.com/feral-file/ff-tipping-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-tipping-ledger/internal/governance"
	"github.com/feral-file/ff-tipping-ledger/internal/logger"
	"github.com/feral-file/ff-tipping-ledger/internal/metrics"
	"github.com/feral-file/ff-tipping-ledger/internal/minting"
	"github.com/feral-file/ff-tipping-ledger/internal/ratelimit"
	"github.com/feral-file/ff-tipping-ledger/internal/tipping"
)

// Config holds the server configuration
type Config struct {
	Debug          bool
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
	Auth           middleware.AuthConfig
	RateLimiter    ratelimit.Limiter // nil disables rate limiting
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	governance governance.Module
	tipping    tipping.Engine
	minting    minting.Gate
	metrics    *metrics.LedgerMetrics
	router     *gin.Engine
	httpServer *http.Server
}

// New creates a new API server. The http.Server is built here so Shutdown never races Start.
func New(cfg Config, gov governance.Module, engine tipping.Engine, gate minting.Gate, m *metrics.LedgerMetrics) *Server {
	s := &Server{
		config:     cfg,
		governance: gov,
		tipping:    engine,
		minting:    gate,
		metrics:    m,
	}
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// Router returns the gin engine with middleware and every route registered
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) buildRouter() *gin.Engine {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger(s.metrics))
	router.Use(middleware.SetupCORS(s.config.AllowedOrigins))
	if s.config.RateLimiter != nil {
		router.Use(middleware.RateLimit(s.config.RateLimiter))
	}

	exec := executor.NewExecutor(s.governance, s.tipping, s.minting)
	rest.SetupRoutes(router, rest.NewHandler(s.governance, s.tipping, s.minting, exec), s.config.Auth)
	graphql.SetupRoutes(router, graphql.NewHandler(exec))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	logger.Info("Starting API server",
		zap.String("address", s.httpServer.Addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
