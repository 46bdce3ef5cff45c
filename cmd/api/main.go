package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-tipping-ledger/internal/adapter"
	"github.com/feral-file/ff-tipping-ledger/internal/api/middleware"
	"github.com/feral-file/ff-tipping-ledger/internal/api/server"
	"github.com/feral-file/ff-tipping-ledger/internal/auth"
	"github.com/feral-file/ff-tipping-ledger/internal/config"
	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/emitter"
	"github.com/feral-file/ff-tipping-ledger/internal/governance"
	"github.com/feral-file/ff-tipping-ledger/internal/logger"
	"github.com/feral-file/ff-tipping-ledger/internal/messaging"
	"github.com/feral-file/ff-tipping-ledger/internal/metrics"
	"github.com/feral-file/ff-tipping-ledger/internal/minting"
	"github.com/feral-file/ff-tipping-ledger/internal/providers/jetstream"
	"github.com/feral-file/ff-tipping-ledger/internal/ratelimit"
	"github.com/feral-file/ff-tipping-ledger/internal/settlement"
	"github.com/feral-file/ff-tipping-ledger/internal/store"
	"github.com/feral-file/ff-tipping-ledger/internal/tipping"
	"github.com/feral-file/ff-tipping-ledger/internal/webhook"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "tipping-ledger-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Tipping Ledger API")

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	ledgerMetrics := metrics.Ledger()

	dataStore, err := openStore(ctx, cfg.Store)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to open store", zap.Error(err), zap.String("backend", cfg.Store.Backend))
	}
	defer func() {
		if err := dataStore.Close(); err != nil {
			logger.Error(err, zap.String("component", "store"))
		}
	}()

	mover := newValueMover(ctx, cfg.Settlement, jsonAdapter)

	// Event sinks are optional; without any the emitter is a no-op
	var publishers []messaging.Publisher
	if cfg.NATS.URL != "" {
		natsPublisher, err := jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		publishers = append(publishers, natsPublisher)
	}
	if cfg.Webhook.URL != "" {
		publishers = append(publishers, webhook.NewPublisher(webhook.Config{
			URL:             cfg.Webhook.URL,
			Secret:          cfg.Webhook.Secret,
			InitialInterval: cfg.Webhook.InitialInterval,
			MaxInterval:     cfg.Webhook.MaxInterval,
			MaxElapsedTime:  cfg.Webhook.MaxElapsedTime,
		}, adapter.NewHTTPClient(cfg.Webhook.Timeout), jsonAdapter, clock))
		logger.InfoCtx(ctx, "Webhook delivery enabled", zap.String("url", cfg.Webhook.URL))
	}
	eventEmitter := emitter.NewEmitter(emitter.Config{
		WorkerPoolSize:  cfg.Worker.WorkerPoolSize,
		WorkerQueueSize: cfg.Worker.WorkerQueueSize,
	}, clock, ledgerMetrics, publishers...)
	defer eventEmitter.Close()

	// Any authorizer may vouch for the acting identity
	trusted := make([]domain.Identity, 0, len(cfg.Auth.TrustedIdentities))
	for _, id := range cfg.Auth.TrustedIdentities {
		trusted = append(trusted, domain.Identity(id))
	}
	guard := auth.NewGuard(auth.AnyAuthorizer{
		auth.SubjectAuthorizer{},
		auth.NewSignatureAuthorizer(clock, cfg.Auth.SignatureMaxAge),
		auth.NewAllowList(trusted...),
	})

	governanceModule := governance.NewModule(dataStore, guard, jsonAdapter)
	tippingEngine := tipping.NewEngine(dataStore, guard, mover, eventEmitter, clock, jsonAdapter, ledgerMetrics)
	mintingGate := minting.NewGate(dataStore, guard, eventEmitter, clock, jsonAdapter, ledgerMetrics)

	if cfg.Governance.AutoInitialize {
		if err := bootstrapGovernance(ctx, governanceModule, cfg.Governance); err != nil {
			logger.FatalCtx(ctx, "Failed to initialize governance", zap.Error(err))
		}
	}

	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}
	if cfg.Server.RateLimit.RequestsPerSecond > 0 {
		limiter, err := ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerSecond: cfg.Server.RateLimit.RequestsPerSecond,
			Burst:             cfg.Server.RateLimit.Burst,
			IdleTTL:           cfg.Server.RateLimit.IdleTTL,
		}, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
		}
		serverConfig.RateLimiter = limiter
	}
	srv := server.New(serverConfig, governanceModule, tippingEngine, mintingGate, ledgerMetrics)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// ctx is canceled at this point
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	logger.Info("API server stopped")
}

// openStore opens the configured key-value store backend
func openStore(ctx context.Context, cfg config.StoreConfig) (store.Store, error) {
	switch cfg.Backend {
	case config.StoreBackendMemory:
		logger.WarnCtx(ctx, "Using in-memory store, ledger state is lost on restart")
		return store.NewMemoryStore(), nil

	case config.StoreBackendLevelDB:
		s, err := store.NewLevelDBStore(cfg.LevelDBPath)
		if err != nil {
			return nil, err
		}
		logger.InfoCtx(ctx, "Opened LevelDB store", zap.String("path", cfg.LevelDBPath))
		return s, nil

	case config.StoreBackendPostgres:
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
			return nil, err
		}
		logger.InfoCtx(ctx, "Connected to database",
			zap.String("host", cfg.Database.Host),
			zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
			zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
		)
		return store.NewGormStore(db), nil

	case config.StoreBackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
		db, err := gorm.Open(sqlite.Open(store.SQLiteDSN(cfg.SQLitePath)), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		if err := store.AutoMigrate(db); err != nil {
			return nil, err
		}
		logger.InfoCtx(ctx, "Opened SQLite store", zap.String("path", cfg.SQLitePath))
		return store.NewGormStore(db), nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}

// newValueMover builds the configured settlement strategy
func newValueMover(ctx context.Context, cfg config.SettlementConfig, jsonAdapter adapter.JSON) settlement.ValueMover {
	if cfg.Strategy == settlement.StrategyInternal {
		logger.InfoCtx(ctx, "Using internal accumulator settlement")
		return settlement.NewInternalAccumulatorMover(jsonAdapter)
	}

	if cfg.LedgerURL == "" {
		logger.WarnCtx(ctx, "No ledger_url configured, settling against an in-process ledger")
		return settlement.NewExternalLedgerMover(settlement.NewMemoryLedger())
	}

	logger.InfoCtx(ctx, "Using external ledger settlement", zap.String("ledger_url", cfg.LedgerURL))
	ledger := settlement.NewHTTPLedger(cfg.LedgerURL, adapter.NewHTTPClient(cfg.LedgerTimeout), jsonAdapter)
	return settlement.NewExternalLedgerMover(ledger)
}

// bootstrapGovernance initializes governance from configuration; an existing configuration is kept
func bootstrapGovernance(ctx context.Context, module governance.Module, cfg config.GovernanceConfig) error {
	var threshold *big.Int
	if cfg.TipThreshold != "" {
		parsed, err := domain.ParseAmount(cfg.TipThreshold)
		if err != nil {
			return err
		}
		threshold = parsed
	}

	// the bootstrap admin must pass the guard like any other caller
	bootCtx := auth.WithSubject(ctx, domain.Identity(cfg.Admin))
	err := module.Initialize(bootCtx, domain.Identity(cfg.Admin), domain.Identity(cfg.PlatformAddress), cfg.PlatformFeeBps, threshold)
	if errors.Is(err, domain.ErrAlreadyInitialized) {
		logger.InfoCtx(ctx, "Governance already initialized")
		return nil
	}
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Governance initialized",
		zap.String("admin", cfg.Admin),
		zap.String("platform_address", cfg.PlatformAddress),
	)
	return nil
}
