package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/settlement"
)

// Store backends
const (
	StoreBackendMemory   = "memory"
	StoreBackendLevelDB  = "leveldb"
	StoreBackendPostgres = "postgres"
	StoreBackendSQLite   = "sqlite"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "5m", "1h"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m", "30m"
}

// StoreConfig selects and configures the key-value store backend
type StoreConfig struct {
	Backend     string         `mapstructure:"backend"`
	LevelDBPath string         `mapstructure:"leveldb_path"`
	SQLitePath  string         `mapstructure:"sqlite_path"`
	Database    DatabaseConfig `mapstructure:"database"`
}

// GovernanceConfig holds the bootstrap values used to initialize governance on start
type GovernanceConfig struct {
	AutoInitialize  bool    `mapstructure:"auto_initialize"`
	Admin           string  `mapstructure:"admin"`
	PlatformAddress string  `mapstructure:"platform_address"`
	PlatformFeeBps  *uint32 `mapstructure:"platform_fee_bps"`
	TipThreshold    string  `mapstructure:"tip_threshold"`
}

// SettlementConfig selects how tip value is moved
type SettlementConfig struct {
	Strategy      settlement.Strategy `mapstructure:"strategy"`
	LedgerURL     string              `mapstructure:"ledger_url"` // empty selects the in-process ledger
	LedgerTimeout time.Duration       `mapstructure:"ledger_timeout"`
}

// NATSConfig holds NATS JetStream configuration. An empty URL disables the sink.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// WebhookConfig holds webhook delivery configuration. An empty URL disables the sink.
type WebhookConfig struct {
	URL             string        `mapstructure:"url"`
	Secret          string        `mapstructure:"secret"`
	Timeout         time.Duration `mapstructure:"timeout"`
	InitialInterval time.Duration `mapstructure:"initial_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval"`
	MaxElapsedTime  time.Duration `mapstructure:"max_elapsed_time"`
}

// RateLimitConfig holds per-client request limits. Zero requests_per_second disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	IdleTTL           time.Duration `mapstructure:"idle_ttl"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string          `mapstructure:"host"`
	Port           int             `mapstructure:"port"`
	ReadTimeout    int             `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout   int             `mapstructure:"write_timeout"` // in seconds
	IdleTimeout    int             `mapstructure:"idle_timeout"`  // in seconds
	AllowedOrigins []string        `mapstructure:"allowed_origins"`
	RateLimit      RateLimitConfig `mapstructure:"rate_limit"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey      string        `mapstructure:"jwt_public_key"`
	APIKeys           []string      `mapstructure:"api_keys"`
	SignatureMaxAge   time.Duration `mapstructure:"signature_max_age"`
	TrustedIdentities []string      `mapstructure:"trusted_identities"` // allow-listed service identities
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig     `mapstructure:"server"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Store      StoreConfig      `mapstructure:"store"`
	Governance GovernanceConfig `mapstructure:"governance"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Webhook    WebhookConfig    `mapstructure:"webhook"`
	Worker     WorkerConfig     `mapstructure:"worker"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.rate_limit.requests_per_second", 0)
	v.SetDefault("server.rate_limit.idle_ttl", "10m")
	v.SetDefault("auth.signature_max_age", "5m")
	v.SetDefault("store.backend", StoreBackendMemory)
	v.SetDefault("store.leveldb_path", "data/ledger")
	v.SetDefault("store.sqlite_path", "data/ledger.db")
	v.SetDefault("store.database.port", 5432)
	v.SetDefault("store.database.sslmode", "disable")
	v.SetDefault("settlement.strategy", string(settlement.StrategyInternal))
	v.SetDefault("settlement.ledger_timeout", "10s")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "LEDGER_EVENTS")
	v.SetDefault("nats.connection_name", "ff-tipping-ledger")
	v.SetDefault("webhook.timeout", "10s")
	v.SetDefault("worker.pool_size", 4)
	v.SetDefault("worker.queue_size", 1024)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects unknown backends and strategies and inconsistent bootstrap values
func (c *APIConfig) Validate() error {
	switch c.Store.Backend {
	case StoreBackendMemory, StoreBackendLevelDB, StoreBackendPostgres, StoreBackendSQLite:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	if !c.Settlement.Strategy.Valid() {
		return fmt.Errorf("unknown settlement strategy %q", c.Settlement.Strategy)
	}

	if c.Server.RateLimit.RequestsPerSecond < 0 || c.Server.RateLimit.Burst < 0 {
		return errors.New("server.rate_limit values must not be negative")
	}

	if c.Webhook.URL != "" && c.Webhook.Secret == "" {
		return errors.New("webhook.secret is required when webhook.url is set")
	}

	if c.Governance.AutoInitialize {
		if !domain.Identity(c.Governance.Admin).Valid() || !domain.Identity(c.Governance.PlatformAddress).Valid() {
			return errors.New("governance.admin and governance.platform_address are required for auto_initialize")
		}
		if c.Governance.TipThreshold != "" {
			if _, err := domain.ParseAmount(c.Governance.TipThreshold); err != nil {
				return fmt.Errorf("invalid governance.tip_threshold: %w", err)
			}
		}
	}

	return nil
}

// configureViper configures a viper instance for a service
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("FF_TIPPING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// Viper only maps env vars onto struct fields for keys it knows about when no config file exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		"server.rate_limit.requests_per_second",
		"server.rate_limit.burst",
		"server.rate_limit.idle_ttl",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		"auth.signature_max_age",
		"auth.trusted_identities",
		// Store
		"store.backend",
		"store.leveldb_path",
		"store.sqlite_path",
		"store.database.host",
		"store.database.port",
		"store.database.user",
		"store.database.password",
		"store.database.dbname",
		"store.database.sslmode",
		"store.database.max_open_conns",
		"store.database.max_idle_conns",
		"store.database.conn_max_lifetime",
		"store.database.conn_max_idle_time",
		// Governance bootstrap
		"governance.auto_initialize",
		"governance.admin",
		"governance.platform_address",
		"governance.platform_fee_bps",
		"governance.tip_threshold",
		// Settlement
		"settlement.strategy",
		"settlement.ledger_url",
		"settlement.ledger_timeout",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Webhook
		"webhook.url",
		"webhook.secret",
		"webhook.timeout",
		"webhook.initial_interval",
		"webhook.max_interval",
		"webhook.max_elapsed_time",
		// Worker
		"worker.pool_size",
		"worker.queue_size",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Shared base first, then local, then optional per-service local
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
