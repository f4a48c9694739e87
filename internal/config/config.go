package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration loaded from a config file, environment and flags.
type Config struct {
	RunAddress             string
	DatabaseURI            string
	JWTSecret              string
	TokenTTL               time.Duration
	RedisURL               string
	PaymentProviderAddress string
	PixKey                 string
	WebhookToken           string
	DispatchInterval       time.Duration
	DispatchBatchSize      int
	WorkerPoolSize         int
	ShutdownTimeout        time.Duration
	LogLevel               string
	LogFormat              string
}

const (
	defaultRunAddress        = ":8080"
	defaultJWTSecret         = "change-me-in-production"
	defaultTokenTTL          = 24 * time.Hour
	defaultDispatchInterval  = 2 * time.Second
	defaultDispatchBatchSize = 50
	defaultWorkerPoolSize    = 4
	defaultShutdownTimeout   = 10 * time.Second
	defaultLogLevel          = "info"
	defaultLogFormat         = "json"
)

// Load parses configuration from an optional .env file, environment variables and flags.
func Load() (*Config, error) {
	// .env never overrides variables already present in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	file, err := readConfigFile(lookup)
	if err != nil {
		return nil, err
	}
	src := source{lookup: lookup, file: file}

	cfg := &Config{
		RunAddress:             src.getString("RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:            src.getString("DATABASE_URI", ""),
		JWTSecret:              src.getString("JWT_SECRET", defaultJWTSecret),
		RedisURL:               src.getString("REDIS_URL", ""),
		PaymentProviderAddress: src.getString("PAYMENT_PROVIDER_ADDRESS", ""),
		PixKey:                 src.getString("PIX_KEY", ""),
		WebhookToken:           src.getString("WEBHOOK_TOKEN", ""),
		DispatchBatchSize:      src.getInt("DISPATCH_BATCH_SIZE", defaultDispatchBatchSize),
		WorkerPoolSize:         src.getInt("WORKER_POOL_SIZE", defaultWorkerPoolSize),
		LogLevel:               src.getString("LOG_LEVEL", defaultLogLevel),
		LogFormat:              src.getString("LOG_FORMAT", defaultLogFormat),
	}

	var (
		tokenTTLStr         = src.getString("TOKEN_TTL", defaultTokenTTL.String())
		dispatchIntervalStr = src.getString("DISPATCH_INTERVAL", defaultDispatchInterval.String())
		shutdownTimeoutStr  = src.getString("SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())
	)

	fs := flag.NewFlagSet("jobah", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.PaymentProviderAddress, "p", cfg.PaymentProviderAddress, "Payment provider base URL")
	fs.StringVar(&cfg.RedisURL, "redis", cfg.RedisURL, "Redis URL for realtime notifications")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Auth token lifetime")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent notification workers")
	fs.StringVar(&dispatchIntervalStr, "dispatch-interval", dispatchIntervalStr, "Interval between outbox polls")
	fs.IntVar(&cfg.DispatchBatchSize, "dispatch-batch", cfg.DispatchBatchSize, "Maximum notifications per outbox poll")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.DispatchInterval, err = time.ParseDuration(dispatchIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid dispatch interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
		cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	default:
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.DispatchBatchSize <= 0 {
		cfg.DispatchBatchSize = defaultDispatchBatchSize
	}

	if cfg.DispatchInterval <= 0 {
		cfg.DispatchInterval = defaultDispatchInterval
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

// readConfigFile loads the file named by JOBAH_CONFIG, if any.
func readConfigFile(lookup envLookup) (*viper.Viper, error) {
	path, ok := lookup("JOBAH_CONFIG")
	if !ok || path == "" {
		return nil, nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return v, nil
}

// source resolves a key from the environment first, then the config file.
type source struct {
	lookup envLookup
	file   *viper.Viper
}

func (s source) raw(key string) (string, bool) {
	if v, ok := s.lookup(key); ok && v != "" {
		return v, true
	}
	if s.file != nil && s.file.IsSet(key) {
		if v := s.file.GetString(key); v != "" {
			return v, true
		}
	}
	return "", false
}

func (s source) getString(key, def string) string {
	if v, ok := s.raw(key); ok {
		return v
	}
	return def
}

func (s source) getInt(key string, def int) int {
	if v, ok := s.raw(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
