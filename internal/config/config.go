package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress          string
	DatabaseURI         string
	BankGatewayAddress  string
	BinanceAPIAddress   string
	JWTSecret           string
	BankPollInterval    time.Duration
	BinancePollInterval time.Duration
	VerifyTimeout       time.Duration
	SessionTTL          time.Duration
	ReapInterval        time.Duration
	ShutdownTimeout     time.Duration
}

const (
	defaultRunAddress          = ":8080"
	defaultJWTSecret           = "change-me-in-production"
	defaultBankPollInterval    = 10 * time.Second
	defaultBinancePollInterval = 5 * time.Second
	defaultVerifyTimeout       = 15 * time.Minute
	defaultSessionTTL          = time.Hour
	defaultReapInterval        = time.Minute
	defaultShutdownTimeout     = 10 * time.Second
)

// Load parses configuration from an optional .env file, environment
// variables and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		BankGatewayAddress:  getString(lookup, "BANK_GATEWAY_ADDRESS", ""),
		BinanceAPIAddress:   getString(lookup, "BINANCE_API_ADDRESS", ""),
		JWTSecret:           getString(lookup, "JWT_SECRET", defaultJWTSecret),
		BankPollInterval:    getDuration(lookup, "BANK_POLL_INTERVAL", defaultBankPollInterval),
		BinancePollInterval: getDuration(lookup, "BINANCE_POLL_INTERVAL", defaultBinancePollInterval),
		VerifyTimeout:       getDuration(lookup, "VERIFY_TIMEOUT", defaultVerifyTimeout),
		SessionTTL:          getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		ReapInterval:        getDuration(lookup, "REAP_INTERVAL", defaultReapInterval),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		bankPollStr        = cfg.BankPollInterval.String()
		binancePollStr     = cfg.BinancePollInterval.String()
		verifyTimeoutStr   = cfg.VerifyTimeout.String()
		sessionTTLStr      = cfg.SessionTTL.String()
		reapIntervalStr    = cfg.ReapInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.BankGatewayAddress, "bank", cfg.BankGatewayAddress, "Bank verification gateway base URL")
	fs.StringVar(&cfg.BinanceAPIAddress, "binance", cfg.BinanceAPIAddress, "Binance Pay service base URL")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&bankPollStr, "bank-poll", bankPollStr, "Interval between bank verification polls")
	fs.StringVar(&binancePollStr, "binance-poll", binancePollStr, "Interval between Binance status polls")
	fs.StringVar(&verifyTimeoutStr, "verify-timeout", verifyTimeoutStr, "Deadline for a single verification attempt")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Checkout session time to live")
	fs.StringVar(&reapIntervalStr, "reap-interval", reapIntervalStr, "Interval between session reaper sweeps")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.BankPollInterval, err = time.ParseDuration(bankPollStr); err != nil {
		return nil, fmt.Errorf("invalid bank poll interval: %w", err)
	}

	if cfg.BinancePollInterval, err = time.ParseDuration(binancePollStr); err != nil {
		return nil, fmt.Errorf("invalid binance poll interval: %w", err)
	}

	if cfg.VerifyTimeout, err = time.ParseDuration(verifyTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid verify timeout: %w", err)
	}

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.ReapInterval, err = time.ParseDuration(reapIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid reap interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.BankPollInterval <= 0 {
		cfg.BankPollInterval = defaultBankPollInterval
	}

	if cfg.BinancePollInterval <= 0 {
		cfg.BinancePollInterval = defaultBinancePollInterval
	}

	if cfg.VerifyTimeout <= 0 {
		cfg.VerifyTimeout = defaultVerifyTimeout
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.ReapInterval <= 0 {
		cfg.ReapInterval = defaultReapInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.BankGatewayAddress == "" {
		return nil, fmt.Errorf("bank gateway address must be provided")
	}

	if cfg.BinanceAPIAddress == "" {
		return nil, fmt.Errorf("binance API address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
