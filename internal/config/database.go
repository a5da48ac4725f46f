package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"eco-restaurants/internal/infrastructure/database"
)

// LoadDatabaseConfig reads the Postgres pool settings. Unlike Load, a
// malformed DB_* value is an error rather than a silent default, and every
// malformed key is reported at once.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	p := &strictEnv{}

	cfg := &database.DBConfig{
		Host:              getEnv("DB_HOST", "localhost"),
		Port:              p.int("DB_PORT", 5432),
		Username:          getEnv("DB_USER", "eco"),
		Password:          getEnv("DB_PASSWORD", "secret"),
		DBName:            getEnv("DB_NAME", "eco_restaurants"),
		SSLMode:           getEnv("DB_SSLMODE", "disable"),
		MaxConns:          int32(p.int("DB_MAX_CONNECTIONS", 20)),
		MinConns:          int32(p.int("DB_MIN_CONNECTIONS", 2)),
		MaxConnLifetime:   p.duration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
		MaxConnIdleTime:   p.duration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		HealthCheckPeriod: p.duration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		MaxRetries:        p.int("DB_MAX_RETRIES", 5),
		RetryDelay:        p.duration("DB_RETRY_DELAY", time.Second),
		ConnectTimeout:    p.duration("DB_CONNECT_TIMEOUT", 10*time.Second),
	}
	if err := p.err(); err != nil {
		return nil, err
	}

	if cfg.MinConns > cfg.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNECTIONS (%d) exceeds DB_MAX_CONNECTIONS (%d)", cfg.MinConns, cfg.MaxConns)
	}
	return cfg, nil
}

// strictEnv parses typed variables and accumulates the failures.
type strictEnv struct {
	errs []error
}

func (p *strictEnv) int(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("invalid %s: %w", key, err))
		return def
	}
	return v
}

func (p *strictEnv) duration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("invalid %s: %w", key, err))
		return def
	}
	return v
}

func (p *strictEnv) err() error {
	return errors.Join(p.errs...)
}
