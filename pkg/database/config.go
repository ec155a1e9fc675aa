package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Pool lifetime defaults. Probe queries are short-lived but the chat
// workflow can hold a connection across validate and probe rounds, so
// idle recycling stays conservative.
const (
	defaultConnMaxLifetimeMinutes = 30
	defaultConnMaxIdleMinutes     = 5
)

// LoadConfigFromEnv reads the DB_* variables, falling back to the local
// development defaults (localhost postgres, edu_cockpit database).
func LoadConfigFromEnv() (Config, error) {
	port, err := strconv.Atoi(envOr("DB_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxOpen, err := strconv.Atoi(envOr("DB_MAX_OPEN_CONNS", "10"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}
	maxIdle, err := strconv.Atoi(envOr("DB_MAX_IDLE_CONNS", "5"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
	}
	lifetimeMinutes, err := strconv.Atoi(envOr("DB_CONN_MAX_LIFETIME_MINUTES", strconv.Itoa(defaultConnMaxLifetimeMinutes)))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME_MINUTES: %w", err)
	}
	idleMinutes, err := strconv.Atoi(envOr("DB_CONN_MAX_IDLE_MINUTES", strconv.Itoa(defaultConnMaxIdleMinutes)))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_CONN_MAX_IDLE_MINUTES: %w", err)
	}

	return Config{
		Host:            envOr("DB_HOST", "localhost"),
		Port:            port,
		User:            envOr("DB_USER", "cockpit"),
		Password:        os.Getenv("DB_PASSWORD"),
		Database:        envOr("DB_NAME", "edu_cockpit"),
		SSLMode:         envOr("DB_SSLMODE", "disable"),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: time.Duration(lifetimeMinutes) * time.Minute,
		ConnMaxIdleTime: time.Duration(idleMinutes) * time.Minute,
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
