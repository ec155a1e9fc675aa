// Package config loads process-wide settings from the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Stream modes for POST /api/chat/stream.
const (
	StreamModeStream = "stream"
	StreamModeSync   = "sync"
)

// Settings is the process-wide configuration, loaded once at startup.
type Settings struct {
	// LLM completion port
	LLMAPIKey   string
	LLMBaseURL  string
	IntentModel string
	SQLModel    string

	// Workflow tuning
	IntentConfidenceThreshold float64
	HiddenContextMaxRetries   int

	// Filesystem layout
	SchemaKBPath  string
	NodeIOLogDir  string
	ChatExportDir string

	// Streaming. StepMessagePlaceholders overrides the built-in per-step
	// display texts, keyed by step name then status (start/end).
	ChatStreamMode          string
	StepMessagePlaceholders map[string]map[string]string

	// Access tokens
	JWTSecret          string
	JWTAlgorithm       string
	AccessTokenExpires time.Duration

	// Retention sweeper
	ExportRetention time.Duration
	CleanupInterval time.Duration
}

// Load reads settings from the environment, applying defaults and
// validating ranges.
func Load() (*Settings, error) {
	threshold, err := parseFloat("INTENT_CONFIDENCE_THRESHOLD", "0.6")
	if err != nil {
		return nil, err
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("INTENT_CONFIDENCE_THRESHOLD must be in [0,1], got %v", threshold)
	}

	maxRetries, err := parseInt("HIDDEN_CONTEXT_MAX_RETRIES", "2")
	if err != nil {
		return nil, err
	}
	if maxRetries < 0 {
		return nil, fmt.Errorf("HIDDEN_CONTEXT_MAX_RETRIES must be >= 0, got %d", maxRetries)
	}

	expireMinutes, err := parseInt("ACCESS_TOKEN_EXPIRE_MINUTES", "120")
	if err != nil {
		return nil, err
	}

	retentionHours, err := parseInt("CHAT_EXPORT_RETENTION_HOURS", "72")
	if err != nil {
		return nil, err
	}

	mode := getEnvOrDefault("CHAT_STREAM_MODE", StreamModeStream)
	if mode != StreamModeStream && mode != StreamModeSync {
		return nil, fmt.Errorf("CHAT_STREAM_MODE must be %q or %q, got %q", StreamModeStream, StreamModeSync, mode)
	}

	placeholders, err := parseStepMessagePlaceholders("CHAT_STREAM_STEP_MESSAGE_PLACEHOLDERS")
	if err != nil {
		return nil, err
	}

	algorithm := getEnvOrDefault("JWT_ALGORITHM", "HS256")
	if algorithm != "HS256" {
		return nil, fmt.Errorf("unsupported JWT_ALGORITHM %q", algorithm)
	}

	s := &Settings{
		LLMAPIKey:                 os.Getenv("LLM_API_KEY"),
		LLMBaseURL:                os.Getenv("LLM_BASE_URL"),
		IntentModel:               getEnvOrDefault("INTENT_MODEL_NAME", "qwen-plus"),
		SQLModel:                  getEnvOrDefault("SQL_MODEL_NAME", "qwen-plus"),
		IntentConfidenceThreshold: threshold,
		HiddenContextMaxRetries:   maxRetries,
		SchemaKBPath:              getEnvOrDefault("SCHEMA_KB_PATH", "./config/schema_kb.json"),
		NodeIOLogDir:              getEnvOrDefault("NODE_IO_LOG_DIR", "./logs/chat_nodes"),
		ChatExportDir:             getEnvOrDefault("CHAT_EXPORT_DIR", "./exports/chat"),
		ChatStreamMode:            mode,
		StepMessagePlaceholders:   placeholders,
		JWTSecret:                 os.Getenv("JWT_SECRET"),
		JWTAlgorithm:              algorithm,
		AccessTokenExpires:        time.Duration(expireMinutes) * time.Minute,
		ExportRetention:           time.Duration(retentionHours) * time.Hour,
		CleanupInterval:           time.Hour,
	}

	if s.LLMAPIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY is required")
	}
	if s.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return s, nil
}

// parseStepMessagePlaceholders reads a JSON object of the form
// {"step_name": {"start": "...", "end": "..."}}. An unset variable
// leaves the built-in texts in place.
func parseStepMessagePlaceholders(key string) (map[string]map[string]string, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return nil, nil
	}
	var placeholders map[string]map[string]string
	if err := json.Unmarshal([]byte(raw), &placeholders); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return placeholders, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseFloat(key, defaultVal string) (float64, error) {
	raw := getEnvOrDefault(key, defaultVal)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parseInt(key, defaultVal string) (int, error) {
	raw := getEnvOrDefault(key, defaultVal)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
