// Cockpit server — the NL→SQL query assistant for the educational
// administration database: HTTP API, chat workflow engine, and retention
// cleanup.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/edu-cockpit/cockpit/pkg/api"
	"github.com/edu-cockpit/cockpit/pkg/cleanup"
	"github.com/edu-cockpit/cockpit/pkg/config"
	"github.com/edu-cockpit/cockpit/pkg/database"
	"github.com/edu-cockpit/cockpit/pkg/iolog"
	"github.com/edu-cockpit/cockpit/pkg/kb"
	"github.com/edu-cockpit/cockpit/pkg/llm"
	"github.com/edu-cockpit/cockpit/pkg/services"
	"github.com/edu-cockpit/cockpit/pkg/version"
	"github.com/edu-cockpit/cockpit/pkg/workflow"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	envPath := flag.String("env-file", getEnv("ENV_FILE", ".env"), "Path to the .env file")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting cockpit", "version", version.Full(), "http_port", httpPort)

	ctx := context.Background()

	// 1. Settings
	settings, err := config.Load()
	if err != nil {
		slog.Error("Failed to load settings", "error", err)
		os.Exit(1)
	}

	// 2. Schema knowledge base
	knowledge, err := kb.Load(settings.SchemaKBPath)
	if err != nil {
		slog.Error("Failed to load schema KB", "path", settings.SchemaKBPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Schema KB loaded",
		"path", settings.SchemaKBPath,
		"tables", len(knowledge.Tables),
		"fields", len(knowledge.FieldWhitelist()))

	// 3. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 4. LLM completion port
	completer := llm.NewClient(settings.LLMAPIKey, settings.LLMBaseURL, settings.SQLModel)
	slog.Info("LLM client initialized",
		"base_url", settings.LLMBaseURL,
		"intent_model", settings.IntentModel,
		"sql_model", settings.SQLModel)

	// 5. Services and workflow engine
	historyService := services.NewChatHistoryService(dbClient.Client)
	recorder := services.NewWorkflowRecorder(dbClient.Client)
	engine := workflow.NewEngine(
		knowledge,
		completer,
		dbClient.DB(),
		iolog.NewWriter(settings.NodeIOLogDir),
		recorder,
		workflow.Options{
			Threshold:   settings.IntentConfidenceThreshold,
			MaxRetry:    settings.HiddenContextMaxRetries,
			IntentModel: settings.IntentModel,
			SQLModel:    settings.SQLModel,
			ExportDir:   settings.ChatExportDir,
		},
	)
	slog.Info("Workflow engine initialized",
		"threshold", settings.IntentConfidenceThreshold,
		"max_retry", settings.HiddenContextMaxRetries,
		"stream_mode", settings.ChatStreamMode)

	// 6. Retention cleanup
	sweeper := cleanup.NewService(
		settings.ChatExportDir, settings.NodeIOLogDir,
		settings.ExportRetention, settings.CleanupInterval)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	// 7. HTTP server
	httpServer := api.NewServer(settings, dbClient, engine, historyService)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
