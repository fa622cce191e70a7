// EvalAP server - evaluation harness for generative language models.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/etalab-ia/evalap/pkg/api"
	"github.com/etalab-ia/evalap/pkg/config"
	"github.com/etalab-ia/evalap/pkg/database"
	"github.com/etalab-ia/evalap/pkg/llm"
	"github.com/etalab-ia/evalap/pkg/metrics"
	"github.com/etalab-ia/evalap/pkg/queue"
	"github.com/etalab-ia/evalap/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	envPath := flag.String("env-file", getEnv("ENV_FILE", ".env"), "Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		log.Printf("Warning: Could not load %s file: %v", *envPath, err)
		log.Printf("Continuing with existing environment variables...")
	} else {
		log.Printf("Loaded environment from %s", *envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8000")
	runnerID := getEnv("RUNNER_ID", uuid.New().String())

	log.Printf("Starting EvalAP")
	log.Printf("HTTP Port: %s", httpPort)

	ctx := context.Background()

	runnerCfg, err := config.LoadRunnerConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load runner config: %v", err)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load database config: %v", err)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			log.Printf("Error closing database client: %v", err)
		}
	}()
	log.Println("Connected to PostgreSQL database, schema up to date")

	// Metric registry: declared at startup, frozen before any dispatch.
	registry := metrics.NewRegistry()
	metrics.RegisterBuiltins(registry)
	registry.Freeze()
	slog.Info("Metric registry initialized", "metrics", registry.Names())

	// Judge endpoint for llm-kind metrics (optional; such metrics are
	// rejected at experiment creation when absent).
	judgeCfg := config.LoadJudgeConfigFromEnv()
	var judgeEndpoint *llm.Endpoint
	if judgeCfg.Enabled() {
		judgeEndpoint = &llm.Endpoint{
			Name:    judgeCfg.Model,
			BaseURL: judgeCfg.BaseURL,
			APIKey:  judgeCfg.APIKey,
		}
		slog.Info("Judge endpoint configured", "model", judgeCfg.Model)
	} else {
		slog.Info("No judge endpoint configured, llm metrics disabled")
	}

	// Services
	datasetService := services.NewDatasetService(dbClient.Client)
	experimentService := services.NewExperimentService(dbClient.Client, registry, judgeCfg)
	setService := services.NewExperimentSetService(dbClient.Client, experimentService)
	answerService := services.NewAnswerService(dbClient.Client)
	observationService := services.NewObservationService(dbClient.Client)
	leaderboardService := services.NewLeaderboardService(dbClient.Client)

	// Task bus, dispatcher, lifecycle and worker pool
	taskQueue := queue.NewTaskQueue(runnerCfg.QueueCapacity)
	taskQueue.Start()

	dispatcher := queue.NewDispatcher(dbClient.Client, taskQueue, registry, answerService, observationService)
	lifecycle := queue.NewLifecycleController(dbClient.Client, dispatcher)
	llmClient := llm.NewClient(runnerCfg.LLMTimeout)
	workerPool := queue.NewWorkerPool(runnerID, dbClient.Client, runnerCfg, taskQueue,
		registry, llmClient, judgeEndpoint, answerService, observationService, lifecycle)
	retryPlanner := queue.NewRetryPlanner(dbClient.Client, dispatcher)

	workerCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()
	workerPool.Start(workerCtx)

	server := api.NewServer(dbClient, registry, datasetService, experimentService,
		setService, leaderboardService, dispatcher, retryPlanner, workerPool)

	// Serve until interrupted, then drain gracefully.
	shutdownCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("HTTP server listening", "addr", ":"+httpPort)
		if err := server.Start(":" + httpPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-shutdownCtx.Done()
	slog.Info("Shutdown signal received")

	gracefulCtx, cancelGraceful := context.WithTimeout(context.Background(), runnerCfg.GracefulShutdownTimeout)
	defer cancelGraceful()
	if err := server.Shutdown(gracefulCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}

	taskQueue.Close()
	workerPool.Stop()
	slog.Info("EvalAP stopped")
}
