package main

import (
	"context"
	"errors"
	"fmt"
	"list-sync/auth"
	"list-sync/infrastructure/http/server"
	"list-sync/infrastructure/storage"
	"list-sync/internal"
	"list-sync/observability"
	"list-sync/runtime"
	"list-sync/runtime/workers"
	"list-sync/services"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Returning instead of exiting lets every deferred cleanup run.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(db, config.DebugPort, endpoint, InspectMapper)
	}

	listRepository := storage.NewListRepository(db, logger)
	todoRepository := storage.NewTodoRepository(db)

	// 3. Real-time core
	registry := runtime.NewRegistry(logger)
	resolver := runtime.NewAudienceResolver(logger, listRepository)
	broadcaster := runtime.NewBroadcaster(logger, registry, resolver)
	liveness := runtime.NewLiveness(logger, registry, config.StalenessThreshold, time.Now)
	queue := workers.NewPublishQueue(logger, config.PublishQueueSize, config.NumberOfPublishWorkers)

	// 4. Supervision
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	sup.Add(
		workers.NewHeartbeatWorker(logger, liveness, config.HeartbeatInterval),
		workers.NewStaleSweepWorker(logger, liveness, config.SweepInterval),
		workers.NewQueueCapacityWorker(logger, queue, registry, config.MetricInterval, config.HighCapacityPercent),
	)
	sup.Add(workers.NewPublishWorkers(logger, queue, broadcaster)...)

	// 5. Services & HTTP
	notifier := services.NewNotifier(logger, queue, todoRepository, registry, time.Now)
	streams := services.NewStreamService(logger, registry, time.Now)
	lists := services.NewListService(logger, listRepository, todoRepository, notifier, time.Now)
	tokens := auth.NewTokenService(config.JWTSecret)

	router := server.NewRouter(logger, tokens,
		server.NewEventsHandler(logger, streams, config.WriteTimeout),
		server.NewStatusHandler(logger, notifier.GetActiveConnectionCount, queue, observability.SelfStats),
		server.NewListHandler(logger, lists),
	)

	address := net.JoinHostPort(config.Host, strconv.Itoa(config.Port))
	httpServer := &http.Server{
		Addr:              address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// WriteTimeout stays unset: push channels are long-lived and bound each write themselves.
	}

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	supDone := make(chan struct{})

	go func() {
		defer close(supDone)
		logger.Info("Starting workers...", "publish_workers", config.NumberOfPublishWorkers)
		sup.Run(ctx)
	}()

	go func() {
		logger.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	code := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errChan:
		code = exitRuntime
	}

	// 8. Graceful Shutdown
	// Open push channels never finish on their own: closing every connection releases their handlers.
	logger.Info("Shutting down gracefully...", "active_connections", registry.Count())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	registry.ForEach(func(conn *runtime.Connection) { registry.Unregister(conn.ID) })
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	stop()
	sup.Stop()
	<-supDone
	logger.Info("Program stopped cleanly")

	return code, runErr
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}

// InspectMapper renders stored records in the debug inspector.
func InspectMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	described, err := storage.Describe(key, val)
	if err != nil {
		row.Detail = "Error: " + err.Error()
		return row
	}
	row.Type = described.Kind
	row.Detail = described.Detail
	return row
}
