package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/vmihailenco/msgpack/v4"

	"chatbox-lab/auth"
	"chatbox-lab/keymutex"
	"chatbox-lab/moderation"
	"chatbox-lab/observability"
	"chatbox-lab/repositories"
	"chatbox-lab/runtime"
	"chatbox-lab/runtime/workers"
	"chatbox-lab/server"
	"chatbox-lab/services"
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

// run initializes everything, blocks until a signal or a fatal error,
// then shuts down gracefully. Returning instead of os.Exit keeps the
// defers (database close, index close) live.
func run() (int, error) {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	charReplacement, err := config.CharacterRune()
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// Storage
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
		database.StartDebugServer(db, config.DebugPort, endpoint, recordMapper)
	}

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}

	// Repositories
	userRepository, err := repositories.NewUserRepository(db, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("user repository: %w", err)
	}
	defer func() { _ = userRepository.Close() }()

	chatBoxRepository, err := repositories.NewChatBoxRepository(db, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("chatbox repository: %w", err)
	}
	defer func() { _ = chatBoxRepository.Close() }()

	messageIndex := repositories.NewMessageIndex(blugeWriter, logger)
	defer func() {
		logger.Info("Closing Bluge...")
		_ = messageIndex.Close()
	}()

	// Moderation
	censored, err := moderation.LoadCensoredWords()
	if err != nil {
		return exitRuntime, fmt.Errorf("censored words: %w", err)
	}
	moderator, err := moderation.NewModerator(censored.Words, charReplacement)
	if err != nil {
		return exitRuntime, fmt.Errorf("moderator: %w", err)
	}
	logger.Info("Moderation ready", "words", len(censored.Words), "languages", censored.Languages)

	// Core services
	stats := observability.NewStatsManager()
	registry := runtime.NewRegistry()
	tokenIssuer := auth.NewTokenIssuer([]byte(config.AuthTokenKey), config.AuthTokenDuration)

	authService := services.NewAuthService(userRepository, keymutex.New(config.MutexPoolSize), tokenIssuer, logger)
	chatService := services.NewChatService(chatBoxRepository, registry, keymutex.New(config.MutexPoolSize),
		moderator, messageIndex, stats, logger)
	adminService := services.NewAdminService(authService, chatService, userRepository, registry, logger)

	// Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Background workers
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	sup.Add(
		workers.NewBadgerGCWorker(db, config.GCInterval, logger),
		workers.NewHealthMonitoringWorker(logger, stats, registry, config.MetricInterval),
	)
	go sup.Run(ctx)

	// Transport
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	srv := server.NewServer(address, authService, chatService, adminService,
		registry, stats, config.ConnectionBufferSize, logger)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			errChan <- fmt.Errorf("websocket server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown did not finish cleanly", "error", err)
	}
	sup.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}

// recordMapper gives the debug inspector readable rows for user and
// chatbox records; sequences and indexes fall through to raw bytes.
func recordMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	var record map[string]any
	if err := msgpack.Unmarshal(val, &record); err != nil {
		return row
	}

	switch {
	case len(key) > 5 && key[:5] == "user:":
		row.Type = "USER"
		row.Detail = fmt.Sprintf("%v", record["Username"])
	case len(key) > 4 && key[:4] == "box:":
		row.Type = "CHATBOX"
		row.Detail = fmt.Sprintf("%v (%d messages)", record["Name"], len(asSlice(record["Messages"])))
	}
	return row
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}
