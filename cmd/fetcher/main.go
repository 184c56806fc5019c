package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rickgao/jquants-data/internal/api"
	"github.com/rickgao/jquants-data/internal/auth"
	"github.com/rickgao/jquants-data/internal/batch"
	"github.com/rickgao/jquants-data/internal/config"
	"github.com/rickgao/jquants-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/fetcher.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting fetcher",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"api_url", cfg.API.BaseURL,
		"output_dir", cfg.Output.Dir,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		logger.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}

	// Create API client
	client := api.NewClient(
		cfg.API.BaseURL,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithRetries(cfg.API.MaxRetries, cfg.API.RetryBackoff),
	)

	// Authenticate: fatal on failure, no retry
	creds, err := auth.NewCredentials(cfg.Auth.Email, cfg.Auth.Password)
	if err != nil {
		logger.Error("invalid credentials", "error", err)
		os.Exit(1)
	}

	logger.Info("authenticating")
	session, err := auth.Authenticate(ctx, client, creds)
	if err != nil {
		logger.Error("authentication failed", "error", err)
		os.Exit(1)
	}
	logger.Info("authentication succeeded")

	engine := batch.New(batch.Config{
		RequestInterval: cfg.Batch.RequestInterval,
		Concurrency:     cfg.Batch.Concurrency,
		ProgressEvery:   100,
	}, logger)

	a := &app{
		cfg:    cfg,
		client: client.WithSessionToken(session.IDToken),
		engine: engine,
		logger: logger,
	}

	if err := a.menuLoop(ctx, os.Stdin); err != nil {
		if ctx.Err() != nil {
			logger.Info("interrupted")
			os.Exit(1)
		}
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
