package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/armoury/internal/api"
	"github.com/mcoot/armoury/internal/config"
	"github.com/mcoot/armoury/internal/factory"
)

func main() {
	cfg, err := config.Load(os.Getenv("ARMOURY_CONFIG"))
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg.Log, os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	app, err := factory.New(ctx, factory.Config{
		DatabasePath: cfg.Database.Path,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	server := api.NewServer(app.Handler(logger, findStaticDir(cfg.StaticDir, logger)), cfg.Server, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")
		return server.Shutdown(context.Background())
	})

	return g.Wait()
}

// newLogger builds the process logger. Config validation has already checked level and format.
func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level, _ := cfg.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// findStaticDir returns dir if it exists, otherwise "" so static serving is disabled
func findStaticDir(dir string, logger *slog.Logger) string {
	if dir == "" {
		return ""
	}
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	logger.Warn("static directory not found, serving without stylesheet", slog.String("dir", dir))
	return ""
}
