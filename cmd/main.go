package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/balanza-dev/balanza/internal/config"
	"github.com/balanza-dev/balanza/internal/httpapi"
	"github.com/balanza-dev/balanza/internal/storage/memory"
	pgstore "github.com/balanza-dev/balanza/internal/storage/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfgPath := flag.String("config", os.Getenv("CONFIG"), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	logger := buildLogger(cfg.Log)
	slog.SetDefault(logger)

	var store httpapi.PeriodStore
	var closeFn func()

	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		pg, err := pgstore.Open(ctx, dsn)
		if err != nil {
			logger.Error("failed to connect to postgres", "err", err)
			os.Exit(1)
		}
		closeFn = func() { pg.Close() }
		store = pg
		logger.Info("storage backend: postgres")
	} else {
		store = memory.New()
		logger.Info("storage backend: memory")
	}

	api := httpapi.New(store, cfg.DefaultExchangeRate, cfg.CORSAllowedOrigins, logger)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Handler(),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("balanza service listening", "addr", srv.Addr, "default_rate", cfg.DefaultExchangeRate)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctxShutdown); err != nil {
			logger.Error("server shutdown error", "err", err)
		}
	case err := <-errCh:
		logger.Error("server error", "err", err)
	}
	if closeFn != nil {
		closeFn()
	}
}

// parseLogLevel maps config values to slog.Leveler
func parseLogLevel(s string) slog.Leveler {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR", "ERR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func buildLogger(lc config.Log) *slog.Logger {
	level := parseLogLevel(lc.Level)
	if strings.ToLower(strings.TrimSpace(lc.Format)) == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}
	// default to JSON
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
