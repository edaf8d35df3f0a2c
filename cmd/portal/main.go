package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"

	"flounder-swim/internal/clock"
	"flounder-swim/internal/config"
	"flounder-swim/internal/fixtures"
	"flounder-swim/internal/metrics"
	"flounder-swim/internal/portal"
	"flounder-swim/internal/server"
	"flounder-swim/internal/sheets"
	"flounder-swim/internal/tgbot"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.FromEnv()
	if err != nil {
		fatal(logger, "config", err)
	}

	pflag.StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "HTTP listen address")
	pflag.StringVar(&cfg.FixturesPath, "fixtures", cfg.FixturesPath, "seed YAML file (embedded seed when empty)")
	pflag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	seed, err := loadSeed(ctx, cfg, logger)
	if err != nil {
		fatal(logger, "fixtures", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := portal.New(portal.Options{
		Seed:    seed,
		Clock:   clock.Real(),
		Mode:    cfg.NewRecordMode,
		Locale:  cfg.Locale,
		Metrics: metrics.New(reg),
		Logger:  logger,
	})

	httpSrv, err := server.New(cfg, app, logger, reg)
	if err != nil {
		fatal(logger, "server", err)
	}

	go func() {
		logger.Info("http listening", "addr", cfg.HTTPAddr, "new_record_mode", cfg.NewRecordMode)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal(logger, "http server", err)
		}
	}()

	if cfg.BotEnabled() {
		botApp, err := tgbot.New(cfg, app, logger)
		if err != nil {
			fatal(logger, "telegram", err)
		}
		go func() {
			if err := botApp.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("bot stopped", "error", err)
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down")

	ctxTimeout, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	_ = httpSrv.Shutdown(ctxTimeout)

	logger.Info("bye")
}

// loadSeed reads the YAML seed and, when a spreadsheet is configured,
// replaces its editable collections with the sheet contents. A sheet that
// cannot be read leaves the YAML seed in place.
func loadSeed(ctx context.Context, cfg config.Config, logger *slog.Logger) (fixtures.Seed, error) {
	seed, err := fixtures.LoadFile(cfg.FixturesPath)
	if err != nil {
		return fixtures.Seed{}, err
	}
	if !cfg.SheetsEnabled() {
		return seed, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	sh, err := sheets.New(ctx, cfg.GoogleServiceAccountJSON, cfg.SpreadsheetID)
	if err != nil {
		logger.Warn("sheets unavailable, using fixtures", "error", err)
		return seed, nil
	}
	fromSheets, err := sh.LoadSeed(ctx)
	if err != nil {
		logger.Warn("sheets read failed, using fixtures", "spreadsheet", sh.SpreadsheetID(), "error", err)
		return seed, nil
	}
	return seed.Overlay(fromSheets), nil
}

func fatal(logger *slog.Logger, what string, err error) {
	logger.Error(what, "error", err)
	os.Exit(1)
}
