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

	"github.com/johnhenrypower/kraken-dashboard/internal/classify"
	"github.com/johnhenrypower/kraken-dashboard/internal/infra"
	"github.com/johnhenrypower/kraken-dashboard/internal/kraken"
	"github.com/johnhenrypower/kraken-dashboard/internal/poller"
	"github.com/johnhenrypower/kraken-dashboard/internal/server"
	"github.com/johnhenrypower/kraken-dashboard/internal/xstocks"
)

func main() {
	// .env is optional; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig(infra.ResolveConfigPath())
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	slog.SetDefault(infra.NewLogger(cfg))
	infra.PrintBanner(cfg, "dashboard", cfg.Dashboard.ListenAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	market := kraken.NewClient(cfg.Kraken.BaseURL, cfg.UserAgent())
	market.SetTimeout(cfg.KrakenTimeout())
	equities := xstocks.NewClient(cfg.Dashboard.ProxyURL)

	ctrl := poller.New(market, equities, classify.DefaultPolicy(), cfg.RefreshInterval())
	hub := server.NewHub()
	ctrl.OnUpdate(hub.Broadcast)

	ctrl.Start(ctx)
	defer ctrl.Stop()

	srv := &http.Server{
		Addr:         cfg.Dashboard.ListenAddr,
		Handler:      server.NewServer(ctrl, hub),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("dashboard API listening", slog.String("addr", cfg.Dashboard.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("server shutdown", slog.Any("error", err))
	}
}
