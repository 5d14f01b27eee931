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

	"github.com/johnhenrypower/kraken-dashboard/internal/infra"
	"github.com/johnhenrypower/kraken-dashboard/internal/kraken"
	"github.com/johnhenrypower/kraken-dashboard/internal/proxy"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig(infra.ResolveConfigPath())
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	slog.SetDefault(infra.NewLogger(cfg))
	infra.PrintBanner(cfg, "xstocks-proxy", cfg.Proxy.ListenAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := kraken.NewClient(cfg.Kraken.BaseURL, cfg.UserAgent())
	client.SetTimeout(cfg.KrakenTimeout())

	agg := proxy.NewAggregator(client, cfg.Proxy.Pairs, cfg.Proxy.RateLimit, cfg.ProxyConfigured())

	srv := &http.Server{
		Addr:         cfg.Proxy.ListenAddr,
		Handler:      proxy.NewServer(agg, cfg.ProxyConfigured()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second, // feed refresh walks every pair
	}

	go func() {
		slog.Info("xstocks proxy listening", slog.String("addr", cfg.Proxy.ListenAddr))
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
