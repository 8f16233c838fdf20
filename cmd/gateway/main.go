// Package main provides the standalone notification gateway service.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osokin/eventbook/internal/config"
	"github.com/osokin/eventbook/internal/gateway"
	"github.com/osokin/eventbook/internal/logger"
)

const exitCode = 1

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(exitCode)
	}

	loggerInstance := logger.Setup(cfg.LogLevel)
	slog.SetDefault(loggerInstance)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.Info("starting notification gateway",
		slog.String("service", "gateway"),
		slog.String("addr", cfg.GatewayListenAddr),
	)

	if err := gateway.Serve(ctx, cfg.GatewayListenAddr, cfg.GatewayMaxInFlight, loggerInstance); err != nil {
		slog.Error("gateway stopped", slog.String("error", err.Error()))
		os.Exit(exitCode)
	}
}
