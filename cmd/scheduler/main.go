// Package main provides the periodic beat that enqueues lifecycle jobs.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/rueidis"

	"github.com/osokin/eventbook/internal/config"
	"github.com/osokin/eventbook/internal/logger"
	"github.com/osokin/eventbook/internal/queue"
	"github.com/osokin/eventbook/internal/scheduler"
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

	redisClient, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress: []string{cfg.RedisAddr},
	})
	if err != nil {
		slog.Error("failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(exitCode)
	}
	defer redisClient.Close()

	beat := scheduler.New(
		queue.New(redisClient),
		cfg.RemindInterval,
		cfg.ExpireInterval,
		cfg.DrainInterval,
		loggerInstance,
	)

	beat.Start(ctx)
}
