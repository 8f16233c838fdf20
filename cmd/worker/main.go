// Package main provides the background worker consuming the task queue.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/rueidis"

	"github.com/osokin/eventbook/internal/clock"
	"github.com/osokin/eventbook/internal/config"
	"github.com/osokin/eventbook/internal/gateway"
	"github.com/osokin/eventbook/internal/logger"
	"github.com/osokin/eventbook/internal/queue"
	"github.com/osokin/eventbook/internal/repository"
	"github.com/osokin/eventbook/internal/service"
	"github.com/osokin/eventbook/internal/worker"
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

	dbPool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(exitCode)
	}
	defer dbPool.Close()

	redisClient, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress: []string{cfg.RedisAddr},
	})
	if err != nil {
		slog.Error("failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(exitCode)
	}
	defer redisClient.Close()

	clk := clock.NewSystem()
	tasks := queue.New(redisClient)

	eventRepo := repository.NewEventRepositoryImpl(dbPool)
	bookingRepo := repository.NewBookingRepositoryImpl(dbPool)
	notificationRepo := repository.NewNotificationRepositoryImpl(dbPool)

	notificationService := service.NewNotificationServiceImpl(notificationRepo, bookingRepo, clk)

	sender := gateway.NewClient(cfg.GatewayAddr, cfg.GatewayCallTimeout)
	defer sender.Close()

	router := service.NewDeliveryRouter(notificationService, sender, loggerInstance)

	jobHandler := worker.NewHandler(
		eventRepo,
		bookingRepo,
		notificationService,
		router,
		tasks,
		clk,
		loggerInstance,
		worker.Options{
			ExpireAfter:  cfg.ExpireAfter,
			RemindLead:   cfg.RemindLead,
			RemindWindow: cfg.RemindWindow,
		},
	)

	consumer := worker.NewConsumer(tasks, jobHandler, cfg.ConsumerName, cfg.WorkerBatchSize, loggerInstance)

	slog.Info("starting worker",
		slog.String("service", "worker"),
		slog.String("consumer", cfg.ConsumerName),
	)

	consumer.Run(ctx)
}
