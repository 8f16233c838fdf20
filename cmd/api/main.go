// Package main provides the HTTP API server for the event booking backend.
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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/rueidis"

	"github.com/osokin/eventbook/internal/clock"
	"github.com/osokin/eventbook/internal/config"
	"github.com/osokin/eventbook/internal/handler"
	"github.com/osokin/eventbook/internal/logger"
	"github.com/osokin/eventbook/internal/queue"
	"github.com/osokin/eventbook/internal/repository"
	"github.com/osokin/eventbook/internal/service"
)

const (
	shutdownTimeout = 10 * time.Second
	exitCode        = 1
)

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

	if err := repository.Migrate(ctx, dbPool); err != nil {
		slog.Error("failed to apply schema", slog.String("error", err.Error()))
		os.Exit(exitCode)
	}

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
	userRepo := repository.NewUserRepositoryImpl(dbPool)

	eventService := service.NewEventServiceImpl(eventRepo, clk)
	bookingService := service.NewBookingServiceImpl(eventRepo, bookingRepo, tasks, clk, loggerInstance)
	notificationService := service.NewNotificationServiceImpl(notificationRepo, bookingRepo, clk)

	h := handler.NewHandler(eventService, bookingService, notificationService, userRepo, loggerInstance)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	h.Routes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shut down server", slog.String("error", err.Error()))
		}
	}()

	slog.Info("starting API server", slog.String("service", "api"), slog.String("port", cfg.Port))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("failed to start server", slog.String("error", err.Error()))
		os.Exit(exitCode)
	}
}
