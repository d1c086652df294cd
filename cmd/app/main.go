package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shipflow/cmd"
	api "shipflow/internal/adapters/in/http"
	"shipflow/internal/adapters/out/postgres"
	"shipflow/internal/adapters/out/redisbus"

	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(configs, handler)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var rdb goredis.UniversalClient
	if configs.RedisAddr != "" {
		client, connErr := redisbus.Connect(ctx, configs.RedisAddr)
		if connErr != nil {
			log.Fatalf("Failed to connect to redis: %v", connErr)
		}
		defer client.Close()
		rdb = client
	} else {
		logger.Warn("REDIS_ADDR is empty, live notifications are disabled")
	}

	app := cmd.NewCompositionRoot(configs, gormDB, rdb, logger)

	fanOut := app.FanOut()
	fanOut.Start(context.WithoutCancel(ctx))
	defer fanOut.Stop()

	jobManager, err := app.CreateJobManager(logger)
	if err != nil {
		log.Fatalf("Failed to create jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err = startWebServer(ctx, app, configs, logger); err != nil {
		log.Errorf("Web server stopped: %v", err)
	}
}

func openDatabase(configs cmd.Config, handler slog.Handler) (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.New(
			slog.NewLogLogger(handler, slog.LevelWarn),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}
	return db, nil
}

// startWebServer serves the API until ctx is cancelled, then drains in-flight
// requests before returning.
func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) error {
	e, err := api.NewRouter(api.NewServer(app.CreateHandlers()), api.RouterConfig{
		JWTSecret: configs.AuthJWTSecret,
	}, logger)
	if err != nil {
		return err
	}
	if configs.AuthJWTSecret == "" {
		logger.Warn("AUTH_JWT_SECRET is empty, trusting the " + api.ActorHeader + " header")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
