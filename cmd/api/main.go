// @title                      To-do API
// @version                    1.0
// @description                Authenticated to-do list backend: register, log in, manage your own tasks.
// @BasePath                   /
// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"

	"github.com/todoapp/task-manager/internal/api"
	"github.com/todoapp/task-manager/internal/core/service"
	"github.com/todoapp/task-manager/internal/infrastructure/db/mongo"
	"github.com/todoapp/task-manager/internal/infrastructure/db/redis"
	httpinfra "github.com/todoapp/task-manager/internal/infrastructure/http"
	"github.com/todoapp/task-manager/internal/pkg/config"
	"github.com/todoapp/task-manager/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "todo-api",
	})

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongo.Connect(rootCtx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create mongo client")
	}

	userRepo := mongo.NewUserRepository(db)
	taskRepo := mongo.NewTaskRepository(db)
	go func() {
		ping := func(ctx context.Context) error { return mongo.Ping(ctx, client) }
		if err := mongo.EnsureIndexes(rootCtx, ping, log, mongo.DefaultBackoff(), userRepo, taskRepo); err != nil {
			log.Warn().Err(err).Msg("index setup abandoned")
		}
	}()

	var (
		rdb     *goredis.Client
		limiter service.LoginLimiter
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(rootCtx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, login lockout disabled")
		} else {
			limiter = redis.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.LockoutWindow)
		}
	}

	authSvc := service.NewAuthService(userRepo, limiter, service.AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.TokenTTL,
		BcryptCost: cfg.BcryptCost,
	}, log)
	taskSvc := service.NewTaskService(taskRepo, log)

	e := api.NewRouter(api.Dependencies{
		DB:     db,
		Redis:  rdb,
		Auth:   authSvc,
		Tokens: authSvc,
		Tasks:  taskSvc,
		Logger: log,
		HTTP: httpinfra.Options{
			CORSOrigins: cfg.CORSOrigins,
			Registerer:  prometheus.DefaultRegisterer,
			Gatherer:    prometheus.DefaultGatherer,
			Swagger:     true,
		},
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}
}
