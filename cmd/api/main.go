package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/osukit/pp-api/internal/calc"
	"github.com/osukit/pp-api/internal/config"
	"github.com/osukit/pp-api/internal/engine"
	"github.com/osukit/pp-api/internal/handlers"
	"github.com/osukit/pp-api/internal/store"
	"github.com/osukit/pp-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	engine.Bootstrap()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional score archive: only wired when Postgres is configured.
	var (
		archive store.Archive
		pool    *worker.Pool
	)
	if cfg.PostgresURL != "" {
		pg, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			sugar.Fatalw("failed to connect to postgres", "error", err)
		}
		defer pg.Close()

		archive = store.NewPostgresArchive(pg)
		pool = worker.NewPool(worker.PoolConfig{
			WorkerCount:   cfg.WorkerCount,
			QueueSize:     cfg.QueueSize,
			BatchSize:     cfg.BatchSize,
			FlushInterval: cfg.FlushInterval,
			Archive:       archive,
			Logger:        logger,
		})
		pool.Start(context.Background())
		sugar.Infow("score archive enabled", "workers", cfg.WorkerCount, "queue_size", cfg.QueueSize)
	} else {
		sugar.Info("POSTGRES_URL not set, score archiving disabled")
	}

	// Optional difficulty attribute cache.
	var (
		redisClient *redis.Client
		attrCache   calc.AttributeCache
	)
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			sugar.Fatalw("invalid REDIS_URL", "error", err)
		}
		redisClient = redis.NewClient(opts)
		defer redisClient.Close()

		attrCache = store.NewRedisAttributeCache(redisClient, cfg.CacheTTL, logger)
		sugar.Infow("attribute cache enabled", "ttl", cfg.CacheTTL)
	} else {
		sugar.Info("REDIS_URL not set, attribute caching disabled")
	}

	calculator := calc.New(calc.Config{
		Cache:   attrCache,
		MapsDir: cfg.MapsDir,
		Logger:  logger,
	})

	handlerCfg := handlers.Config{
		Calculator: calculator,
		Archive:    archive,
		Redis:      redisClient,
		Logger:     logger,
	}
	if pool != nil {
		handlerCfg.WorkerPool = pool
	}
	h := handlers.New(handlerCfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h.Routes(cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infow("server listening", "port", cfg.Port, "env", cfg.Env, "maps_dir", cfg.MapsDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("graceful shutdown failed", "error", err)
	}

	if pool != nil {
		pool.Stop()
	}
	sugar.Info("server stopped")
}
