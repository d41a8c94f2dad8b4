package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mitsuba/clubport/internal/adapter/cache/redis"
	"github.com/mitsuba/clubport/internal/adapter/events/nats"
	"github.com/mitsuba/clubport/internal/app"
	"github.com/mitsuba/clubport/internal/config"
	"github.com/mitsuba/clubport/internal/pkg/logger"
	"github.com/mitsuba/clubport/internal/pkg/tracing"
	httptransport "github.com/mitsuba/clubport/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info").Error("load config", "error", err)
		os.Exit(1)
	}
	log := logger.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, "clubport", cfg.OTLPEndpoint)
	if err != nil {
		log.Error("init tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("connect postgres", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
	} else {
		log.Warn("DATABASE_URL not set, delivery settings resolve from env only")
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(cfg.RedisAddr)
		if err := redis.Ping(ctx, client); err != nil {
			log.Warn("redis unreachable, falling back to in-process rate limiting", "error", err)
		} else {
			httptransport.SetRedisClient(client)
			defer client.Close()
		}
	}

	feed := httptransport.NewFeed()

	container, err := app.NewContainer(ctx, cfg, pool, feed)
	if err != nil {
		log.Error("build container", "error", err)
		os.Exit(1)
	}

	if cfg.NATSURL != "" {
		bus, err := nats.NewClient(cfg.NATSURL)
		if err != nil {
			log.Warn("nats unreachable, bus intake disabled", "error", err)
		} else {
			defer bus.Close()
			if err := bus.SubscribeNotifications(container.SvcNotifier); err != nil {
				log.Error("subscribe notifications", "error", err)
				os.Exit(1)
			}
			log.Info("bus intake enabled", "url", cfg.NATSURL)
		}
	}

	router := httptransport.NewRouter(cfg, container.SvcNotifier, feed)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           otelhttp.NewHandler(router, "clubport.http"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr, "version", app.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
}
