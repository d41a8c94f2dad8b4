package main

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mitsuba/clubport/internal/app"
	"github.com/mitsuba/clubport/internal/config"
	"github.com/mitsuba/clubport/internal/mcp"
	"github.com/mitsuba/clubport/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info").Error("load config", "error", err)
		os.Exit(1)
	}
	log := logger.Init(cfg.LogLevel)

	ctx := context.Background()

	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("connect postgres", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
	}

	container, err := app.NewContainer(ctx, cfg, pool, nil)
	if err != nil {
		log.Error("build container", "error", err)
		os.Exit(1)
	}

	if err := mcp.Run(container); err != nil {
		log.Error("mcp server failed", "error", err)
		os.Exit(1)
	}
}
