package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mitsuba/clubport/internal/adapter/push/line"
	"github.com/mitsuba/clubport/internal/adapter/repository/memory"
	"github.com/mitsuba/clubport/internal/adapter/repository/postgres"
	"github.com/mitsuba/clubport/internal/config"
	"github.com/mitsuba/clubport/internal/port"
	"github.com/mitsuba/clubport/internal/service"
)

const Version = "0.3.1"

type Container struct {
	Config *config.Config
	DB     *pgxpool.Pool

	RepoSettings port.SettingsRepository
	Push         port.PushClient

	SvcNotifier port.Notifier
}

// NewContainer wires adapters to the notifier service. A nil pool swaps
// the postgres settings repository for the in-memory one, which resolves
// every key as absent so env fallbacks apply.
func NewContainer(ctx context.Context, cfg *config.Config, db *pgxpool.Pool, feed port.DispatchPublisher) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	c := &Container{
		Config: cfg,
		DB:     db,
	}

	if db != nil {
		c.RepoSettings = postgres.NewSettingsRepository(db)
	} else {
		c.RepoSettings = memory.NewSettingsRepository()
	}

	c.Push = line.NewClient(cfg.LineChannelToken,
		line.WithEndpoint(cfg.LineAPIEndpoint),
		line.WithTimeout(cfg.PushTimeoutDuration()),
	)

	c.SvcNotifier = service.NewNotifierImpl(c.RepoSettings, c.Push, feed, cfg)

	return c, nil
}
