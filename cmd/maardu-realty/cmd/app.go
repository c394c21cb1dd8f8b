package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/maardu-realty/internal/config"
	"github.com/donaldgifford/maardu-realty/internal/engine"
	"github.com/donaldgifford/maardu-realty/internal/listings"
	"github.com/donaldgifford/maardu-realty/internal/marketplace"
	"github.com/donaldgifford/maardu-realty/internal/notify"
	"github.com/donaldgifford/maardu-realty/internal/pipeline"
	"github.com/donaldgifford/maardu-realty/internal/store"
)

const notifierTimeout = 10 * time.Second

// app holds the long-lived components shared by serve and check-expired.
type app struct {
	store     *store.PostgresStore
	listings  *listings.Store
	pipeline  *pipeline.Pipeline
	scheduler *engine.Scheduler
}

// newApp connects to Postgres, applies migrations, and builds every
// component from cfg. Callers must call close.
func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	market := marketplace.New(cfg.Marketplace.BaseURL,
		marketplace.WithHTTPClient(&http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}),
		marketplace.WithServiceToken(cfg.Marketplace.ServiceToken),
		marketplace.WithTimeout(cfg.Marketplace.Timeout),
		marketplace.WithRateLimiter(marketplace.NewRateLimiter(
			cfg.Marketplace.RateLimit.PerSecond, cfg.Marketplace.RateLimit.Burst,
		)),
	)

	ls := listings.New(market, listings.WithLogger(log))
	notifier := newNotifier(cfg, log)

	p := pipeline.New(market, st, ls,
		pipeline.WithLogger(log),
		pipeline.WithNotifier(notifier),
		pipeline.WithRetry(cfg.Pipeline.MaxAttempts, cfg.Pipeline.InitialBackoff, cfg.Pipeline.MaxBackoff),
	)

	eng := engine.NewEngine(market, st, notifier, engine.WithLogger(log))

	sched, err := engine.NewScheduler(eng, st, engine.SchedulerConfig{
		ExpirationInterval:      cfg.Schedule.ExpirationInterval,
		PipelineResumeInterval:  cfg.Schedule.PipelineResumeInterval,
		ListingsRefreshInterval: cfg.Schedule.ListingsRefreshInterval,
		JobTimeout:              cfg.Schedule.JobTimeout,
		StallAfter:              cfg.Pipeline.StallAfter,
	}, log,
		engine.WithStalledResumer(p),
		engine.WithListingRefresher(ls),
	)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}

	return &app{
		store:     st,
		listings:  ls,
		pipeline:  p,
		scheduler: sched,
	}, nil
}

func (a *app) close() {
	a.store.Close()
}

func newNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	if cfg.Notifications.Discord.Enabled {
		log.Info("discord notifications enabled")
		return notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL,
			notify.WithHTTPClient(&http.Client{Timeout: notifierTimeout}),
		)
	}
	return notify.NewNoOpNotifier(log)
}
