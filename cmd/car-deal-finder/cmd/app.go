package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/donaldgifford/car-deal-finder/internal/config"
	"github.com/donaldgifford/car-deal-finder/internal/engine"
	"github.com/donaldgifford/car-deal-finder/internal/notify"
	"github.com/donaldgifford/car-deal-finder/internal/store"
	"github.com/donaldgifford/car-deal-finder/pkg/condition"
	"github.com/donaldgifford/car-deal-finder/pkg/logger"
	score "github.com/donaldgifford/car-deal-finder/pkg/scorer"
)

// loadConfig reads the config file and builds the process logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)
	return cfg, log, nil
}

// openStore connects to PostgreSQL and applies pending migrations.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*store.PostgresStore, error) {
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), store.WithMaxConns(cfg.Database.PoolSize))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	log.Info("database ready", "host", cfg.Database.Host, "db", cfg.Database.Name)
	return st, nil
}

// newEngine builds the classifier, the scorer and the engine around st.
func newEngine(
	cfg *config.Config,
	st store.Store,
	log *slog.Logger,
	opts ...engine.EngineOption,
) (*engine.Engine, error) {
	classifier := condition.New(condition.WithLogger(logger.Component(log, "condition")))

	scorer, err := score.New(cfg.Scoring.ScorerConfig(),
		score.WithLogger(logger.Component(log, "scorer")),
		score.WithClassifier(classifier),
	)
	if err != nil {
		return nil, fmt.Errorf("creating scorer: %w", err)
	}

	base := []engine.EngineOption{
		engine.WithLogger(logger.Component(log, "engine")),
		engine.WithRescoreLimiter(rate.Limit(cfg.Rescore.PerSecond), cfg.Rescore.Burst),
	}
	if cfg.Notify.Enabled {
		base = append(base, engine.WithNotifier(newNotifier(cfg, log), cfg.Search.Term(), cfg.Notify.MinScore))
	}
	return engine.NewEngine(st, scorer, classifier, append(base, opts...)...), nil
}

// newNotifier returns the Discord notifier, or a logging no-op when no
// webhook is configured.
func newNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	if cfg.Notify.DiscordWebhookURL == "" {
		log.Warn("deal alerts enabled without a discord webhook, alerts will only be logged")
		return notify.NewNoOpNotifier(logger.Component(log, "notify"))
	}
	return notify.NewDiscordNotifier(cfg.Notify.DiscordWebhookURL,
		notify.WithHTTPClient(&http.Client{Timeout: cfg.Notify.Timeout}),
	)
}
