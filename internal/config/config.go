// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/car-deal-finder/pkg/logger"
	score "github.com/donaldgifford/car-deal-finder/pkg/scorer"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Search    SearchConfig    `yaml:"search"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Rescore   RateLimitConfig `yaml:"rescore"`
	Notify    NotifyConfig    `yaml:"notify"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Addr returns host:port for the listener.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// SearchConfig describes what the extraction side collects. The server only
// reports it; listings arrive through the ingest API.
type SearchConfig struct {
	Site  string `yaml:"site"`
	Make  string `yaml:"make"`
	Model string `yaml:"model"`
}

// Term returns the search phrase, e.g. "Fiat Panda".
func (s *SearchConfig) Term() string {
	return s.Make + " " + s.Model
}

// ScoringConfig defines composite scoring parameters.
type ScoringConfig struct {
	Weights   score.Weights     `yaml:"weights"`
	Winsorize score.Percentiles `yaml:"winsorize"`
	TopN      int               `yaml:"top_n"`
}

// ScorerConfig returns the scoring core configuration.
func (s *ScoringConfig) ScorerConfig() score.Config {
	return score.Config{
		Weights:     s.Weights,
		Percentiles: s.Winsorize,
	}
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	RescoreInterval time.Duration `yaml:"rescore_interval"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
	CleanupMaxAge   time.Duration `yaml:"cleanup_max_age"`
}

// RateLimitConfig throttles manually triggered rescoring passes.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// NotifyConfig defines deal alert delivery. Alerts are logged and dropped
// when no webhook is set.
type NotifyConfig struct {
	Enabled           bool          `yaml:"enabled"`
	DiscordWebhookURL string        `yaml:"discord_webhook_url"`
	MinScore          int           `yaml:"min_score"`
	Timeout           time.Duration `yaml:"timeout"`
}

// TelemetryConfig defines OpenTelemetry export settings.
type TelemetryConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Endpoint       string        `yaml:"endpoint"`
	Insecure       bool          `yaml:"insecure"`
	ServiceName    string        `yaml:"service_name"`
	MetricInterval time.Duration `yaml:"metric_interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation. A .env file next to the config file, if any,
// is loaded first; variables already set in the environment win.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applySearchDefaults(&cfg.Search)
	applyScoringDefaults(&cfg.Scoring)
	applyScheduleDefaults(&cfg.Schedule)
	applyRateLimitDefaults(&cfg.Rescore)
	applyNotifyDefaults(&cfg.Notify)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8000
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applySearchDefaults(s *SearchConfig) {
	if s.Site == "" {
		s.Site = "bilbasen.dk"
	}
	if s.Make == "" {
		s.Make = "Fiat"
	}
	if s.Model == "" {
		s.Model = "Panda"
	}
}

// applyScoringDefaults fills weights and percentiles only when the section
// is left out entirely, so a partial vector still fails validation.
func applyScoringDefaults(s *ScoringConfig) {
	if s.Weights == (score.Weights{}) {
		s.Weights = score.DefaultWeights()
	}
	if s.Winsorize == (score.Percentiles{}) {
		s.Winsorize = score.DefaultPercentiles()
	}
	if s.TopN == 0 {
		s.TopN = 10
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.RescoreInterval == 0 {
		s.RescoreInterval = time.Hour
	}
	if s.CleanupInterval == 0 {
		s.CleanupInterval = 24 * time.Hour
	}
	if s.CleanupMaxAge == 0 {
		s.CleanupMaxAge = 7 * 24 * time.Hour
	}
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 1.0 / 60
	}
	if r.Burst == 0 {
		r.Burst = 1
	}
}

func applyNotifyDefaults(n *NotifyConfig) {
	if n.MinScore == 0 {
		n.MinScore = 80
	}
	if n.Timeout == 0 {
		n.Timeout = 10 * time.Second
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "car-deal-finder"
	}
	if t.MetricInterval == 0 {
		t.MetricInterval = 30 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Database.PoolSize < 2 {
		errs = append(errs, fmt.Errorf("database.pool_size must be at least 2 (got %d)", cfg.Database.PoolSize))
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535 (got %d)", cfg.Server.Port))
	}

	if err := cfg.Scoring.Weights.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("scoring.weights: %w", err))
	}
	if err := cfg.Scoring.Winsorize.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("scoring.winsorize: %w", err))
	}
	if cfg.Scoring.TopN < 1 || cfg.Scoring.TopN > 50 {
		errs = append(errs, fmt.Errorf("scoring.top_n must be between 1 and 50 (got %d)", cfg.Scoring.TopN))
	}

	if cfg.Schedule.RescoreInterval < 0 || cfg.Schedule.CleanupInterval < 0 || cfg.Schedule.CleanupMaxAge < 0 {
		errs = append(errs, fmt.Errorf("schedule intervals must not be negative"))
	}

	if cfg.Rescore.PerSecond < 0 || cfg.Rescore.Burst < 0 {
		errs = append(errs, fmt.Errorf("rescore rate limit must not be negative"))
	}

	if cfg.Notify.MinScore < 0 || cfg.Notify.MinScore > 100 {
		errs = append(errs, fmt.Errorf("notify.min_score must be between 0 and 100 (got %d)", cfg.Notify.MinScore))
	}

	if !logger.ValidLevel(cfg.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
	}
	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		errs = append(errs, fmt.Errorf("logging.format must be text or json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
