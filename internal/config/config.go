package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	// single-user service; every job runs for this athlete
	AthleteID int `toml:"athlete_id"`
	// IANA zone used to decide what "today" is
	Timezone string `toml:"timezone"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// telemetry
	OTelTracingEnabled bool   `toml:"otel_tracing_enabled"`
	PrometheusMetrics  bool   `toml:"prometheus_metrics"`
	PrometheusHost     string `toml:"prometheus_host"`
	PrometheusPort     string `toml:"prometheus_port"`

	// http
	AllowedOrigins          []string `toml:"allowed_origins"`
	LoginRateLimitPerMinute int      `toml:"login_rate_limit_per_minute"`
	RefreshRateLimitPerHour int      `toml:"refresh_rate_limit_per_hour"`
	ReadinessCacheSizeMB    int      `toml:"readiness_cache_size_mb"`

	// jobs
	RefreshInterval     Duration `toml:"refresh_interval"`
	SpotifyPollInterval Duration `toml:"spotify_poll_interval"`
	SpotifyQueueSize    int      `toml:"spotify_queue_size"`
	SpotifyRedirectURI  string   `toml:"spotify_redirect_uri"`
	SpotifyTrackerOn    bool     `toml:"spotify_tracker_on"`

	// fitbod export, either a local file or a drive folder
	FitbodDriveFolderID string `toml:"fitbod_drive_folder_id"`
	FitbodFileName      string `toml:"fitbod_file_name"`
	FitbodLocalPath     string `toml:"fitbod_local_path"`
}

// Duration lets TOML values like "1h" or "750ms" decode into time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env
// with defaults applied.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", env, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.RefreshInterval.Duration == 0 {
		c.RefreshInterval.Duration = time.Hour
	}
	if c.SpotifyPollInterval.Duration == 0 {
		c.SpotifyPollInterval.Duration = time.Second
	}
	if c.SpotifyQueueSize == 0 {
		c.SpotifyQueueSize = 64
	}
	if c.LoginRateLimitPerMinute == 0 {
		c.LoginRateLimitPerMinute = 5
	}
	if c.RefreshRateLimitPerHour == 0 {
		c.RefreshRateLimitPerHour = 6
	}
	if c.ReadinessCacheSizeMB == 0 {
		c.ReadinessCacheSizeMB = 8
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 {
		errs = append(errs, errors.New("port must be set"))
	}
	if c.AthleteID <= 0 {
		errs = append(errs, errors.New("athlete_id must be set"))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if c.PostgresHost == "" || c.PostgresDBName == "" {
		errs = append(errs, errors.New("postgres host and db name must be set"))
	}
	if c.FitbodDriveFolderID != "" && c.FitbodFileName == "" {
		errs = append(errs, errors.New("fitbod_file_name required with fitbod_drive_folder_id"))
	}
	return errors.Join(errs...)
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
