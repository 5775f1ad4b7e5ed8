// Package config loads service configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mwhite7112/woodpantry-nutrition/internal/service"
	"github.com/spf13/viper"
)

type Config struct {
	Port     int    `mapstructure:"port"`
	DBURL    string `mapstructure:"db_url"`
	LogLevel string `mapstructure:"log_level"`

	RedisAddr string        `mapstructure:"redis_addr"`
	RedisTTL  time.Duration `mapstructure:"redis_ttl"`

	MatchReducedConfidence float64 `mapstructure:"match_reduced_confidence"`
	DefaultGoal            string  `mapstructure:"default_goal"`
	BackfillPageSize       int     `mapstructure:"backfill_page_size"`
	NearDuplicateDistance  int     `mapstructure:"near_duplicate_distance"`
}

var keys = []string{
	"port",
	"db_url",
	"log_level",
	"redis_addr",
	"redis_ttl",
	"match_reduced_confidence",
	"default_goal",
	"backfill_page_size",
	"near_duplicate_distance",
}

// Load reads .env (when present) into the environment, then builds the
// config from defaults overridden by environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return fromEnv(viper.New())
}

func fromEnv(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about.
	for _, k := range keys {
		if err := v.BindEnv(k, strings.ToUpper(k)); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("redis_ttl", "1h")
	v.SetDefault("match_reduced_confidence", 0.8)
	v.SetDefault("default_goal", "general")
	v.SetDefault("backfill_page_size", 200)
	v.SetDefault("near_duplicate_distance", 1)
}

func validateConfig(cfg *Config) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	if cfg.RedisAddr != "" && cfg.RedisTTL <= 0 {
		return fmt.Errorf("invalid REDIS_TTL %s", cfg.RedisTTL)
	}
	if cfg.MatchReducedConfidence <= 0 || cfg.MatchReducedConfidence > 1 {
		return fmt.Errorf("MATCH_REDUCED_CONFIDENCE must be in (0, 1], got %v", cfg.MatchReducedConfidence)
	}
	if cfg.DefaultGoal == "" {
		return errors.New("DEFAULT_GOAL is required")
	}
	if cfg.BackfillPageSize <= 0 || cfg.BackfillPageSize > service.MaxBackfillPageSize {
		return fmt.Errorf("BACKFILL_PAGE_SIZE must be between 1 and %d, got %d", service.MaxBackfillPageSize, cfg.BackfillPageSize)
	}
	if cfg.NearDuplicateDistance < 0 {
		return fmt.Errorf("invalid NEAR_DUPLICATE_DISTANCE %d", cfg.NearDuplicateDistance)
	}
	return nil
}

// RequireDB reports a missing DB_URL for commands that need the store.
func (c *Config) RequireDB() error {
	if c.DBURL == "" {
		return errors.New("DB_URL is required")
	}
	return nil
}
