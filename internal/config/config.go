package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config is the runtime configuration of the API server and the seed command.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Store   string `env:"STORE" envDefault:"file"`
	DataDir string `env:"DATA_DIR" envDefault:"data/games"`
	DBPath  string `env:"DB_PATH" envDefault:"./game-library.db"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:*"`

	// PlayerCountTopBucket overrides the open-ended card bucket; nil derives it
	// from the vocabulary's player count options.
	PlayerCountTopBucket *int   `env:"PLAYER_COUNT_TOP_BUCKET"`
	PlayerCountUnit      string `env:"PLAYER_COUNT_UNIT" envDefault:"joueur"`
	PlayerCountUnits     string `env:"PLAYER_COUNT_UNITS" envDefault:"joueurs"`
	SortOrder            string `env:"SORT_ORDER" envDefault:"lexical"`
	VocabularyPath       string `env:"VOCABULARY_PATH"`

	ImageMaxBytes           int64 `env:"IMAGE_MAX_BYTES" envDefault:"5242880"`
	ImageRequireAttribution bool  `env:"IMAGE_REQUIRE_ATTRIBUTION" envDefault:"false"`

	RemoteRetry int `env:"REMOTE_RETRY" envDefault:"2"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !slices.Contains([]string{StoreMemory, StoreFile, StoreSQLite}, c.Store) {
		return fmt.Errorf("STORE must be one of memory, file, sqlite: got %q", c.Store)
	}
	if c.SortOrder != "lexical" && c.SortOrder != "semantic" {
		return fmt.Errorf("SORT_ORDER must be lexical or semantic: got %q", c.SortOrder)
	}
	if c.PlayerCountTopBucket != nil && *c.PlayerCountTopBucket < 0 {
		return fmt.Errorf("PLAYER_COUNT_TOP_BUCKET must not be negative")
	}
	if c.RemoteRetry < 0 {
		return fmt.Errorf("REMOTE_RETRY must not be negative")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured log level, info when unparsable.
func (c Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return l, nil
}
