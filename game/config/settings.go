package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Store backends
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Settings holds the runtime configuration
type Settings struct {
	DataDir      string        `env:"NUMGUESS_DATA_DIR" envDefault:"."`
	Store        string        `env:"NUMGUESS_STORE" envDefault:"file"`
	Debug        bool          `env:"NUMGUESS_DEBUG"`
	HTTPAddr     string        `env:"NUMGUESS_HTTP_ADDR" envDefault:"localhost:8080"`
	PollInterval time.Duration `env:"NUMGUESS_POLL_INTERVAL" envDefault:"5s"`

	NgrokEnabled   bool   `env:"NGROK_ENABLED"`
	NgrokAuthtoken string `env:"NGROK_AUTHTOKEN"`
	NgrokDomain    string `env:"NGROK_DOMAIN"`
}

// Load reads optional .env files (default ".env") and parses the environment.
// Missing .env files are ignored; variables already set are not overridden.
func Load(envFiles ...string) (Settings, error) {
	var s Settings

	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return s, fmt.Errorf("load .env: %w", err)
	}

	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("parse env: %w", err)
	}

	s.Store = strings.ToLower(strings.TrimSpace(s.Store))
	return s, nil
}

// Validate checks the settings are usable
func (s Settings) Validate() error {
	switch s.Store {
	case StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("%w: unknown store %q (want %q or %q)", ErrInvalidSettings, s.Store, StoreFile, StoreSQLite)
	}
	if strings.TrimSpace(s.DataDir) == "" {
		return fmt.Errorf("%w: data directory is empty", ErrInvalidSettings)
	}
	if s.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval must be positive, got %s", ErrInvalidSettings, s.PollInterval)
	}
	if s.NgrokEnabled && s.NgrokAuthtoken == "" {
		return fmt.Errorf("%w: NGROK_AUTHTOKEN is required when ngrok is enabled", ErrInvalidSettings)
	}
	return nil
}
