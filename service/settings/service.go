// Package settings reads environment defaults for the command line.
package settings

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Settings are defaults taken from the environment. Command line flags override them.
type Settings struct {
	Backend   string `env:"VERSION_TRACKER_BACKEND" default:"sqlite"`
	DBPath    string `env:"VERSION_TRACKER_DB_PATH"`
	Scope     string `env:"VERSION_TRACKER_SCOPE" default:"default"`
	Table     string `env:"VERSION_TRACKER_TABLE" default:"version-tracker"`
	RedisURL  string `env:"VERSION_TRACKER_REDIS_URL" default:"redis://localhost:6379/0"`
	Endpoint  string `env:"VERSION_TRACKER_ENDPOINT"`
	Output    string `env:"VERSION_TRACKER_OUTPUT" default:"table"`
	LogLevel  string `env:"VERSION_TRACKER_LOG_LEVEL" default:"warn"`
	LogFormat string `env:"VERSION_TRACKER_LOG_FORMAT" default:"text"`
}

// Load reads dotenvPath (if it exists) into the environment and then decodes
// the environment. Variables already set win over the file.
func Load(dotenvPath string) (Settings, error) {
	if dotenvPath == "" {
		dotenvPath = ".env"
	}
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to read %s: %w", dotenvPath, err)
	}

	var s Settings
	if err := env.Load(&s, nil); err != nil {
		return Settings{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	return s, nil
}
