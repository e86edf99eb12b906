// Package config loads harness configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, as in AOC_YEAR.
const Prefix = "AOC"

// Config holds the harness settings.
type Config struct {
	// Year is the event year to fetch input for.
	// Env: AOC_YEAR (default: 2023)
	Year int `envconfig:"YEAR" default:"2023"`

	// Session is the adventofcode.com session cookie value.
	// Env: AOC_SESSION
	Session string `envconfig:"SESSION"`

	// SessionFile holds the session cookie when Session is empty.
	// Env: AOC_SESSION_FILE
	// Default: ~/keys/aoc.session
	SessionFile string `envconfig:"SESSION_FILE"`

	// InputDir is where downloaded input is cached as <day>.input.
	// Env: AOC_INPUT_DIR (default: .)
	InputDir string `envconfig:"INPUT_DIR" default:"."`

	// BaseURL is the site to fetch input from.
	// Env: AOC_BASE_URL (default: https://adventofcode.com)
	BaseURL string `envconfig:"BASE_URL" default:"https://adventofcode.com"`

	// LogLevel is one of debug, info, warn, error.
	// Env: AOC_LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Timeout bounds a single input download.
	// Env: AOC_TIMEOUT (default: 30s)
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// FromEnv loads Config from the environment, filling in defaults that
// depend on the user's home directory.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	if cfg.SessionFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.SessionFile = filepath.Join(home, "keys", "aoc.session")
		}
	}
	return cfg, nil
}

// Load reads the .env file at path, if it exists, and then the
// environment. Variables already set in the environment win over the
// file.
func Load(path string) (Config, error) {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err == nil {
		if err := godotenv.Load(path); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return FromEnv()
}
