package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var errParsingConfig = errors.New("failed to parse environment variables into config")

type config struct {
	PIN               string     `env:"DOORLOCK_PIN" envDefault:"1234"`
	StrictTransitions bool       `env:"DOORLOCK_STRICT_TRANSITIONS" envDefault:"false"`
	PrintGraph        bool       `env:"DOORLOCK_PRINT_GRAPH" envDefault:"false"`
	LogLevel          slog.Level `env:"DOORLOCK_LOG_LEVEL" envDefault:"warn"`
	LogFormat         string     `env:"DOORLOCK_LOG_FORMAT" envDefault:"text"`
}

// loadConfig parses the process environment, falling back to values from
// the given env files (.env when none are given). Missing files are ignored.
// The process environment itself is never modified.
func loadConfig(files ...string) (config, error) {
	var cfg config

	environ := env.ToMap(os.Environ())
	fileVars, err := godotenv.Read(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("read env file: %w", err)
	}
	for k, v := range fileVars {
		if _, ok := environ[k]; !ok {
			environ[k] = v
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, errors.Join(errParsingConfig, err)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return cfg, fmt.Errorf("invalid log format %q: must be %q or %q", cfg.LogFormat, "text", "json")
	}
	return cfg, nil
}

func newLogger(cfg config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
