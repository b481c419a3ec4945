package cli

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger builds the JSON logger. Verbose forces debug regardless of LogLevel.
func newLogger(cfg *Config, w io.Writer) (*slog.Logger, error) {
	level := slog.LevelWarn
	switch {
	case cfg.Verbose:
		level = slog.LevelDebug
	case cfg.LogLevel != "":
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})), nil
}
