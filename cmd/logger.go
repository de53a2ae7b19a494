package cmd

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates the logger of the application, writing to w.
func NewLogger(cfg Config, w io.Writer) zerolog.Logger {
	output := w
	if cfg.LogFormat != "json" {
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(output).
		Level(parseLevel(cfg.LogLevel)).
		With().
		Timestamp().
		Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
