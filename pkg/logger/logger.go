package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config selects output format and level.
type Config struct {
	Env   string // development -> console; anything else -> JSON
	Level string // trace, debug, info, warn, error
	Name  string
}

// New builds the service logger and installs it as zerolog's global logger.
func New(cfg Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

func NewWithWriter(cfg Config, out io.Writer) zerolog.Logger {
	w := out
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: out, NoColor: out != os.Stdout}
	}

	ctx := zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp()
	if cfg.Name != "" {
		ctx = ctx.Str("service", cfg.Name)
	}
	zl := ctx.Logger()
	log.Logger = zl
	return zl
}

// ParseLevel maps a configured level name; unknown names mean info.
func ParseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
