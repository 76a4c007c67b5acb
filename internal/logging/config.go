// Package logging configures the zerolog logger shared by the command line
// tools. Diagnostics go to stderr so they never mix with tool output on
// stdout.
package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

const (
	EnvLogLevel   = "ASCII_LOG_LEVEL"
	EnvLogNoColor = "ASCII_LOG_NOCOLOR"
)

var (
	setupOnce sync.Once
	logger    zerolog.Logger
)

// Setup initializes the shared logger for the named tool and returns it.
// The default level is warn, raised to debug when verbose is set; the
// ASCII_LOG_LEVEL and ASCII_LOG_NOCOLOR environment variables override
// both defaults. Only the first call configures anything, later calls
// return the same logger.
func Setup(app string, verbose bool) zerolog.Logger {
	setupOnce.Do(func() {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
			level = lvl
		}
		noColor := !isatty.IsTerminal(os.Stderr.Fd())
		if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
			noColor = v
		}
		output := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    noColor,
		}
		logger = zerolog.New(output).Level(level).With().Timestamp().Str("app", app).Logger()
	})
	return logger
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.NoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.NoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
