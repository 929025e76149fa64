package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var global *zerolog.Logger

// Init configures the global zerolog logger. level is one of "trace",
// "debug", "info", "warn", "error"; anything else falls back to info.
// When file is non-empty, log lines go to the file as well as stdout.
func Init(level string, file string) error {
	logLevel := parseLevel(level)

	var output io.Writer = os.Stdout

	if file != "" {
		fileWriter, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		output = io.MultiWriter(os.Stdout, fileWriter)
	}

	logger := log.Output(zerolog.ConsoleWriter{Out: output, TimeFormat: "2006-01-02 15:04:05"}).
		With().Timestamp().Logger().Level(logLevel)

	global = &logger
	return nil
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
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

// Get returns the global logger. Before Init it returns a logger that
// discards everything, so library code can log unconditionally.
func Get() *zerolog.Logger {
	if global == nil {
		logger := zerolog.New(io.Discard)
		global = &logger
	}
	return global
}
