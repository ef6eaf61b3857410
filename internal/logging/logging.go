// Package logging wires the CLI's diagnostics to stderr through slog.
package logging

import (
	"io"
	"log/slog"
	"os"
)

type handlerType int

const (
	handlerText handlerType = iota
	handlerJSON
)

// dropTime strips the top-level timestamp from text records.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}

func setup(debug bool, w io.Writer, ht handlerType) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	switch ht {
	case handlerJSON:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level, ReplaceAttr: dropTime})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// Setup routes conversion diagnostics to w as untimed key=value lines and
// makes that logger the default. A nil w means os.Stderr; debug also emits
// the loading and config records.
func Setup(debug bool, w io.Writer) *slog.Logger {
	return setup(debug, w, handlerText)
}

// SetupJSON is the --log-json variant: timestamped JSON records for
// pipelines that collect the converter's stderr.
func SetupJSON(debug bool, w io.Writer) *slog.Logger {
	return setup(debug, w, handlerJSON)
}
