package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bjaus/textable"
)

const stdinArg = "-"

// buildRequest resolves the source format from the flag, the file extension
// and the config, in that order. Stdin is read as in-memory JSON.
func buildRequest(app *App, s *session, formatFlag, source string) (textable.Request, error) {
	format, err := resolveFormat(s, formatFlag, source)
	if err != nil {
		return textable.Request{}, err
	}
	if source != stdinArg {
		return textable.Request{Format: format, Path: source}, nil
	}
	if format != textable.JSON {
		return textable.Request{}, fmt.Errorf("%w: stdin input must be json, not %s", textable.ErrConfiguration, format)
	}
	data, err := io.ReadAll(app.Stdin)
	if err != nil {
		return textable.Request{}, fmt.Errorf("%w: stdin: %w", textable.ErrSourceRead, err)
	}
	return textable.Request{Format: format, Data: json.RawMessage(data)}, nil
}

func resolveFormat(s *session, formatFlag, source string) (textable.Format, error) {
	if formatFlag != "" {
		return textable.ParseFormat(formatFlag)
	}
	if source == stdinArg {
		if s.cfg.Format != "" {
			return s.cfg.Format, nil
		}
		return textable.JSON, nil
	}
	format, err := textable.FormatFromPath(source)
	if err == nil {
		return format, nil
	}
	if s.cfg.Format != "" {
		s.logger.Debug("using configured format", "path", source, "format", s.cfg.Format)
		return s.cfg.Format, nil
	}
	return "", err
}
