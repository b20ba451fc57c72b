package shared

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// NewLogger builds a zerolog logger writing to w. Format is "console"
// (default) or "json"; level is any zerolog level name and defaults to info.
func NewLogger(w io.Writer, level string, format string) (zerolog.Logger, error) {
	parsedLevel := zerolog.InfoLevel
	if strings.TrimSpace(level) != "" {
		var err error
		parsedLevel, err = zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}

	output := w
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", LogFormatConsole:
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	case LogFormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", format)
	}

	return zerolog.New(output).Level(parsedLevel).With().Timestamp().Logger(), nil
}
