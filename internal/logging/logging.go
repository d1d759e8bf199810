// Package logging builds the go-kit logger used by the command.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var (
	// ErrInvalidLevel is returned for an unknown level name
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrInvalidFormat is returned for an unknown format name
	ErrInvalidFormat = errors.New("invalid log format")
)

// New returns a logger writing to w in format (logfmt or json) that drops
// entries below lvl (debug, info, warn, error or none). Every entry carries
// a UTC timestamp.
func New(w io.Writer, format, lvl string) (log.Logger, error) {
	var logger log.Logger
	switch strings.ToLower(format) {
	case "", "logfmt":
		logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
	case "json":
		logger = log.NewJSONLogger(log.NewSyncWriter(w))
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}

	option, err := levelOption(lvl)
	if err != nil {
		return nil, err
	}

	logger = level.NewFilter(logger, option)
	return log.With(logger, "ts", log.DefaultTimestampUTC), nil
}

func levelOption(lvl string) (level.Option, error) {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "", "warn", "warning":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	case "none":
		return level.AllowNone(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, lvl)
	}
}
