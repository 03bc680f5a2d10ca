// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Prefix is prepended to every text-formatted record.
const Prefix = "orosu-launcher"

// RunIDKey is the attribute carrying the correlation id.
const RunIDKey = "run"

// ErrUnknownFormat is returned for a format other than text, json or logfmt.
var ErrUnknownFormat = errors.New("unknown log format")

// New returns a logger writing to w at the given level ("debug", "info",
// "warn", "error") in the given format ("text", "json", "logfmt").
func New(w io.Writer, level, format string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var formatter log.Formatter
	switch strings.ToLower(format) {
	case "", "text":
		formatter = log.TextFormatter
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           lvl,
		Formatter:       formatter,
		ReportTimestamp: formatter != log.TextFormatter,
	}), nil
}

// NewRunID returns a fresh correlation id for one launcher run.
func NewRunID() string {
	return uuid.NewString()
}

// Install makes l the slog default with runID attached to every record and
// returns the resulting slog logger.
func Install(l *log.Logger, runID string) *slog.Logger {
	sl := slog.New(l).With(RunIDKey, runID)
	slog.SetDefault(sl)
	return sl
}
