// Package logging configures the process logger. The terminal belongs to
// the game, so records go to a rotating file.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options for New
type Options struct {
	File       string // Empty discards all records
	Level      string
	MaxSizeMB  int
	MaxBackups int
}

// ParseLevel maps debug, info, warn and error to slog levels
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "log level %q", s)
	}
	return level, nil
}

// New builds a JSON logger writing to a rotating file. The returned closer
// flushes and closes the file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	if opts.File == "" {
		return NewWriter(io.Discard, level), nopCloser{}, nil
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 10
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = 3
	}
	w := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}
	return NewWriter(w, level), w, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewWriter builds a JSON logger on w
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
