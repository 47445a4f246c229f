package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LevelDisabled turns logging off entirely.
const LevelDisabled = "disabled"

// New returns a logger writing JSON lines to the file at path, creating
// parent directories as needed. An empty path selects DefaultPath. The
// returned closer must be closed when the program exits.
//
// The terminal belongs to the UI, so logs never go to stdout or stderr.
func New(level, path string) (zerolog.Logger, io.Closer, error) {
	if strings.EqualFold(level, LevelDisabled) {
		return zerolog.Nop(), nopCloser{}, nil
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return zerolog.Nop(), nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	return NewWriter(lvl, f), f, nil
}

// NewWriter returns a timestamped logger at lvl writing to w.
func NewWriter(lvl zerolog.Level, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// ParseLevel accepts zerolog level names; empty means info.
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level %q: %w", level, err)
	}
	return lvl, nil
}

// DefaultPath resolves the log file path in priority order:
// 1. $XDG_STATE_HOME/quizgrid/quizgrid.log
// 2. ~/.local/state/quizgrid/quizgrid.log
func DefaultPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "quizgrid", "quizgrid.log"), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
