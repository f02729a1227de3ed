package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/MatusOllah/slogcolor"
	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// New returns a colourised slog logger writing to w.
func New(w io.Writer, debug bool) *slog.Logger {
	opts := *slogcolor.DefaultOptions
	opts.MsgColor = color.New(color.FgMagenta)
	opts.SrcFileMode = slogcolor.Nop
	if debug {
		opts.Level = slog.LevelDebug
	} else {
		opts.Level = slog.LevelInfo
	}
	return slog.New(slogcolor.NewHandler(w, &opts))
}

// NewFile opens (appending) the log file under dir and returns a logger on
// it. The TUI owns the terminal, so interactive sessions log here instead of
// stderr. Close the returned file when done.
func NewFile(dir string, debug bool) (*slog.Logger, *os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, errors.Wrap(err, "create log directory")
	}
	f, err := os.OpenFile(filepath.Join(dir, "tenis-grupos.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file")
	}
	return New(f, debug), f, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
