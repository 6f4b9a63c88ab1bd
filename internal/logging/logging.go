// Package logging builds the application's slog logger. Records go to a log
// file (the terminal belongs to the UI) and are also captured in a RingBuffer
// that the UI's warnings panel reads.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Options configures New.
type Options struct {
	Level    slog.Level
	File     string // empty discards file output
	JSON     bool
	Capacity int // ring buffer size, defaults to 200
}

const defaultCapacity = 200

// Logger bundles the slog logger with its capture buffer and output file.
type Logger struct {
	*slog.Logger
	Buffer *RingBuffer
	closer io.Closer
}

// New opens the log file (creating parent directories) and returns a logger
// that writes to it and to a fresh RingBuffer.
func New(opts Options) (*Logger, error) {
	out := io.Discard
	var closer io.Closer
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}
	l := NewWithWriter(out, opts)
	l.closer = closer
	return l, nil
}

// NewWithWriter is New with an explicit output writer.
func NewWithWriter(w io.Writer, opts Options) *Logger {
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	buffer := NewRingBuffer(capacity)

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}
	var file slog.Handler
	if opts.JSON {
		file = slog.NewJSONHandler(w, handlerOpts)
	} else {
		file = slog.NewTextHandler(w, handlerOpts)
	}

	return &Logger{
		Logger: slog.New(teeHandler{file, newBufferHandler(buffer, opts.Level)}),
		Buffer: buffer,
	}
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// teeHandler fans records out to several handlers.
type teeHandler []slog.Handler

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithGroup(name)
	}
	return out
}
