// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports"
	"golang.org/x/term"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// metadataer matches the Metadata() method provided by zerr.Error.
type metadataer interface {
	Metadata() map[string]any
}

// sink holds the handler shared by a logger and everything derived from it via With.
type sink struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	jsonMode bool
	output   io.Writer
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	sink  *sink
	attrs []any
}

var _ ports.Logger = (*Logger)(nil)

// New creates a new Logger writing pretty output to stderr.
func New() *Logger {
	s := &sink{output: os.Stderr}
	s.rebuild()
	return &Logger{sink: s}
}

// rebuild replaces the handler. Callers must hold s.mu or own s exclusively.
func (s *sink) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if s.jsonMode {
		handler = slog.NewJSONHandler(s.output, opts)
	} else {
		handler = NewPrettyHandler(s.output, opts)
	}
	s.logger = slog.New(handler)
}

// SetOutput updates the logger's output destination.
// It preserves the current JSON mode setting.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.sink.output = w
	l.sink.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	l.sink.jsonMode = enable
	l.sink.rebuild()
}

// SetFormat applies a configured log format. LogFormatAuto selects JSON
// unless the current output is a terminal.
func (l *Logger) SetFormat(format domain.LogFormat) {
	l.sink.mu.RLock()
	w := l.sink.output
	l.sink.mu.RUnlock()

	switch format {
	case domain.LogFormatJSON:
		l.SetJSON(true)
	case domain.LogFormatPretty:
		l.SetJSON(false)
	default:
		l.SetJSON(!isTerminal(w))
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int on supported platforms
}

// With returns a logger that adds attrs to every entry.
func (l *Logger) With(attrs ...any) ports.Logger {
	merged := make([]any, 0, len(l.attrs)+len(attrs))
	merged = append(merged, l.attrs...)
	merged = append(merged, attrs...)
	return &Logger{sink: l.sink, attrs: merged}
}

// Info logs an informational message.
func (l *Logger) Info(msg string, attrs ...any) {
	l.sink.mu.RLock()
	defer l.sink.mu.RUnlock()
	l.sink.logger.Info(msg, l.args(attrs)...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, attrs ...any) {
	l.sink.mu.RLock()
	defer l.sink.mu.RUnlock()
	l.sink.logger.Warn(msg, l.args(attrs)...)
}

func (l *Logger) args(attrs []any) []any {
	if len(l.attrs) == 0 {
		return attrs
	}
	out := make([]any, 0, len(l.attrs)+len(attrs))
	out = append(out, l.attrs...)
	return append(out, attrs...)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.sink.mu.RLock()
	defer l.sink.mu.RUnlock()

	if l.sink.jsonMode {
		l.sink.logger.Error("operation failed", l.args([]any{"error", err})...)
		return
	}

	l.sink.logger.Error(formatErrorEntries(collectErrorEntries(err)), l.attrs...)
}

// errorEntry is one level of an error chain.
type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the chain while errors report their own message.
// The first error that does not is appended with its full text and ends the walk.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any
	current := err

	for current != nil {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), metadata: pending})
			break
		}

		var meta map[string]any
		if md, ok := current.(metadataer); ok {
			meta = md.Metadata()
		}

		if m.Message() == "" {
			// zerr.With on a plain error adds an empty wrapper; fold its metadata forward.
			pending = mergeMetadata(pending, meta)
			current = errors.Unwrap(current)
			continue
		}

		entries = append(entries, errorEntry{message: m.Message(), metadata: mergeMetadata(meta, pending)})
		pending = nil
		current = errors.Unwrap(current)
	}

	return entries
}

func mergeMetadata(a, b map[string]any) map[string]any {
	if len(b) == 0 {
		return a
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// formatErrorEntries renders the chain as "Error: ..." followed by its causes.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.message, "\n")
		msgLines[0] += formatMetadata(entry.metadata)

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(meta map[string]any) string {
	if len(meta) == 0 {
		return ""
	}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, meta[k]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
