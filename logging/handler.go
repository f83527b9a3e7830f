package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// bracketHandler is a slog.Handler that formats records as:
// [name] [LEVEL] message key=value key=value
type bracketHandler struct {
	w     io.Writer
	name  string
	level slog.Leveler
	attrs []slog.Attr
	mu    *sync.Mutex
}

func newBracketHandler(w io.Writer, name string, level slog.Leveler, mu *sync.Mutex) *bracketHandler {
	return &bracketHandler{
		w:     w,
		name:  name,
		level: level,
		mu:    mu,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *bracketHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the log record.
func (h *bracketHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	buf.WriteString("[")
	buf.WriteString(h.name)
	buf.WriteString("] [")
	buf.WriteString(r.Level.String())
	buf.WriteString("] ")
	buf.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&buf, a)
		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

// WithAttrs returns a new handler with the given attributes added.
func (h *bracketHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newAttrs = append(newAttrs, h.attrs...)
	newAttrs = append(newAttrs, attrs...)

	return &bracketHandler{
		w:     h.w,
		name:  h.name,
		level: h.level,
		attrs: newAttrs,
		mu:    h.mu,
	}
}

// WithGroup is a no-op, the bracket format has no notion of groups.
func (h *bracketHandler) WithGroup(_ string) slog.Handler {
	return h
}

func writeAttr(buf *bytes.Buffer, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}

	_, _ = fmt.Fprintf(buf, " %s=%s", a.Key, a.Value.Resolve().String())
}
