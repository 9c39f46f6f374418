// Package cloudlog implements an slog.Handler emitting Google Cloud's
// structured JSON logging format, so a generator run's diagnostics land
// in Cloud Logging severity buckets when deployed there.
package cloudlog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"
)

// Handler writes log records as Google Cloud structured JSON entries.
type Handler struct {
	writer     io.Writer
	level      slog.Level
	extraAttrs map[string]interface{}
}

// New builds a Handler writing to w at the given minimum level.
func New(w io.Writer, level slog.Level) *Handler {
	return &Handler{writer: w, level: level}
}

// Enabled reports whether level passes the handler's minimum.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle writes r as one Cloud Logging JSON entry.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	attrs := map[string]interface{}{}
	r.Attrs(func(attr slog.Attr) bool {
		attrs[attr.Key] = attr.Value.Any()
		return true
	})
	for k, v := range h.extraAttrs {
		attrs[k] = v
	}

	entry := map[string]interface{}{
		"severity": severity(r.Level),
		"message":  r.Message,
		"time":     time.Now().Format(time.RFC3339Nano),
	}
	for k, v := range attrs {
		entry[k] = v
	}

	return json.NewEncoder(h.writer).Encode(entry)
}

// WithAttrs returns a copy of h carrying the additional attrs on every
// subsequent entry.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.extraAttrs = make(map[string]interface{}, len(h.extraAttrs)+len(attrs))
	for k, v := range h.extraAttrs {
		next.extraAttrs[k] = v
	}
	for _, a := range attrs {
		next.extraAttrs[a.Key] = a.Value.Any()
	}
	return &next
}

// WithGroup is a no-op: Cloud Logging entries are flat, so groups collapse
// into the same attribute map.
func (h *Handler) WithGroup(_ string) slog.Handler {
	return h
}

func severity(level slog.Level) string {
	switch level {
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARNING"
	case slog.LevelError:
		return "ERROR"
	case slog.LevelDebug:
		return "DEBUG"
	default:
		return "DEFAULT"
	}
}
