package handler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/routelog/core"
)

// Attribute keys the bridges recognize on incoming records.
const (
	// UUIDKey carries the routing identifier (observed convention)
	UUIDKey = "uuid"
	// CategoryKey carries the target category
	CategoryKey = "category"
)

// DefaultCategory is used when a facade record names no category.
const DefaultCategory = "app"

// LevelTrace is the slog level the sink maps to TRACE; log/slog has no
// trace constant of its own.
const LevelTrace = slog.LevelDebug - 4

// SlogHandler adapts a Dispatcher to slog.Handler, so the standard
// library facade can deliver records into the sink:
//
//	slog.SetDefault(slog.New(handler.NewSlogHandler(d)))
//	slog.Info("order started", "category", "orders", "uuid", id)
type SlogHandler struct {
	dispatcher *Dispatcher
	category   string
	routingID  string
}

// NewSlogHandler creates a slog.Handler adapter around d.
func NewSlogHandler(d *Dispatcher) *SlogHandler {
	return &SlogHandler{dispatcher: d}
}

// Enabled reports whether records at the given level reach any sink.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= h.dispatcher.MinLevel()
}

// Handle converts a slog.Record into a core.Record and dispatches it.
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	rec := core.Record{
		Time:      record.Time,
		Level:     slogLevelToCore(record.Level),
		Message:   record.Message,
		Category:  h.category,
		RoutingID: h.routingID,
	}

	record.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case UUIDKey:
			rec.RoutingID = a.Value.String()
		case CategoryKey:
			rec.Category = a.Value.String()
		}
		return true
	})

	if rec.Category == "" {
		rec.Category = DefaultCategory
	}

	h.dispatcher.Dispatch(rec)
	return nil
}

// WithAttrs returns a handler that pre-binds the recognized attributes.
// Unrecognized attributes are dropped: the wire format has no place
// for free-form fields.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	for _, a := range attrs {
		switch a.Key {
		case UUIDKey:
			nh.routingID = a.Value.String()
		case CategoryKey:
			nh.category = a.Value.String()
		}
	}
	return &nh
}

// WithGroup uses the group name as the category when none is bound,
// which matches how callers typically group by subsystem.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" || h.category != "" {
		return h
	}
	nh := *h
	nh.category = name
	return &nh
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
