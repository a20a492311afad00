package handler

import (
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/routelog/core"
)

// ZapCore adapts a Dispatcher to zapcore.Core, so zap-based
// applications can use the sink without changing their call sites:
//
//	log := zap.New(handler.NewZapCore(d)).Named("orders")
//	log.Info("order started", zap.String("uuid", id))
//
// The zap logger name becomes the record category; the "uuid" and
// "category" string fields follow the same conventions as the slog
// bridge. Other fields are dropped, as the wire format has no place
// for them.
type ZapCore struct {
	dispatcher *Dispatcher
	category   string
	routingID  string
}

// NewZapCore creates a zapcore.Core adapter around d.
func NewZapCore(d *Dispatcher) *ZapCore {
	return &ZapCore{dispatcher: d}
}

// Enabled reports whether entries at the given level reach any sink.
func (c *ZapCore) Enabled(level zapcore.Level) bool {
	return zapLevelToCore(level) >= c.dispatcher.MinLevel()
}

// With pre-binds the recognized fields.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	nc := *c
	nc.apply(fields)
	return &nc
}

// Check determines whether the entry should be logged.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the entry into a core.Record and dispatches it.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	nc := *c
	nc.apply(fields)

	category := nc.category
	if ent.LoggerName != "" {
		category = ent.LoggerName
	}
	if category == "" {
		category = DefaultCategory
	}

	nc.dispatcher.Dispatch(core.Record{
		Time:      ent.Time,
		Level:     zapLevelToCore(ent.Level),
		Message:   ent.Message,
		Category:  category,
		RoutingID: nc.routingID,
	})
	return nil
}

// Sync is a no-op: the file sink flushes after every write.
func (c *ZapCore) Sync() error {
	return nil
}

// apply folds recognized string fields into the core's bindings.
func (c *ZapCore) apply(fields []zapcore.Field) {
	for _, f := range fields {
		if f.Type != zapcore.StringType {
			continue
		}
		switch f.Key {
		case UUIDKey:
			c.routingID = f.String
		case CategoryKey:
			c.category = f.String
		}
	}
}

// zapLevelToCore converts a zapcore.Level to a core.Level. Zap has no
// trace level; everything at or above Error (including DPanic, Panic,
// and Fatal) maps to ERROR.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level >= zapcore.WarnLevel:
		return core.WarnLevel
	case level >= zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
