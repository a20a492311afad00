package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/philipp01105/routelog/core"
	"github.com/philipp01105/routelog/filecache"
	"github.com/philipp01105/routelog/handler"
)

// Config holds configuration for a Logger
type Config struct {
	// ConsoleLevel is the minimum severity written to the console
	ConsoleLevel Level
	// FileLevel is the minimum severity written to files
	FileLevel Level
	// BasePath is the directory log files are written to (required)
	BasePath string
	// CacheCapacity is the maximum number of open file handles
	// (default: filecache.DefaultCapacity)
	CacheCapacity int
	// MaxSizeMB enables size-based rotation of individual files when > 0
	MaxSizeMB int
	// MaxBackups limits rotated files kept per log when rotation is on
	MaxBackups int
	// ConsoleWriter overrides the console stream (default: os.Stdout)
	ConsoleWriter io.Writer
	// ErrorOutput receives sink failure reports (default: os.Stderr)
	ErrorOutput io.Writer
	// MirrorEntityToDaily also appends order-routed records to the
	// daily file, keeping it a complete audit trail
	MirrorEntityToDaily bool
}

// Logger is an immutable handle on the sink. Child loggers created by
// WithOrder and WithCategory share the parent's dispatcher.
type Logger struct {
	dispatcher *handler.Dispatcher
	category   string
	routingID  string
}

// New creates an independent Logger from cfg.
func New(cfg Config) (*Logger, error) {
	if cfg.BasePath == "" {
		return nil, fmt.Errorf("logger: base path is required")
	}

	cache, err := filecache.New(filecache.Config{
		BaseDir:    cfg.BasePath,
		Capacity:   cfg.CacheCapacity,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	})
	if err != nil {
		return nil, err
	}

	console := handler.NewConsoleSink(cfg.ConsoleWriter)
	d, err := handler.NewDispatcher(handler.Config{
		ConsoleLevel:        cfg.ConsoleLevel,
		FileLevel:           cfg.FileLevel,
		Cache:               cache,
		Console:             console,
		ErrorOutput:         cfg.ErrorOutput,
		MirrorEntityToDaily: cfg.MirrorEntityToDaily,
	})
	if err != nil {
		return nil, err
	}

	return &Logger{dispatcher: d, category: handler.DefaultCategory}, nil
}

// Dispatcher exposes the underlying dispatcher for facade bridges:
//
//	slog.SetDefault(slog.New(handler.NewSlogHandler(log.Dispatcher())))
func (l *Logger) Dispatcher() *handler.Dispatcher {
	return l.dispatcher
}

// WithCategory returns a child logger whose records carry the given
// target category.
func (l *Logger) WithCategory(category string) *Logger {
	if l == nil {
		return nil
	}
	nl := *l
	nl.category = category
	return &nl
}

// WithOrder returns a child logger whose records carry the given
// routing identifier and are routed to order_{id}.log.
func (l *Logger) WithOrder(id string) *Logger {
	if l == nil {
		return nil
	}
	nl := *l
	nl.routingID = id
	return &nl
}

// Log dispatches a message at the specified level under the given
// category. A nil receiver is a no-op so that chains off an unset
// default logger cannot crash the host.
func (l *Logger) Log(level Level, category, msg string) {
	if l == nil || l.dispatcher == nil {
		return
	}
	l.dispatcher.Dispatch(core.Record{
		Time:      time.Now(),
		Level:     level,
		Message:   msg,
		Category:  category,
		RoutingID: l.routingID,
	})
}

// Trace logs a trace message
func (l *Logger) Trace(category, msg string) { l.Log(TraceLevel, category, msg) }

// Debug logs a debug message
func (l *Logger) Debug(category, msg string) { l.Log(DebugLevel, category, msg) }

// Info logs an info message
func (l *Logger) Info(category, msg string) { l.Log(InfoLevel, category, msg) }

// Warn logs a warning message
func (l *Logger) Warn(category, msg string) { l.Log(WarnLevel, category, msg) }

// Error logs an error message
func (l *Logger) Error(category, msg string) { l.Log(ErrorLevel, category, msg) }

// Tracef logs a formatted trace message under the logger's category
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.Log(TraceLevel, l.category, fmt.Sprintf(format, args...))
}

// Debugf logs a formatted debug message under the logger's category
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Log(DebugLevel, l.category, fmt.Sprintf(format, args...))
}

// Infof logs a formatted info message under the logger's category
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Log(InfoLevel, l.category, fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning message under the logger's category
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Log(WarnLevel, l.category, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message under the logger's category
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Log(ErrorLevel, l.category, fmt.Sprintf(format, args...))
}

// Close flushes and closes all open file handles. The console stream
// is left untouched.
func (l *Logger) Close() error {
	if l == nil || l.dispatcher == nil {
		return nil
	}
	return l.dispatcher.Close()
}
