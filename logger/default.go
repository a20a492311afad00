package logger

import (
	"errors"
	"sync"
)

// ErrAlreadySetup is reported when Setup is called a second time while
// the first sink is still active.
var ErrAlreadySetup = errors.New("logger: already set up")

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// Setup wires the process-wide sink: records at or above consoleLevel
// reach stdout, records at or above fileLevel reach files under
// basePath. It must be called once; a second call fails with
// ErrAlreadySetup and leaves the existing sink untouched.
func Setup(consoleLevel, fileLevel Level, basePath string) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLogger != nil {
		return ErrAlreadySetup
	}

	l, err := New(Config{
		ConsoleLevel: consoleLevel,
		FileLevel:    fileLevel,
		BasePath:     basePath,
	})
	if err != nil {
		return err
	}
	defaultLogger = l
	return nil
}

// Close tears down the process-wide sink, flushing and closing all
// open file handles. After Close, Setup may be called again, which
// tests rely on. Calling Close without a prior Setup is a no-op.
func Close() error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLogger == nil {
		return nil
	}
	err := defaultLogger.Close()
	defaultLogger = nil
	return err
}

// Default returns the process-wide logger, or nil before Setup.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Package-level convenience functions using the default logger.
// They are silent no-ops before Setup: a logging call must never be
// the thing that crashes the host application.

// Trace logs a trace message using the default logger
func Trace(category, msg string) {
	if l := Default(); l != nil {
		l.Trace(category, msg)
	}
}

// Debug logs a debug message using the default logger
func Debug(category, msg string) {
	if l := Default(); l != nil {
		l.Debug(category, msg)
	}
}

// Info logs an info message using the default logger
func Info(category, msg string) {
	if l := Default(); l != nil {
		l.Info(category, msg)
	}
}

// Warn logs a warning message using the default logger
func Warn(category, msg string) {
	if l := Default(); l != nil {
		l.Warn(category, msg)
	}
}

// Error logs an error message using the default logger
func Error(category, msg string) {
	if l := Default(); l != nil {
		l.Error(category, msg)
	}
}

// WithOrder returns a child of the default logger carrying the given
// routing identifier, or nil before Setup.
func WithOrder(id string) *Logger {
	if l := Default(); l != nil {
		return l.WithOrder(id)
	}
	return nil
}
