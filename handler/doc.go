// Package handler dispatches log records to their sinks.
//
// The Dispatcher is the single inbound entry point of the sink: it
// applies two independent severity thresholds, one for the console and
// one for files, formats the record once per sink, and routes the file
// line through the handle cache. A record may therefore reach the
// console, a file, both, or neither. Both sinks are written
// synchronously on the caller's goroutine; the only blocking points
// are per-sink serialization and the filesystem itself.
//
// Dispatch never returns an error and never panics: sink failures are
// reported on a fallback error channel (stderr by default) and the
// offending record is dropped from the failing sink only. A logging
// library must not become a source of crashes in its host.
//
// Facade bridges deliver records from external logging APIs:
//
//   - SlogHandler adapts the Dispatcher to log/slog.Handler, extracting
//     the routing identifier from the conventional "uuid" attribute.
//   - ZapCore adapts the Dispatcher to zapcore.Core for zap-based
//     applications, following the same field conventions.
package handler
