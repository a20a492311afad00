// Package formatter serializes log records into output lines.
//
// Both sinks share one fixed wire format, chosen for compatibility
// with tooling that parses the log files:
//
//	{RFC3339 timestamp}-{LEVEL}|[{category}]<{routing-id}>:{message}
//
// The <routing-id> segment is omitted, brackets included, when the
// record carries no routing identifier. The timestamp always uses a
// numeric UTC offset (never the "Z" shorthand).
//
// TextFormatter produces the plain variant written to files.
// ConsoleFormatter wraps the severity token in ANSI color escapes for
// terminals; everything else on the line stays identical so console
// and file output remain diffable.
//
// Formatters use a pooled bytes.Buffer internally and rely on Go's
// Append-style functions (time.AppendFormat) to avoid per-call
// allocations. Buffers larger than 64 KiB are not returned to the
// pool to prevent a single large log line from permanently inflating
// memory usage.
package formatter
