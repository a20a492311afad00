package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/routelog/core"
)

// Formatter defines the interface for record formatters
type Formatter interface {
	// Format formats a log record into a complete output line,
	// including the trailing newline
	Format(rec core.Record) ([]byte, error)
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time format (empty for RFC3339
	// with a forced numeric UTC offset)
	TimestampFormat string
}

// rfc3339Numeric is RFC3339 with the offset always rendered
// numerically; UTC prints as +00:00 rather than Z, matching the
// documented line format.
const rfc3339Numeric = "2006-01-02T15:04:05-07:00"

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// appendRecord writes the shared line layout into buf. The level token
// is wrapped in prefix/suffix, which are empty for plain output and
// ANSI escapes for colored console output.
func appendRecord(buf *bytes.Buffer, rec core.Record, layout, prefix, suffix string) {
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), layout))
	buf.WriteByte('-')
	buf.WriteString(prefix)
	buf.WriteString(rec.Level.String())
	buf.WriteString(suffix)
	buf.WriteString("|[")
	buf.WriteString(rec.Category)
	buf.WriteByte(']')
	if rec.RoutingID != "" {
		buf.WriteByte('<')
		buf.WriteString(rec.RoutingID)
		buf.WriteByte('>')
	}
	buf.WriteByte(':')
	buf.WriteString(rec.Message)
	buf.WriteByte('\n')
}
