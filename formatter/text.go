package formatter

import "github.com/philipp01105/routelog/core"

// TextFormatter formats log records as plain text lines with no escape
// codes. This is the variant written to files.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = rfc3339Numeric
	}
	return &TextFormatter{Config: cfg}
}

// Format formats a record as a plain text line
func (f *TextFormatter) Format(rec core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	appendRecord(buf, rec, f.TimestampFormat, "", "")

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}
