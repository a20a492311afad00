package formatter

import "github.com/philipp01105/routelog/core"

// ANSI escape sequences per severity. TRACE uses bright black (gray),
// which every common terminal renders distinctly from DEBUG's blue.
const (
	colorReset = "\x1b[0m"

	colorRed    = "\x1b[31m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
	colorBlue   = "\x1b[34m"
	colorGray   = "\x1b[90m"
)

// levelColors maps each severity to its escape sequence
var levelColors = [...]string{
	core.TraceLevel: colorGray,
	core.DebugLevel: colorBlue,
	core.InfoLevel:  colorGreen,
	core.WarnLevel:  colorYellow,
	core.ErrorLevel: colorRed,
}

// ConsoleFormatter formats log records for terminal output. When Color
// is enabled the severity token is wrapped in ANSI escapes; the rest
// of the line is byte-identical to TextFormatter output.
type ConsoleFormatter struct {
	Config
	// Color enables ANSI escape sequences around the severity token
	Color bool
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(cfg Config, color bool) *ConsoleFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = rfc3339Numeric
	}
	return &ConsoleFormatter{Config: cfg, Color: color}
}

// Format formats a record as a console line
func (f *ConsoleFormatter) Format(rec core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	prefix, suffix := "", ""
	if f.Color && int(rec.Level) >= 0 && int(rec.Level) < len(levelColors) {
		prefix = levelColors[rec.Level]
		suffix = colorReset
	}
	appendRecord(buf, rec, f.TimestampFormat, prefix, suffix)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}
