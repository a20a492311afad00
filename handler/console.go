package handler

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// ConsoleSink writes formatted lines to a terminal or any io.Writer.
// Writes are serialized so lines from concurrent callers never
// interleave, independently of the file path's locking.
type ConsoleSink struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

// NewConsoleSink creates a console sink for w (default: os.Stdout).
// Color is enabled only when w is a color-capable terminal.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}

	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return &ConsoleSink{w: w, color: color}
}

// Color reports whether the sink's writer accepts ANSI escapes.
func (s *ConsoleSink) Color() bool {
	return s.color
}

// Write writes one complete line.
func (s *ConsoleSink) Write(line []byte) error {
	s.mu.Lock()
	_, err := s.w.Write(line)
	s.mu.Unlock()
	return err
}
