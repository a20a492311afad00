package handler

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestConsoleSink_NoColorForBuffer(t *testing.T) {
	s := NewConsoleSink(&bytes.Buffer{})
	if s.Color() {
		t.Error("a plain buffer was detected as a color-capable terminal")
	}
}

func TestConsoleSink_DefaultsToStdout(t *testing.T) {
	s := NewConsoleSink(nil)
	if s.w == nil {
		t.Error("nil writer was not replaced with a default")
	}
}

// lockedBuffer records every chunk it receives, so interleaved sink
// writes show up as malformed lines.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func TestConsoleSink_SerializedWrites(t *testing.T) {
	buf := &lockedBuffer{}
	s := NewConsoleSink(buf)

	const threads = 8
	const perThread = 100

	var wg sync.WaitGroup
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perThread; j++ {
				line := fmt.Sprintf("begin %d-%d end\n", id, j)
				if err := s.Write([]byte(line)); err != nil {
					t.Errorf("Write: %v", err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.buf.String(), "\n"), "\n")
	if len(lines) != threads*perThread {
		t.Fatalf("got %d lines, want %d", len(lines), threads*perThread)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "begin ") || !strings.HasSuffix(line, " end") {
			t.Errorf("interleaved line: %q", line)
		}
	}
}
