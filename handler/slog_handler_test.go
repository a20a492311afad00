package handler

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipp01105/routelog/core"
)

func TestSlogHandler_RoutesUUIDAttr(t *testing.T) {
	d, dir, _, _ := newTestDispatcher(t, Config{
		ConsoleLevel: core.ErrorLevel,
		FileLevel:    core.DebugLevel,
	})

	log := slog.New(NewSlogHandler(d))
	log.Info("order started", CategoryKey, "orders", UUIDKey, "abc-123")

	data, err := os.ReadFile(filepath.Join(dir, "order_abc-123.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "INFO|[orders]<abc-123>:order started") {
		t.Errorf("unexpected line: %q", data)
	}
}

func TestSlogHandler_DailyWithoutUUID(t *testing.T) {
	d, dir, _, _ := newTestDispatcher(t, Config{
		ConsoleLevel: core.ErrorLevel,
		FileLevel:    core.DebugLevel,
	})

	log := slog.New(NewSlogHandler(d))
	log.Warn("plain message", CategoryKey, "ui")

	matches, err := filepath.Glob(filepath.Join(dir, "log_*.log"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("daily files = %v (err %v), want exactly one", matches, err)
	}
	data, _ := os.ReadFile(matches[0])
	if !strings.Contains(string(data), "WARN|[ui]:plain message") {
		t.Errorf("unexpected line: %q", data)
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	d, dir, _, _ := newTestDispatcher(t, Config{
		ConsoleLevel: core.ErrorLevel,
		FileLevel:    core.DebugLevel,
	})

	log := slog.New(NewSlogHandler(d)).WithGroup("payment").With(UUIDKey, "pay-1")
	log.Info("charged")

	data, err := os.ReadFile(filepath.Join(dir, "order_pay-1.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[payment]<pay-1>:charged") {
		t.Errorf("unexpected line: %q", data)
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	d, _, _, _ := newTestDispatcher(t, Config{
		ConsoleLevel: core.WarnLevel,
		FileLevel:    core.InfoLevel,
	})

	h := NewSlogHandler(d)
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug enabled although both thresholds are higher")
	}
	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info disabled although the file threshold admits it")
	}
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want core.Level
	}{
		{LevelTrace, core.TraceLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogLevelToCore(tt.in); got != tt.want {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
