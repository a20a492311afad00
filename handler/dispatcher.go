package handler

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/routelog/core"
	"github.com/philipp01105/routelog/filecache"
	"github.com/philipp01105/routelog/formatter"
)

// Config holds configuration for the dispatcher
type Config struct {
	// ConsoleLevel is the minimum severity written to the console
	ConsoleLevel core.Level
	// FileLevel is the minimum severity written to files
	FileLevel core.Level
	// Cache is the handle cache backing the file sink (required)
	Cache *filecache.Cache
	// Console is the console sink (default: a sink on os.Stdout)
	Console *ConsoleSink
	// ErrorOutput receives reports of sink failures (default: os.Stderr)
	ErrorOutput io.Writer
	// MirrorEntityToDaily additionally appends entity-routed records
	// to the daily file, so the daily log stays a complete audit trail
	MirrorEntityToDaily bool
}

// Dispatcher routes records to the console and file sinks under
// independent severity thresholds. It is safe for concurrent use;
// all mutable state lives behind the sinks' own locks.
type Dispatcher struct {
	consoleLevel core.Level
	fileLevel    core.Level
	console      *ConsoleSink
	cache        *filecache.Cache
	consoleFmt   formatter.Formatter
	fileFmt      formatter.Formatter
	mirror       bool

	errMu  sync.Mutex
	errOut io.Writer
}

// NewDispatcher creates a dispatcher from cfg.
func NewDispatcher(cfg Config) (*Dispatcher, error) {
	if cfg.Cache == nil {
		return nil, fmt.Errorf("handler: a file handle cache is required")
	}
	if cfg.Console == nil {
		cfg.Console = NewConsoleSink(os.Stdout)
	}
	if cfg.ErrorOutput == nil {
		cfg.ErrorOutput = os.Stderr
	}

	return &Dispatcher{
		consoleLevel: cfg.ConsoleLevel,
		fileLevel:    cfg.FileLevel,
		console:      cfg.Console,
		cache:        cfg.Cache,
		consoleFmt:   formatter.NewConsoleFormatter(formatter.Config{}, cfg.Console.Color()),
		fileFmt:      formatter.NewTextFormatter(formatter.Config{}),
		mirror:       cfg.MirrorEntityToDaily,
		errOut:       cfg.ErrorOutput,
	}, nil
}

// MinLevel returns the lower of the two thresholds, i.e. the least
// severe level that reaches any sink. Facade bridges use it for their
// enabled checks.
func (d *Dispatcher) MinLevel() core.Level {
	if d.consoleLevel < d.fileLevel {
		return d.consoleLevel
	}
	return d.fileLevel
}

// Dispatch routes one record. It never returns an error: failures are
// reported on the fallback channel and the record is dropped from the
// failing sink only.
func (d *Dispatcher) Dispatch(rec core.Record) {
	if rec.Level >= d.consoleLevel {
		line, err := d.consoleFmt.Format(rec)
		if err == nil {
			err = d.console.Write(line)
		}
		if err != nil {
			d.report("console", err)
		}
	}

	if rec.Level >= d.fileLevel {
		line, err := d.fileFmt.Format(rec)
		if err != nil {
			d.report("file", err)
			return
		}

		key := core.Resolve(rec)
		if err := d.cache.Write(key, line); err != nil {
			d.report("file", err)
		}
		if d.mirror && key.IsEntity() {
			if err := d.cache.Write(core.DailyKey(rec.Time), line); err != nil {
				d.report("file", err)
			}
		}
	}
}

// Close tears down the file sink, flushing and closing all resident
// handles.
func (d *Dispatcher) Close() error {
	return d.cache.Close()
}

// report writes a sink failure to the fallback error channel. The
// failure must not reach the caller.
func (d *Dispatcher) report(sink string, err error) {
	d.errMu.Lock()
	fmt.Fprintf(d.errOut, "routelog: %s sink: %v\n", sink, err)
	d.errMu.Unlock()
}
