package filecache

import (
	"bufio"
	"container/list"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/philipp01105/routelog/core"
)

// DefaultCapacity is the number of resident handles when Config leaves
// Capacity unset.
const DefaultCapacity = 32

// ErrClosed is returned by Write after the cache has been closed.
var ErrClosed = errors.New("filecache: cache is closed")

// Config holds configuration for the handle cache
type Config struct {
	// BaseDir is the directory all log files live in. It is created
	// on first use if missing.
	BaseDir string
	// Capacity is the maximum number of resident handles (default: 32)
	Capacity int
	// MaxSizeMB enables size-based rotation of individual log files
	// via lumberjack when > 0 (default: off, plain append files)
	MaxSizeMB int
	// MaxBackups is the number of rotated files lumberjack retains
	// per log file (0 = keep all); only used when MaxSizeMB > 0
	MaxBackups int
}

// lineWriter is the cache's view of one open log file.
type lineWriter interface {
	Write(p []byte) (int, error)
	Flush() error
	Close() error
}

// entry is one resident handle. mu serializes writes to the file and
// orders them against eviction; closed marks an evicted entry so a
// writer that raced the evictor knows to reacquire.
type entry struct {
	mu     sync.Mutex
	w      lineWriter
	elem   *list.Element
	closed bool
}

// Cache is a bounded, concurrency-safe pool of open append-mode file
// handles keyed by RoutingKey, with least-recently-used eviction.
type Cache struct {
	baseDir    string
	capacity   int
	maxSizeMB  int
	maxBackups int

	evictions atomic.Uint64

	mu     sync.Mutex // structural: guards files, order, closed
	files  map[core.RoutingKey]*entry
	order  *list.List // element values are RoutingKeys; front = LRU
	closed bool
}

// New creates a handle cache rooted at cfg.BaseDir. The directory is
// not touched until the first write.
func New(cfg Config) (*Cache, error) {
	if cfg.BaseDir == "" {
		return nil, fmt.Errorf("filecache: base directory is required")
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}

	return &Cache{
		baseDir:    cfg.BaseDir,
		capacity:   cfg.Capacity,
		maxSizeMB:  cfg.MaxSizeMB,
		maxBackups: cfg.MaxBackups,
		files:      make(map[core.RoutingKey]*entry, cfg.Capacity),
		order:      list.New(),
	}, nil
}

// PathFor returns the filesystem path a key resolves to.
func (c *Cache) PathFor(key core.RoutingKey) string {
	return filepath.Join(c.baseDir, FileName(key))
}

// Len returns the number of resident handles.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.files)
}

// Evictions returns the total number of handles evicted since the
// cache was created.
func (c *Cache) Evictions() uint64 {
	return c.evictions.Load()
}

// Write appends line to the file the key resolves to, opening the
// handle (and evicting the least-recently-used one if the cache is
// full) as needed, and flushes. The line must already carry its
// terminator. Writes to the same key are serialized; writes to
// distinct resident keys proceed in parallel.
func (c *Cache) Write(key core.RoutingKey, line []byte) error {
	for {
		e, err := c.acquire(key)
		if err != nil {
			return err
		}

		e.mu.Lock()
		if e.closed {
			// Evicted between lookup and lock; reacquire a fresh handle.
			e.mu.Unlock()
			continue
		}
		_, err = e.w.Write(line)
		if err == nil {
			err = e.w.Flush()
		}
		e.mu.Unlock()
		return err
	}
}

// acquire returns the resident entry for key, opening and inserting it
// first when absent. On insertion at capacity, the LRU entry is
// removed from the structures under the structural lock and closed
// after it is released, under the victim's own write lock.
func (c *Cache) acquire(key core.RoutingKey) (*entry, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}

	if e, ok := c.files[key]; ok {
		c.order.MoveToBack(e.elem)
		c.mu.Unlock()
		return e, nil
	}

	// Open before touching the structures so a failed open leaves the
	// cache exactly as it was.
	w, err := c.open(key)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}

	var victim *entry
	if len(c.files) >= c.capacity {
		oldest := c.order.Front()
		victimKey := oldest.Value.(core.RoutingKey)
		victim = c.files[victimKey]
		delete(c.files, victimKey)
		c.order.Remove(oldest)
	}

	e := &entry{w: w}
	e.elem = c.order.PushBack(key)
	c.files[key] = e
	c.mu.Unlock()

	if victim != nil {
		// Taking the victim's write lock lets any in-flight write to
		// it finish before the handle is closed.
		victim.mu.Lock()
		victim.closed = true
		_ = victim.w.Flush()
		_ = victim.w.Close()
		victim.mu.Unlock()
		c.evictions.Add(1)
	}

	return e, nil
}

// open creates the base directory if needed and opens the key's file
// in append mode.
func (c *Cache) open(key core.RoutingKey) (lineWriter, error) {
	if err := os.MkdirAll(c.baseDir, 0755); err != nil {
		return nil, fmt.Errorf("filecache: create base directory: %w", err)
	}

	path := c.PathFor(key)

	if c.maxSizeMB > 0 {
		return &rotatingFile{lj: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    c.maxSizeMB,
			MaxBackups: c.maxBackups,
		}}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("filecache: open %s: %w", path, err)
	}
	return &appendFile{f: f, bw: bufio.NewWriterSize(f, 1024)}, nil
}

// Close flushes and closes every resident handle. The cache rejects
// all writes afterwards. Safe to call more than once.
func (c *Cache) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	entries := make([]*entry, 0, len(c.files))
	for _, e := range c.files {
		entries = append(entries, e)
	}
	c.files = make(map[core.RoutingKey]*entry)
	c.order.Init()
	c.mu.Unlock()

	var lastErr error
	for _, e := range entries {
		e.mu.Lock()
		e.closed = true
		if err := e.w.Flush(); err != nil {
			lastErr = err
		}
		if err := e.w.Close(); err != nil {
			lastErr = err
		}
		e.mu.Unlock()
	}
	return lastErr
}

// appendFile is a buffered plain append-mode file.
type appendFile struct {
	f  *os.File
	bw *bufio.Writer
}

func (a *appendFile) Write(p []byte) (int, error) { return a.bw.Write(p) }
func (a *appendFile) Flush() error                { return a.bw.Flush() }

func (a *appendFile) Close() error {
	if err := a.bw.Flush(); err != nil {
		_ = a.f.Close()
		return err
	}
	return a.f.Close()
}

// rotatingFile adapts lumberjack, which is unbuffered, to lineWriter.
type rotatingFile struct {
	lj *lumberjack.Logger
}

func (r *rotatingFile) Write(p []byte) (int, error) { return r.lj.Write(p) }
func (r *rotatingFile) Flush() error                { return nil }
func (r *rotatingFile) Close() error                { return r.lj.Close() }
