// Package filecache owns the pool of open log file handles.
//
// The Cache maps each RoutingKey to exactly one open, append-mode file
// handle and holds at most Capacity entries (default 32). When a write
// targets a key that is not resident and the cache is full, the least
// recently written entry is flushed, closed, and removed before the
// new handle is opened. Eviction is transparent: the next write to an
// evicted key reopens its file in append mode, so no content is lost.
//
// Locking is two-tier. A single structural mutex guards the resident
// map and the recency list; it is held only for lookups, insertions,
// opens, and evictions, never across a write. Each resident entry
// carries its own mutex that serializes writes to that one file, so
// writers targeting distinct keys do not contend once both handles are
// resident. An evictor must take the victim's entry mutex before
// closing, which means a handle is never closed while a write to it is
// in flight; a writer that loses that race observes the closed marker
// and transparently retries against a fresh handle.
//
// Path scheme, fixed for interoperability with tooling that reads the
// files: daily keys map to log_{year}_{month}_{day}.log with no zero
// padding (log_2024_1_15.log), entity keys to order_{id}.log, both
// directly under the base directory.
package filecache
