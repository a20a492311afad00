package core

import "time"

// RoutingKey identifies the physical file a record targets. It is one
// of two variants: an entity key (ID set, date fields zero) or a daily
// key (ID empty, date fields set). The zero value is not a valid key.
//
// RoutingKey is comparable and is used directly as a map key by the
// file handle cache.
type RoutingKey struct {
	ID    string
	Year  int
	Month time.Month
	Day   int
}

// IsEntity reports whether the key targets an entity-specific file.
func (k RoutingKey) IsEntity() bool {
	return k.ID != ""
}

// Resolve derives the RoutingKey for a record. Records carrying a
// non-empty routing identifier resolve to an entity key; all others
// resolve to a daily key on the record's UTC date.
func Resolve(r Record) RoutingKey {
	if r.RoutingID != "" {
		return RoutingKey{ID: r.RoutingID}
	}
	return DailyKey(r.Time)
}

// DailyKey returns the daily RoutingKey for the UTC date of t.
func DailyKey(t time.Time) RoutingKey {
	y, m, d := t.UTC().Date()
	return RoutingKey{Year: y, Month: m, Day: d}
}
