package core

import "time"

// Record represents a single normalized log event.
//
// RoutingID is the optional routing identifier (a UUID in typical
// usage, but treated as an opaque string). When non-empty, the record
// is routed to an entity-specific file instead of the daily file.
type Record struct {
	Time      time.Time
	Level     Level
	Message   string
	Category  string
	RoutingID string
}
