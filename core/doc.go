// Package core defines the shared types used across the routelog sink.
//
// It provides the Level type for severity filtering, the Record type
// that represents a single normalized log event, and the RoutingKey
// type that identifies the physical file a record targets.
//
// A Record is an immutable value: it is created once per log call and
// never modified afterwards, which makes it safe to hand to multiple
// sinks concurrently without copying or locking.
//
// Resolve maps a Record to its RoutingKey. The mapping is a pure
// function of the record's UTC date and its optional routing
// identifier, so two records with the same date and identifier always
// land in the same file.
package core
