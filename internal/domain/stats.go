package domain

import "time"

// IngestStats holds counters for one ingestion run.
type IngestStats struct {
	Service  string
	Pages    int
	Fetched  int
	Archived int
	Locked   int
	Banned   int
	Existing int
	Errors   int
	Duration time.Duration

	Resolve *ResolveStats
}

// ResolveStats holds counters for one creator-resolution sweep.
type ResolveStats struct {
	Creators int
	Resolved int
	Cached   int
	Errors   int
	Duration time.Duration
}
