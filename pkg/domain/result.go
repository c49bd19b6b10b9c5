package domain

import "time"

// RunStatus is the terminal status of a curation run
type RunStatus string

// run statuses
const (
	StatusSuccess        RunStatus = "success"
	StatusPartial        RunStatus = "partial"
	StatusAlreadyRunning RunStatus = "already_running"
	StatusFailed         RunStatus = "failed"
)

// RunResult summarizes a single curation run. Per-item failures are
// absorbed into the counters; only top-level failures change Status.
type RunResult struct {
	Theme          string
	Collection     string
	Status         RunStatus
	MatchedCount   int
	UnmatchedCount int
	AddedCount     int
	AlreadyPresent int
	FailedAddCount int
	CollectionSize int
	Error          string
	Started        time.Time
	Elapsed        time.Duration
}

// SyncSummary reports the outcome of a collection sync
type SyncSummary struct {
	Added          int
	AlreadyPresent int
	Failed         int
	Size           int
}
