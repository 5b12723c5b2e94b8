package metrics

import (
	"sync/atomic"
	"time"
)

// RefreshStats is a point-in-time copy of the refresh counters.
type RefreshStats struct {
	Total         int64      `json:"total"`
	Succeeded     int64      `json:"succeeded"`
	Failed        int64      `json:"failed"`
	LastSuccessAt *time.Time `json:"lastSuccessAt,omitempty"`
	LastFailureAt *time.Time `json:"lastFailureAt,omitempty"`
}

// IsZero reports whether no refresh has been recorded yet.
func (s RefreshStats) IsZero() bool {
	return s.Total == 0
}

// RefreshCounters tracks refresh outcomes; safe for concurrent use.
type RefreshCounters struct {
	succeeded   atomic.Int64
	failed      atomic.Int64
	lastSuccess atomic.Int64
	lastFailure atomic.Int64
}

// NewRefreshCounters returns zeroed counters.
func NewRefreshCounters() *RefreshCounters {
	return &RefreshCounters{}
}

// Observe records one refresh outcome at the given time.
func (c *RefreshCounters) Observe(ok bool, at time.Time) {
	if ok {
		c.succeeded.Add(1)
		c.lastSuccess.Store(at.UnixNano())
		return
	}
	c.failed.Add(1)
	c.lastFailure.Store(at.UnixNano())
}

// Snapshot copies the current values.
func (c *RefreshCounters) Snapshot() RefreshStats {
	ok := c.succeeded.Load()
	bad := c.failed.Load()
	return RefreshStats{
		Total:         ok + bad,
		Succeeded:     ok,
		Failed:        bad,
		LastSuccessAt: fromNanos(c.lastSuccess.Load()),
		LastFailureAt: fromNanos(c.lastFailure.Load()),
	}
}

func fromNanos(n int64) *time.Time {
	if n == 0 {
		return nil
	}
	ts := time.Unix(0, n).UTC()
	return &ts
}
