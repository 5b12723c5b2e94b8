package refreshlog

import (
	"context"
	"sync"

	"github.com/yanqian/svatek/internal/domain/dashboard"
)

const defaultCapacity = 100

// MemoryLog keeps the latest refresh attempts in a bounded slice.
type MemoryLog struct {
	mu       sync.RWMutex
	capacity int
	entries  []dashboard.LogEntry
}

// NewMemoryLog constructs a log holding at most capacity entries.
func NewMemoryLog(capacity int) *MemoryLog {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &MemoryLog{capacity: capacity}
}

// Append implements dashboard.RefreshLog.
func (l *MemoryLog) Append(_ context.Context, entry dashboard.LogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	if over := len(l.entries) - l.capacity; over > 0 {
		l.entries = append(l.entries[:0:0], l.entries[over:]...)
	}
	return nil
}

// Recent implements dashboard.RefreshLog; newest first.
func (l *MemoryLog) Recent(_ context.Context, limit int) ([]dashboard.LogEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if limit <= 0 || limit > len(l.entries) {
		limit = len(l.entries)
	}
	out := make([]dashboard.LogEntry, 0, limit)
	for i := len(l.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, l.entries[i])
	}
	return out, nil
}

var _ dashboard.RefreshLog = (*MemoryLog)(nil)
