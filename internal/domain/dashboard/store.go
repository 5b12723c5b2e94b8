package dashboard

import "context"

// StateStore persists the board state between refreshes.
type StateStore interface {
	Load(ctx context.Context) (State, bool, error)
	Save(ctx context.Context, state State) error
}

// RefreshLog keeps a history of refresh attempts.
type RefreshLog interface {
	Append(ctx context.Context, entry LogEntry) error
	Recent(ctx context.Context, limit int) ([]LogEntry, error)
}
