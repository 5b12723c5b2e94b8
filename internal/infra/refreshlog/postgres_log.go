package refreshlog

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/svatek/internal/domain/dashboard"
)

const schema = `
CREATE TABLE IF NOT EXISTS refresh_log (
	id          UUID PRIMARY KEY,
	trigger     TEXT NOT NULL,
	outcome     TEXT NOT NULL,
	code        TEXT NOT NULL DEFAULT '',
	message     TEXT NOT NULL DEFAULT '',
	day         TEXT NOT NULL DEFAULT '',
	name_day    TEXT NOT NULL DEFAULT '',
	sunrise     TEXT NOT NULL DEFAULT '',
	sunset      TEXT NOT NULL DEFAULT '',
	started_at  TIMESTAMPTZ NOT NULL,
	duration_ms BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS refresh_log_started_at_idx ON refresh_log (started_at DESC);
`

// PostgresLog implements dashboard.RefreshLog using pgx.
type PostgresLog struct {
	pool *pgxpool.Pool
}

// NewPostgresLog constructs the log.
func NewPostgresLog(pool *pgxpool.Pool) *PostgresLog {
	return &PostgresLog{pool: pool}
}

// EnsureSchema creates the refresh_log table when missing.
func (l *PostgresLog) EnsureSchema(ctx context.Context) error {
	_, err := l.pool.Exec(ctx, schema)
	return err
}

// Append stores one refresh attempt.
func (l *PostgresLog) Append(ctx context.Context, entry dashboard.LogEntry) error {
	_, err := l.pool.Exec(ctx, `
		INSERT INTO refresh_log (id, trigger, outcome, code, message, day, name_day, sunrise, sunset, started_at, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, entry.ID, entry.Trigger, string(entry.Outcome), entry.Code, entry.Message,
		entry.Date, entry.NameDay, entry.Sunrise, entry.Sunset, entry.StartedAt, entry.Duration.Milliseconds())
	return err
}

// Recent returns the newest attempts first.
func (l *PostgresLog) Recent(ctx context.Context, limit int) ([]dashboard.LogEntry, error) {
	rows, err := l.pool.Query(ctx, `
		SELECT id::text, trigger, outcome, code, message, day, name_day, sunrise, sunset, started_at, duration_ms
		FROM refresh_log
		ORDER BY started_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []dashboard.LogEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func scanEntry(rows pgx.Rows) (dashboard.LogEntry, error) {
	var (
		entry      dashboard.LogEntry
		outcome    string
		durationMS int64
	)
	if err := rows.Scan(
		&entry.ID,
		&entry.Trigger,
		&outcome,
		&entry.Code,
		&entry.Message,
		&entry.Date,
		&entry.NameDay,
		&entry.Sunrise,
		&entry.Sunset,
		&entry.StartedAt,
		&durationMS,
	); err != nil {
		return dashboard.LogEntry{}, err
	}
	entry.Outcome = dashboard.Outcome(outcome)
	entry.Duration = time.Duration(durationMS) * time.Millisecond
	return entry, nil
}

var _ dashboard.RefreshLog = (*PostgresLog)(nil)
