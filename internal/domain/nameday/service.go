package nameday

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/yanqian/svatek/pkg/errors"
)

// Service resolves the celebrated name for a calendar date.
type Service interface {
	Lookup(ctx context.Context, date time.Time) (Result, error)
}

// Client queries the upstream name-day calendar by DDMM key.
type Client interface {
	Fetch(ctx context.Context, ddmm string) ([]Entry, error)
}

type service struct {
	cfg    Config
	client Client
	logger *slog.Logger
}

// NewService wires up the name-day domain.
func NewService(cfg Config, client Client, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		client: client,
		logger: logger.With("component", "nameday.service"),
	}
}

// Lookup never fails for a missing name: non-200, transport errors and empty
// calendars all yield an unavailable Result. Only a malformed upstream body
// is returned as an error.
func (s *service) Lookup(ctx context.Context, date time.Time) (Result, error) {
	key := FormatQueryDate(date)
	entries, err := s.client.Fetch(ctx, key)
	if err != nil {
		if apperrors.IsCode(err, CodeMalformedResponse) {
			s.logger.Warn("name day response malformed", "date", key, "error", err)
			return Result{}, err
		}
		s.logger.Warn("name day lookup failed", "date", key, "error", err)
		return unavailable(date, err.Error()), nil
	}

	names := collectNames(entries)
	if len(names) == 0 {
		s.logger.Warn("name day lookup returned no entries", "date", key)
		return unavailable(date, "no entries"), nil
	}
	s.logger.Info("name day resolved", "date", key, "name", names[0], "source", s.cfg.SourceURL)

	return Result{
		Status: StatusFound,
		Date:   date,
		Name:   names[0],
		Names:  names,
	}, nil
}

// FormatQueryDate renders the day and month as exactly four digits (DDMM).
func FormatQueryDate(date time.Time) string {
	return fmt.Sprintf("%02d%02d", date.Day(), int(date.Month()))
}

// collectNames keeps upstream order; only the first entry decides the name.
func collectNames(entries []Entry) []string {
	if len(entries) == 0 {
		return nil
	}
	first := strings.TrimSpace(entries[0].Name)
	if first == "" {
		return nil
	}
	names := make([]string, 0, len(entries))
	names = append(names, first)
	for _, e := range entries[1:] {
		if n := strings.TrimSpace(e.Name); n != "" {
			names = append(names, n)
		}
	}
	return names
}

func unavailable(date time.Time, reason string) Result {
	return Result{
		Status: StatusUnavailable,
		Date:   date,
		Reason: reason,
	}
}
