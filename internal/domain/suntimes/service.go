package suntimes

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	_ "time/tzdata"

	apperrors "github.com/yanqian/svatek/pkg/errors"
)

// CodeUpstreamStatus marks a non-2xx answer from the sun-times API.
const CodeUpstreamStatus = "upstream_status"

// Service resolves local sunrise and sunset clock times.
type Service interface {
	Lookup(ctx context.Context, coords Coordinates, date time.Time) (Result, error)
}

// Client fetches raw UTC timestamps for a coordinate pair on a civil date.
// A zero date leaves the choice of day to the upstream.
type Client interface {
	Fetch(ctx context.Context, coords Coordinates, date time.Time) (Times, error)
}

type service struct {
	cfg      Config
	client   Client
	logger   *slog.Logger
	location *time.Location
}

// NewService wires up the sun-times domain.
func NewService(cfg Config, client Client, logger *slog.Logger) (Service, error) {
	name := strings.TrimSpace(cfg.Timezone)
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, apperrors.Wrap("invalid_input", "unknown timezone "+name, err)
	}
	return &service{
		cfg:      cfg,
		client:   client,
		logger:   logger.With("component", "suntimes.service"),
		location: loc,
	}, nil
}

func (s *service) Lookup(ctx context.Context, coords Coordinates, date time.Time) (Result, error) {
	raw, err := s.client.Fetch(ctx, coords, date)
	if err != nil {
		if apperrors.IsCode(err, CodeUpstreamStatus) {
			s.logger.Warn("sun times unavailable", "lat", coords.Latitude, "lng", coords.Longitude, "error", err)
			return Result{Status: StatusAbsent}, nil
		}
		return Result{}, apperrors.Wrap("sun_times_error", "failed to fetch sun times", err)
	}

	sunrise, err := parseTimestamp("sunrise", raw.Sunrise)
	if err != nil {
		return Result{}, apperrors.Wrap("sun_times_error", "malformed sun times response", err)
	}
	sunset, err := parseTimestamp("sunset", raw.Sunset)
	if err != nil {
		return Result{}, apperrors.Wrap("sun_times_error", "malformed sun times response", err)
	}

	sunriseAt := sunrise.In(s.location)
	sunsetAt := sunset.In(s.location)
	res := Result{
		Status:    StatusAvailable,
		Sunrise:   ToLocalClock(sunrise, s.location),
		Sunset:    ToLocalClock(sunset, s.location),
		SunriseAt: &sunriseAt,
		SunsetAt:  &sunsetAt,
	}
	s.logger.Info("sun times resolved", "sunrise", res.Sunrise, "sunset", res.Sunset, "zone", s.location.String(), "source", s.cfg.SourceURL)
	return res, nil
}

// ToLocalClock converts ts into loc and renders it as HH:MM:SS.
func ToLocalClock(ts time.Time, loc *time.Location) string {
	return ts.In(loc).Format(ClockLayout)
}

func parseTimestamp(field, value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%s missing", field)
	}
	ts, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s %q: %w", field, trimmed, err)
	}
	return ts, nil
}
