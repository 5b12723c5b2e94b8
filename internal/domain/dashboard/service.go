package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/yanqian/svatek/internal/domain/nameday"
	"github.com/yanqian/svatek/internal/domain/suntimes"
	apperrors "github.com/yanqian/svatek/pkg/errors"
	"github.com/yanqian/svatek/pkg/util"
)

// Service runs the refresh operation for today and the configured place.
type Service interface {
	Refresh(ctx context.Context) (Snapshot, error)
}

type service struct {
	cfg      Config
	nameDays nameday.Service
	sunTimes suntimes.Service
	logger   *slog.Logger
	location *time.Location
	now      func() time.Time
}

// NewService wires up the refresh operation.
func NewService(cfg Config, nameDays nameday.Service, sunTimes suntimes.Service, logger *slog.Logger) (Service, error) {
	zone := strings.TrimSpace(cfg.Timezone)
	if zone == "" {
		zone = suntimes.DefaultTimezone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, apperrors.Wrap("invalid_input", "unknown timezone "+zone, err)
	}
	return &service{
		cfg:      cfg,
		nameDays: nameDays,
		sunTimes: sunTimes,
		logger:   logger.With("component", "dashboard.service"),
		location: loc,
		now:      util.NowUTC,
	}, nil
}

// Refresh looks up the name day and then the sun times, in that order.
// Absent sun times fail the whole refresh even if the name day was found.
func (s *service) Refresh(ctx context.Context) (snap Snapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("refresh panicked", "panic", r)
			snap = Snapshot{}
			err = apperrors.Wrap(CodeRefreshFailed, GenericFailureText, fmt.Errorf("%v", r))
		}
	}()

	now := s.now()
	snap = Snapshot{
		Date:        util.CivilDate(now, s.location),
		Location:    s.cfg.LocationName,
		RefreshedAt: now,
	}

	snap.NameDay, err = s.nameDays.Lookup(ctx, snap.Date)
	if err != nil {
		return Snapshot{RefreshedAt: now}, apperrors.Wrap(CodeRefreshFailed, GenericFailureText, err)
	}

	sun, err := s.sunTimes.Lookup(ctx, s.cfg.Coordinates, snap.Date)
	if err != nil {
		return Snapshot{RefreshedAt: now}, apperrors.Wrap(CodeRefreshFailed, GenericFailureText, err)
	}
	if !sun.Available() {
		return Snapshot{RefreshedAt: now}, errSunTimesUnavailable()
	}
	snap.SunTimes = sun

	s.logger.Info("dashboard refreshed",
		"date", snap.Date.Format(dateLayout),
		"name_day", snap.NameDay.Text(),
		"sunrise", sun.Sunrise,
		"sunset", sun.Sunset,
	)
	return snap, nil
}
