package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/svatek/pkg/metrics"
	"github.com/yanqian/svatek/pkg/util"
)

const defaultHistoryLimit = 20

// Board owns the displayed state and serialises refreshes.
type Board struct {
	mu       sync.Mutex
	cfg      Config
	svc      Service
	store    StateStore
	history  RefreshLog
	counters *metrics.RefreshCounters
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// NewBoard builds the board around the refresh operation.
func NewBoard(cfg Config, svc Service, store StateStore, history RefreshLog, counters *metrics.RefreshCounters, logger *slog.Logger) *Board {
	if counters == nil {
		counters = metrics.NewRefreshCounters()
	}
	return &Board{
		cfg:      cfg,
		svc:      svc,
		store:    store,
		history:  history,
		counters: counters,
		logger:   logger.With("component", "dashboard.board"),
		now:      util.NowUTC,
		newID:    uuid.NewString,
	}
}

// Refresh runs one refresh and applies it to the board. The returned state
// is always usable; on failure it still shows the previous values and the
// error is the one described by state.Alert.
func (b *Board) Refresh(ctx context.Context, trigger string) (State, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	started := b.now()
	prev := b.loadLocked(ctx)

	snap, err := b.svc.Refresh(ctx)
	if err == nil && !snap.SunTimes.Available() {
		err = errSunTimesUnavailable()
	}
	display, alert := Render(prev.Display, snap, err)

	next := State{Display: display, Alert: alert, UpdatedAt: b.now()}
	if alert != nil {
		next.UpdatedAt = prev.UpdatedAt
	}
	if saveErr := b.store.Save(ctx, next); saveErr != nil {
		b.logger.Warn("persist board state failed", "error", saveErr)
	}

	entry := LogEntry{
		ID:        b.newID(),
		Trigger:   trigger,
		Outcome:   OutcomeSuccess,
		StartedAt: started,
		Duration:  b.now().Sub(started),
	}
	if alert != nil {
		entry.Outcome = OutcomeFailure
		entry.Code = alert.Code
		entry.Message = alert.Message
	} else {
		entry.Date = display.Date
		entry.NameDay = snap.NameDay.Text()
		entry.Sunrise = snap.SunTimes.Sunrise
		entry.Sunset = snap.SunTimes.Sunset
	}
	if logErr := b.history.Append(ctx, entry); logErr != nil {
		b.logger.Warn("append refresh log failed", "error", logErr)
	}
	b.counters.Observe(alert == nil, started)

	if alert != nil {
		b.logger.Error("dashboard refresh failed", "trigger", trigger, "code", alert.Code, "message", alert.Message)
		return next, err
	}
	b.logger.Info("dashboard updated", "trigger", trigger, "date", display.Date)
	return next, nil
}

// Current returns the state on display right now.
func (b *Board) Current(ctx context.Context) (State, error) {
	state, ok, err := b.store.Load(ctx)
	if err != nil {
		return State{}, err
	}
	if !ok {
		return b.initialState(), nil
	}
	return state, nil
}

// DismissAlert acknowledges the pending alert, leaving the display as is.
func (b *Board) DismissAlert(ctx context.Context) (State, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	state := b.loadLocked(ctx)
	if state.Alert == nil {
		return state, nil
	}
	state.Alert = nil
	if err := b.store.Save(ctx, state); err != nil {
		return State{}, err
	}
	return state, nil
}

// History lists the most recent refresh attempts, newest first.
func (b *Board) History(ctx context.Context, limit int) ([]LogEntry, error) {
	ceiling := b.cfg.HistoryLimit
	if ceiling <= 0 {
		ceiling = defaultHistoryLimit
	}
	if limit <= 0 || limit > ceiling {
		limit = ceiling
	}
	return b.history.Recent(ctx, limit)
}

// Stats exposes the refresh counters.
func (b *Board) Stats() metrics.RefreshStats {
	return b.counters.Snapshot()
}

func (b *Board) loadLocked(ctx context.Context) State {
	state, ok, err := b.store.Load(ctx)
	if err != nil {
		b.logger.Warn("load board state failed, starting from placeholders", "error", err)
		return b.initialState()
	}
	if !ok {
		return b.initialState()
	}
	return state
}

func (b *Board) initialState() State {
	return State{Display: InitialDisplay(b.cfg.LocationCaption)}
}
