package dashboard

import (
	"time"

	"github.com/yanqian/svatek/internal/domain/nameday"
	"github.com/yanqian/svatek/internal/domain/suntimes"
)

// Alert texts. GenericFailureText is followed by ": <details>".
const (
	SunTimesUnavailableText = "Nepodařilo se získat informace o východu a západu slunce."
	GenericFailureText      = "Došlo k chybě"
	AlertTitle              = "Chyba"
)

const (
	dateLayout  = "02.01.2006"
	placeholder = "---"
)

// Error codes produced by the refresh operation.
const (
	CodeSunTimesUnavailable = "sun_times_unavailable"
	CodeRefreshFailed       = "refresh_failed"
)

// Refresh triggers.
const (
	TriggerStartup  = "startup"
	TriggerManual   = "manual"
	TriggerSchedule = "schedule"
)

// Snapshot is the aggregate produced by one successful refresh.
type Snapshot struct {
	Date        time.Time       `json:"date"`
	Location    string          `json:"location"`
	NameDay     nameday.Result  `json:"nameDay"`
	SunTimes    suntimes.Result `json:"sunTimes"`
	RefreshedAt time.Time       `json:"refreshedAt"`
}

// Display holds the text currently shown on the board.
type Display struct {
	DateCaption     string `json:"dateCaption"`
	Date            string `json:"date"`
	NameDayCaption  string `json:"nameDayCaption"`
	NameDay         string `json:"nameDay"`
	LocationCaption string `json:"locationCaption"`
	Sunrise         string `json:"sunrise"`
	Sunset          string `json:"sunset"`
}

// Alert is the blocking error message the board raises on failure.
type Alert struct {
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Code     string    `json:"code"`
	RaisedAt time.Time `json:"raisedAt"`
}

// State is what the board persists between refreshes.
type State struct {
	Display   Display   `json:"display"`
	Alert     *Alert    `json:"alert,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Outcome of a refresh as recorded in the log.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// LogEntry records one refresh attempt.
type LogEntry struct {
	ID        string        `json:"id"`
	Trigger   string        `json:"trigger"`
	Outcome   Outcome       `json:"outcome"`
	Code      string        `json:"code,omitempty"`
	Message   string        `json:"message,omitempty"`
	Date      string        `json:"date,omitempty"`
	NameDay   string        `json:"nameDay,omitempty"`
	Sunrise   string        `json:"sunrise,omitempty"`
	Sunset    string        `json:"sunset,omitempty"`
	StartedAt time.Time     `json:"startedAt"`
	Duration  time.Duration `json:"durationNs"`
}

// Config wires runtime settings for the dashboard.
type Config struct {
	LocationName    string
	LocationCaption string
	Coordinates     suntimes.Coordinates
	Timezone        string
	HistoryLimit    int
}
