package suntimes

import "time"

// ClockLayout is the 24-hour HH:MM:SS rendering used for both times.
const ClockLayout = "15:04:05"

// DefaultTimezone is the civil zone the clock times are shown in.
const DefaultTimezone = "Europe/Prague"

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Times holds the raw ISO-8601 UTC timestamps reported upstream.
type Times struct {
	Sunrise string
	Sunset  string
}

// Status tags a lookup outcome.
type Status string

const (
	StatusAvailable Status = "available"
	StatusAbsent    Status = "absent"
)

// Result carries local clock times when available. An absent result has
// no times at all; callers branch on Available, never on the strings.
type Result struct {
	Status    Status     `json:"status"`
	Sunrise   string     `json:"sunrise,omitempty"`
	Sunset    string     `json:"sunset,omitempty"`
	SunriseAt *time.Time `json:"sunriseAt,omitempty"`
	SunsetAt  *time.Time `json:"sunsetAt,omitempty"`
}

// Available reports whether both clock times are present.
func (r Result) Available() bool {
	return r.Status == StatusAvailable && r.Sunrise != "" && r.Sunset != ""
}

// Config wires runtime settings for the sun-times domain.
type Config struct {
	Timezone  string
	SourceURL string
}
