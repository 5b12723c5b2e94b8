package nameday

import "time"

// FailureText is shown in place of a name when the lookup yields nothing.
const FailureText = "Nepodařilo se získat data o jmeninách."

// CodeMalformedResponse marks an upstream 200 whose body could not be used.
// Unlike other client failures it is returned as an error from Lookup.
const CodeMalformedResponse = "malformed_response"

// Status tags a lookup outcome.
type Status string

const (
	StatusFound       Status = "found"
	StatusUnavailable Status = "unavailable"
)

// Entry is one celebrant returned by the upstream calendar.
type Entry struct {
	Name string `json:"name"`
	Date string `json:"date,omitempty"`
}

// Result is the outcome of a single name-day lookup. Failures are values.
type Result struct {
	Status Status    `json:"status"`
	Date   time.Time `json:"date"`
	Name   string    `json:"name,omitempty"`
	Names  []string  `json:"names,omitempty"`
	Reason string    `json:"reason,omitempty"`
}

// Found reports whether a celebrant name is present.
func (r Result) Found() bool {
	return r.Status == StatusFound && r.Name != ""
}

// Text is the displayable value: the name, or FailureText.
func (r Result) Text() string {
	if r.Found() {
		return r.Name
	}
	return FailureText
}

// Config wires runtime settings for the name-day domain.
type Config struct {
	SourceURL string
}
