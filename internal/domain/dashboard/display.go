package dashboard

import (
	"time"

	apperrors "github.com/yanqian/svatek/pkg/errors"
)

// InitialDisplay is the board before the first successful refresh.
// locationCaption is shown above the sun times, e.g. "V Olomouci:".
func InitialDisplay(locationCaption string) Display {
	return Display{
		DateCaption:     "Datum:",
		Date:            placeholder,
		NameDayCaption:  "Dnes má svátek:",
		NameDay:         decorateName(placeholder),
		LocationCaption: locationCaption,
		Sunrise:         sunriseText(placeholder),
		Sunset:          sunsetText(placeholder),
	}
}

// Render applies a refresh outcome to the previous display. On failure the
// previous display is returned untouched together with an alert.
func Render(prev Display, snap Snapshot, err error) (Display, *Alert) {
	if err != nil {
		return prev, alertFor(err, snap.RefreshedAt)
	}
	if !snap.SunTimes.Available() {
		return prev, alertFor(errSunTimesUnavailable(), snap.RefreshedAt)
	}
	return Display{
		DateCaption:     "Datum:",
		Date:            snap.Date.Format(dateLayout),
		NameDayCaption:  "Dnes má svátek:",
		NameDay:         decorateName(snap.NameDay.Text()),
		LocationCaption: prev.LocationCaption,
		Sunrise:         sunriseText(snap.SunTimes.Sunrise),
		Sunset:          sunsetText(snap.SunTimes.Sunset),
	}, nil
}

// Lines lays the display out top to bottom as the board shows it.
func (d Display) Lines() []string {
	return []string{
		d.DateCaption,
		d.Date,
		d.NameDayCaption,
		d.NameDay,
		d.LocationCaption,
		d.Sunrise,
		d.Sunset,
	}
}

func alertFor(err error, at time.Time) *Alert {
	code := apperrors.CodeOf(err)
	message := err.Error()
	if code != CodeSunTimesUnavailable && code != CodeRefreshFailed {
		code = CodeRefreshFailed
		message = GenericFailureText + ": " + err.Error()
	}
	return &Alert{
		Title:    AlertTitle,
		Message:  message,
		Code:     code,
		RaisedAt: at,
	}
}

func errSunTimesUnavailable() error {
	return apperrors.Wrap(CodeSunTimesUnavailable, SunTimesUnavailableText, nil)
}

func decorateName(name string) string {
	return "🌸 " + name + " 🌸"
}

func sunriseText(clock string) string {
	return "Východ slunce v: " + clock
}

func sunsetText(clock string) string {
	return "Západ slunce v: " + clock
}
