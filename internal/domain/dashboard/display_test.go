package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/svatek/internal/domain/nameday"
	"github.com/yanqian/svatek/internal/domain/suntimes"
)

func TestInitialDisplayPlaceholders(t *testing.T) {
	d := InitialDisplay("V Olomouci:")

	require.Equal(t, "Datum:", d.DateCaption)
	require.Equal(t, "---", d.Date)
	require.Equal(t, "Dnes má svátek:", d.NameDayCaption)
	require.Equal(t, "🌸 --- 🌸", d.NameDay)
	require.Equal(t, "V Olomouci:", d.LocationCaption)
	require.Equal(t, "Východ slunce v: ---", d.Sunrise)
	require.Equal(t, "Západ slunce v: ---", d.Sunset)
}

func TestDisplayLinesOrder(t *testing.T) {
	lines := InitialDisplay("V Olomouci:").Lines()

	require.Equal(t, []string{
		"Datum:",
		"---",
		"Dnes má svátek:",
		"🌸 --- 🌸",
		"V Olomouci:",
		"Východ slunce v: ---",
		"Západ slunce v: ---",
	}, lines)
}

func TestRenderValentineScenario(t *testing.T) {
	snap := Snapshot{
		Date:     time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC),
		Location: "Olomouc",
		NameDay:  nameday.Result{Status: nameday.StatusFound, Name: "Valentýn"},
		SunTimes: suntimes.Result{Status: suntimes.StatusAvailable, Sunrise: "07:12:33", Sunset: "17:05:10"},
	}

	d, alert := Render(InitialDisplay("V Olomouci:"), snap, nil)

	require.Nil(t, alert)
	require.Equal(t, "14.02.2024", d.Date)
	require.Equal(t, "🌸 Valentýn 🌸", d.NameDay)
	require.Equal(t, "Východ slunce v: 07:12:33", d.Sunrise)
	require.Equal(t, "Západ slunce v: 17:05:10", d.Sunset)
	require.Equal(t, "V Olomouci:", d.LocationCaption)
}

func TestRenderNameDayFailureText(t *testing.T) {
	snap := Snapshot{
		Date:     time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		NameDay:  nameday.Result{Status: nameday.StatusUnavailable},
		SunTimes: suntimes.Result{Status: suntimes.StatusAvailable, Sunrise: "06:40:00", Sunset: "17:45:00"},
	}

	d, alert := Render(InitialDisplay(""), snap, nil)

	require.Nil(t, alert)
	require.Equal(t, "🌸 "+nameday.FailureText+" 🌸", d.NameDay)
}

func TestRenderFailureKeepsPreviousDisplay(t *testing.T) {
	prev := Display{
		DateCaption:     "Datum:",
		Date:            "13.02.2024",
		NameDayCaption:  "Dnes má svátek:",
		NameDay:         "🌸 Jarmila 🌸",
		LocationCaption: "V Olomouci:",
		Sunrise:         "Východ slunce v: 07:14:02",
		Sunset:          "Západ slunce v: 17:03:31",
	}
	at := time.Date(2024, time.February, 14, 8, 0, 0, 0, time.UTC)

	d, alert := Render(prev, Snapshot{RefreshedAt: at}, errSunTimesUnavailable())

	require.Equal(t, prev, d)
	require.NotNil(t, alert)
	require.Equal(t, "Chyba", alert.Title)
	require.Equal(t, CodeSunTimesUnavailable, alert.Code)
	require.Equal(t, SunTimesUnavailableText, alert.Message)
	require.Equal(t, at, alert.RaisedAt)
}

func TestRenderAbsentSunTimesWithoutError(t *testing.T) {
	prev := InitialDisplay("V Olomouci:")
	snap := Snapshot{NameDay: nameday.Result{Status: nameday.StatusFound, Name: "Valentýn"}}

	d, alert := Render(prev, snap, nil)

	require.Equal(t, prev, d)
	require.Equal(t, CodeSunTimesUnavailable, alert.Code)
}

func TestRenderUncodedErrorIsGeneric(t *testing.T) {
	_, alert := Render(InitialDisplay(""), Snapshot{}, errors.New("unexpected EOF"))

	require.Equal(t, CodeRefreshFailed, alert.Code)
	require.Equal(t, "Došlo k chybě: unexpected EOF", alert.Message)
}
