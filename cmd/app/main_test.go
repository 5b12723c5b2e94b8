package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/svatek/internal/bootstrap"
	"github.com/yanqian/svatek/internal/domain/dashboard"
	"github.com/yanqian/svatek/internal/infra/config"
	apperrors "github.com/yanqian/svatek/pkg/errors"
)

func TestPrintBoardSuccess(t *testing.T) {
	display := dashboard.InitialDisplay("V Olomouci:")
	display.Date = "14.02.2024"
	display.NameDay = "🌸 Valentýn 🌸"
	app := newTestApp(&fixedRefresher{state: dashboard.State{Display: display}})

	var out bytes.Buffer
	code := printBoard(context.Background(), app, &out)

	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "14.02.2024\n")
	require.Contains(t, out.String(), "🌸 Valentýn 🌸\n")
}

func TestPrintBoardFailureShowsAlert(t *testing.T) {
	state := dashboard.State{
		Display: dashboard.InitialDisplay("V Olomouci:"),
		Alert:   &dashboard.Alert{Title: dashboard.AlertTitle, Message: dashboard.SunTimesUnavailableText},
	}
	app := newTestApp(&fixedRefresher{
		state: state,
		err:   apperrors.Wrap(dashboard.CodeSunTimesUnavailable, dashboard.SunTimesUnavailableText, nil),
	})

	var out bytes.Buffer
	code := printBoard(context.Background(), app, &out)

	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "🌸 --- 🌸\n")
	require.Contains(t, out.String(), "Chyba: "+dashboard.SunTimesUnavailableText+"\n")
}

func newTestApp(refresher bootstrap.Refresher) *bootstrap.App {
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: "127.0.0.1:0"}}
	return bootstrap.NewApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), &http.Server{}, refresher)
}

type fixedRefresher struct {
	state dashboard.State
	err   error
}

func (f *fixedRefresher) Refresh(ctx context.Context, trigger string) (dashboard.State, error) {
	return f.state, f.err
}
