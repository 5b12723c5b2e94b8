package sunrisesunset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/svatek/internal/domain/suntimes"
	apperrors "github.com/yanqian/svatek/pkg/errors"
)

const okBody = `{
  "results": {
    "sunrise": "2024-02-14T06:12:33+00:00",
    "sunset": "2024-02-14T16:05:10+00:00",
    "solar_noon": "2024-02-14T11:08:51+00:00",
    "day_length": 35557
  },
  "status": "OK",
  "tzid": "UTC"
}`

func TestFetchBuildsQueryAndDecodes(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		got = map[string]string{"lat": q.Get("lat"), "lng": q.Get("lng"), "formatted": q.Get("formatted"), "date": q.Get("date")}
		_, _ = w.Write([]byte(okBody))
	}))
	defer srv.Close()

	times, err := NewClient(srv.URL, time.Second).Fetch(context.Background(), suntimes.Coordinates{Latitude: 49.5938, Longitude: 17.2509}, time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Equal(t, map[string]string{"lat": "49.5938", "lng": "17.2509", "formatted": "0", "date": "2024-02-14"}, got)
	require.Equal(t, "2024-02-14T06:12:33+00:00", times.Sunrise)
	require.Equal(t, "2024-02-14T16:05:10+00:00", times.Sunset)
}

func TestFetchNon200IsUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Fetch(context.Background(), suntimes.Coordinates{}, time.Time{})

	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, suntimes.CodeUpstreamStatus))
}

func TestFetchInvalidRequestStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":{"sunrise":"","sunset":""},"status":"INVALID_REQUEST"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Fetch(context.Background(), suntimes.Coordinates{}, time.Time{})

	require.ErrorContains(t, err, "INVALID_REQUEST")
	require.False(t, apperrors.IsCode(err, suntimes.CodeUpstreamStatus))
}

func TestFetchMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Fetch(context.Background(), suntimes.Coordinates{}, time.Time{})

	require.ErrorContains(t, err, "decode sun times response")
}

func TestFetchHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := NewClient(srv.URL, time.Second).Fetch(ctx, suntimes.Coordinates{}, time.Time{})

	require.Error(t, err)
	require.False(t, apperrors.IsCode(err, suntimes.CodeUpstreamStatus))
}

func TestFetchWithoutDateOmitsParameter(t *testing.T) {
	hasDate := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hasDate = r.URL.Query().Has("date")
		_, _ = w.Write([]byte(okBody))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Fetch(context.Background(), suntimes.Coordinates{}, time.Time{})

	require.NoError(t, err)
	require.False(t, hasDate)
}
