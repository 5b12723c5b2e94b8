package svatky

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/svatek/internal/domain/nameday"
	apperrors "github.com/yanqian/svatek/pkg/errors"
)

func TestFetchDecodesEntries(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("date")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"date":"1402","name":"Valentýn"}]`))
	}))
	defer srv.Close()

	entries, err := NewClient(srv.URL, time.Second).Fetch(context.Background(), "1402")

	require.NoError(t, err)
	require.Equal(t, "1402", gotQuery)
	require.Len(t, entries, 1)
	require.Equal(t, "Valentýn", entries[0].Name)
	require.Equal(t, "1402", entries[0].Date)
}

func TestFetchEmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	entries, err := NewClient(srv.URL, time.Second).Fetch(context.Background(), "0101")

	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestFetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Fetch(context.Background(), "0101")

	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "upstream_status"))
	require.Contains(t, err.Error(), "status=503")
}

func TestFetchMalformedBody(t *testing.T) {
	cases := map[string]string{
		"html":      `<html>not json</html>`,
		"truncated": `{"name":`,
		"object":    `{"name":"Valentýn"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, time.Second).Fetch(context.Background(), "1402")

			require.ErrorContains(t, err, "decode name day response")
			require.True(t, apperrors.IsCode(err, nameday.CodeMalformedResponse))
		})
	}
}

func TestFetchFirstEntryWithoutName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"date":"1402"},{"date":"1402","name":"Valentina"}]`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Fetch(context.Background(), "1402")

	require.True(t, apperrors.IsCode(err, nameday.CodeMalformedResponse))
}

func TestFetchTransportErrorIsNotMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL, time.Second).Fetch(context.Background(), "1402")

	require.Error(t, err)
	require.False(t, apperrors.IsCode(err, nameday.CodeMalformedResponse))
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("  ", 0)
	require.Equal(t, defaultBaseURL, c.baseURL)
	require.Equal(t, defaultTimeout, c.httpClient.Timeout)
}
