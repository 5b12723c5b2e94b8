package sunrisesunset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/svatek/internal/domain/suntimes"
	apperrors "github.com/yanqian/svatek/pkg/errors"
)

const (
	defaultBaseURL = "https://api.sunrise-sunset.org/json"
	defaultTimeout = 10 * time.Second
	dateLayout     = "2006-01-02"
)

// Client fetches sunrise and sunset timestamps from api.sunrise-sunset.org.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client. A zero timeout falls back to the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch retrieves the UTC sunrise and sunset for the coordinates on date.
// formatted=0 makes the API answer with ISO-8601 timestamps. Without a date
// the API answers for its own UTC today.
func (c *Client) Fetch(ctx context.Context, coords suntimes.Coordinates, date time.Time) (suntimes.Times, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	query.Set("formatted", "0")
	if !date.IsZero() {
		query.Set("date", date.Format(dateLayout))
	}
	endpoint := c.baseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return suntimes.Times{}, fmt.Errorf("build sun times request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return suntimes.Times{}, fmt.Errorf("sun times request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return suntimes.Times{}, apperrors.Wrap(suntimes.CodeUpstreamStatus, fmt.Sprintf("sun times request error: status=%d body=%s", resp.StatusCode, string(payload)), nil)
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return suntimes.Times{}, fmt.Errorf("decode sun times response: %w", err)
	}
	if raw.Status != "" && raw.Status != "OK" {
		return suntimes.Times{}, fmt.Errorf("sun times api error: %s", raw.Status)
	}

	return suntimes.Times{
		Sunrise: raw.Results.Sunrise,
		Sunset:  raw.Results.Sunset,
	}, nil
}

type apiResponse struct {
	Results apiResults `json:"results"`
	Status  string     `json:"status"`
	TZID    string     `json:"tzid"`
}

type apiResults struct {
	Sunrise   string `json:"sunrise"`
	Sunset    string `json:"sunset"`
	SolarNoon string `json:"solar_noon"`
	DayLength int64  `json:"day_length"`
}
