package svatky

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yanqian/svatek/internal/domain/nameday"
	apperrors "github.com/yanqian/svatek/pkg/errors"
)

const (
	defaultBaseURL = "https://svatky.adresa.info/json"
	defaultTimeout = 10 * time.Second
)

// Client fetches name days from svatky.adresa.info.
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

// Fetch retrieves the celebrants for a DDMM date key.
func (c *Client) Fetch(ctx context.Context, ddmm string) ([]nameday.Entry, error) {
	endpoint := fmt.Sprintf("%s?date=%s", c.baseURL, url.QueryEscape(ddmm))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build name day request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("name day request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, apperrors.Wrap("upstream_status", fmt.Sprintf("name day request error: status=%d body=%s", resp.StatusCode, string(payload)), nil)
	}

	var entries []apiEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, apperrors.Wrap(nameday.CodeMalformedResponse, "decode name day response", err)
	}
	if len(entries) > 0 && entries[0].Name == nil {
		return nil, apperrors.Wrap(nameday.CodeMalformedResponse, "name day response: first entry has no name", nil)
	}

	out := make([]nameday.Entry, 0, len(entries))
	for _, e := range entries {
		entry := nameday.Entry{Date: e.Date}
		if e.Name != nil {
			entry.Name = *e.Name
		}
		out = append(out, entry)
	}
	return out, nil
}

type apiEntry struct {
	Date string  `json:"date"`
	Name *string `json:"name"`
}
