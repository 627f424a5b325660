package worldtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mikeladderbush/LED-Project/internal/providers"
	"github.com/mikeladderbush/LED-Project/internal/timeutil"
)

const (
	defaultBaseURL  = "http://worldtimeapi.org/api/timezone"
	defaultTimezone = "America/New_York"
	defaultTimeout  = 5 * time.Second
)

var errMissingDatetime = errors.New("response has no datetime field")

type timezoneResponse struct {
	Timezone string `json:"timezone"`
	Datetime string `json:"datetime"`
}

// Config controls how the client reaches the time service.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client resolves today's date for a timezone from worldtimeapi.org.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// NewClient constructs a time service client.
func NewClient(cfg Config) *Client {
	base := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{baseURL: base, httpClient: httpClient, timeout: timeout}
}

// CurrentDate returns today's date in tz. An empty tz means America/New_York.
func (c *Client) CurrentDate(ctx context.Context, tz string) (timeutil.Date, error) {
	if tz == "" {
		tz = defaultTimezone
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + "/" + escapeZone(tz)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return timeutil.Date{}, providers.FetchFailed(providers.FeedTime, 0, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return timeutil.Date{}, providers.FetchFailed(providers.FeedTime, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return timeutil.Date{}, providers.FetchFailed(providers.FeedTime, resp.StatusCode, fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))))
	}

	var payload timezoneResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return timeutil.Date{}, providers.ParseFailed(providers.FeedTime, err)
	}
	if payload.Datetime == "" {
		return timeutil.Date{}, providers.ParseFailed(providers.FeedTime, errMissingDatetime)
	}
	date, err := timeutil.ParseISODate(payload.Datetime)
	if err != nil {
		return timeutil.Date{}, providers.ParseFailed(providers.FeedTime, err)
	}
	return date, nil
}

// escapeZone escapes each path segment of an IANA name, keeping the slashes.
func escapeZone(tz string) string {
	parts := strings.Split(tz, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
