// Package kpfeed fetches and parses the NOAA SWPC plaintext feeds for the
// planetary K geomagnetic index: daily historical observations and the
// 27-day outlook. Fetch or parse failures yield an empty result set rather
// than an error; callers serve whatever is already cached.
package kpfeed

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DayValue is one parsed calendar day of Kp data.
type DayValue struct {
	Date time.Time // midnight UTC
	Kp   float64
}

type Client struct {
	historicalURL string
	forecastURL   string
	httpClient    *http.Client
}

func NewClient(historicalURL, forecastURL string) *Client {
	return &Client{
		historicalURL: historicalURL,
		forecastURL:   forecastURL,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchHistorical returns daily Kp means parsed from the historical feed,
// limited to days within [start, end]. Failures return an empty slice.
func (c *Client) FetchHistorical(ctx context.Context, start, end time.Time) []DayValue {
	body, err := c.get(ctx, c.historicalURL)
	if err != nil {
		slog.Error("kp historical feed fetch failed", "error", err)
		return nil
	}
	return ParseHistorical(body, start, end)
}

// FetchForecast returns forecasted Kp values parsed from the 27-day outlook,
// limited to days within [start, end]. Failures return an empty slice.
func (c *Client) FetchForecast(ctx context.Context, start, end time.Time) []DayValue {
	body, err := c.get(ctx, c.forecastURL)
	if err != nil {
		slog.Error("kp forecast feed fetch failed", "error", err)
		return nil
	}
	return ParseForecast(body, start, end)
}

func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &statusError{code: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return "unexpected feed status " + http.StatusText(e.code)
}
