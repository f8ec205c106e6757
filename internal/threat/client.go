package threat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"homehub/internal/metrics"
)

// Default feed endpoints. Overridable for tests and self-hosted mirrors.
const (
	defaultWeatherBaseURL = "https://api.weather.gov"
	defaultCrimeBaseURL   = "https://api.crimeometer.com"

	crimeLookback = 7 * 24 * time.Hour
)

// Client queries the three independent alert feeds. Every fetch degrades
// to an empty list on any failure (network error, non-2xx, bad payload,
// missing credential) so a dead feed can never take the summary down.
type Client struct {
	http *http.Client

	weatherBaseURL string
	crimeBaseURL   string
	crimeAPIKey    string
}

// Option adjusts a Client.
type Option func(*Client)

// WithWeatherBaseURL points the weather alert feed elsewhere.
func WithWeatherBaseURL(u string) Option {
	return func(c *Client) { c.weatherBaseURL = u }
}

// WithCrimeBaseURL points the crime incident feed elsewhere.
func WithCrimeBaseURL(u string) Option {
	return func(c *Client) { c.crimeBaseURL = u }
}

// WithCrimeAPIKey enables the crime feed; without a key it returns empty.
func WithCrimeAPIKey(key string) Option {
	return func(c *Client) { c.crimeAPIKey = key }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient builds a feed client with sane defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:           &http.Client{},
		weatherBaseURL: defaultWeatherBaseURL,
		crimeBaseURL:   defaultCrimeBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchWeatherAlerts returns the active NWS alert headlines for a point.
func (c *Client) FetchWeatherAlerts(ctx context.Context, lat, lon float64) []string {
	url := fmt.Sprintf("%s/alerts/active?point=%.4f,%.4f", c.weatherBaseURL, lat, lon)

	var payload struct {
		Features []struct {
			Properties struct {
				Headline string `json:"headline"`
			} `json:"properties"`
		} `json:"features"`
	}
	if !c.getJSON(ctx, url, nil, &payload) {
		metrics.ThreatFetches.WithLabelValues("weather", "degraded").Inc()
		return []string{}
	}
	metrics.ThreatFetches.WithLabelValues("weather", "ok").Inc()

	alerts := make([]string, 0, len(payload.Features))
	for _, f := range payload.Features {
		alerts = append(alerts, f.Properties.Headline)
	}
	return alerts
}

// FetchCrimeReports returns last-week incident descriptions within a mile
// of the point. Without an API key the feed is considered disabled.
func (c *Client) FetchCrimeReports(ctx context.Context, lat, lon float64) []string {
	if c.crimeAPIKey == "" {
		metrics.ThreatFetches.WithLabelValues("crime", "disabled").Inc()
		return []string{}
	}

	now := time.Now().UTC()
	url := fmt.Sprintf("%s/v3/incidents/raw-data?lat=%.4f&lon=%.4f&distance=1mi&datetime_ini=%s&datetime_end=%s",
		c.crimeBaseURL, lat, lon,
		now.Add(-crimeLookback).Format(time.RFC3339), now.Format(time.RFC3339))

	var payload struct {
		Incidents []struct {
			IncidentOffense string `json:"incident_offense"`
		} `json:"incidents"`
	}
	headers := map[string]string{"x-api-key": c.crimeAPIKey}
	if !c.getJSON(ctx, url, headers, &payload) {
		metrics.ThreatFetches.WithLabelValues("crime", "degraded").Inc()
		return []string{}
	}
	metrics.ThreatFetches.WithLabelValues("crime", "ok").Inc()

	reports := make([]string, 0, len(payload.Incidents))
	for _, i := range payload.Incidents {
		reports = append(reports, i.IncidentOffense)
	}
	return reports
}

// FetchPowerOutages is a placeholder until a public outage feed is wired.
// TODO: back this with the utility's outage map API once it is public.
func (c *Client) FetchPowerOutages(ctx context.Context, lat, lon float64) []string {
	return []string{}
}

// getJSON performs a GET and decodes the body, reporting success. Any
// failure along the way is swallowed into a false return.
func (c *Client) getJSON(ctx context.Context, url string, headers map[string]string, dst any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}
	return json.NewDecoder(resp.Body).Decode(dst) == nil
}
