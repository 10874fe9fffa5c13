// Package gsi talks to the Corrently Grünstromindex API: a third-party
// forecast of the share of grid energy coming from renewable sources, keyed
// by postal code.  The dashboard renders it next to the household's own
// consumption.
package gsi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Forecast is one hourly entry of the prediction.  TimeStamp is epoch
// milliseconds; the remaining fields are passed through to the client
// unchanged.
type Forecast struct {
	EpochTime   int64   `json:"epochtime"`
	EEValue     float64 `json:"eevalue"`
	EWind       float64 `json:"ewind"`
	ESolar      float64 `json:"esolar"`
	GSI         float64 `json:"gsi"`
	TimeStamp   int64   `json:"timeStamp"`
	CO2Standard float64 `json:"co2_g_standard"`
	CO2GreenMix float64 `json:"co2_g_oekostrom"`
}

// Time returns the forecast entry's timestamp as a time.Time.
func (f Forecast) Time() time.Time {
	return time.UnixMilli(f.TimeStamp)
}

// Prediction mirrors the upstream response shape.  Location is kept as raw
// JSON because its structure is owned by the upstream API and the dashboard
// only displays it.
type Prediction struct {
	Support       string          `json:"support,omitempty"`
	License       string          `json:"license,omitempty"`
	Info          string          `json:"info,omitempty"`
	Documentation string          `json:"documentation,omitempty"`
	Commercial    string          `json:"commercial,omitempty"`
	Location      json.RawMessage `json:"location,omitempty"`
	Forecast      []Forecast      `json:"forecast"`
}

// Client fetches predictions over HTTP.  A nil HTTPClient falls back to a
// client with a 10 second timeout so a slow upstream cannot stall a
// dashboard request indefinitely.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient builds a Client for the given base URL (e.g.
// "https://api.corrently.io/v2.0").
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Prediction fetches the GSI forecast for a zip code.  Any transport or
// decoding failure is returned as-is; callers map it to an upstream error.
func (c *Client) Prediction(ctx context.Context, zip string) (*Prediction, error) {
	u := fmt.Sprintf("%s/gsi/prediction?zip=%s", c.BaseURL, url.QueryEscape(zip))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	hc := c.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gsi: unexpected status %d", resp.StatusCode)
	}
	var p Prediction
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
