// Package weather is the external collaborator that looks up current
// conditions for the draft entry. The journal only ever stores the
// snapshot it is handed; a failed or late lookup never blocks a save.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Reason classifies why a lookup was unavailable. Every reason is
// recoverable and user-facing with a retry affordance.
type Reason string

const (
	PermissionDenied Reason = "permission-denied"
	NoCredential     Reason = "no-credential"
	Network          Reason = "network"
	BadStatus        Reason = "bad-status"
)

// Unavailable is the failure condition for a weather lookup.
type Unavailable struct {
	Reason Reason
	Err    error
}

func (u *Unavailable) Error() string {
	if u.Err != nil {
		return fmt.Sprintf("weather unavailable (%s): %v", u.Reason, u.Err)
	}
	return fmt.Sprintf("weather unavailable (%s)", u.Reason)
}

func (u *Unavailable) Unwrap() error {
	return u.Err
}

// Report is the success payload: metric temperature, a short condition
// label, the provider's icon token, and the resolved location name.
type Report struct {
	Temp        float64
	Description string
	Icon        string
	Location    string
}

// Snapshot reduces a report to the fields the journal persists.
func (r *Report) Snapshot() *entry.Weather {
	if r == nil {
		return nil
	}
	return &entry.Weather{
		Temp:        r.Temp,
		Description: r.Description,
		Icon:        r.Icon,
	}
}

// Client fetches current conditions from the OpenWeatherMap API.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func New(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// response mirrors the subset of the provider payload the journal uses.
type response struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
		Icon string `json:"icon"`
	} `json:"weather"`
	Name string `json:"name"`
}

// Current looks up the weather at a coordinate. Failures are always an
// *Unavailable with a classified reason.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*Report, error) {
	if c.APIKey == "" {
		return nil, &Unavailable{Reason: NoCredential}
	}

	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%.4f", lat))
	q.Set("lon", fmt.Sprintf("%.4f", lon))
	q.Set("units", "metric")
	q.Set("appid", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &Unavailable{Reason: Network, Err: err}
	}

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, &Unavailable{Reason: Network, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &Unavailable{Reason: PermissionDenied, Err: fmt.Errorf("weather API error: %d", resp.StatusCode)}
	case resp.StatusCode != http.StatusOK:
		return nil, &Unavailable{Reason: BadStatus, Err: fmt.Errorf("weather API error: %d", resp.StatusCode)}
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &Unavailable{Reason: Network, Err: err}
	}
	if len(body.Weather) == 0 {
		return nil, &Unavailable{Reason: BadStatus, Err: fmt.Errorf("weather payload missing conditions")}
	}

	return &Report{
		Temp:        body.Main.Temp,
		Description: body.Weather[0].Main,
		Icon:        body.Weather[0].Icon,
		Location:    body.Name,
	}, nil
}
