package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrInvalidAddress is returned when the geocoding provider cannot resolve
// the address.
var ErrInvalidAddress = errors.New("invalid address")

// Coordinates is a resolved lat/lng pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Client resolves free-form addresses to coordinates via the Google Maps
// Geocoding API. Callers treat failures as best-effort: a training is stored
// without coordinates when resolution fails.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    "https://maps.googleapis.com/maps/api/geocode/json",
	}
}

// IsConfigured reports whether an API key is present.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location Coordinates `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Resolve geocodes an address.
func (c *Client) Resolve(ctx context.Context, address string) (*Coordinates, error) {
	endpoint := fmt.Sprintf("%s?address=%s&key=%s", c.baseURL, url.QueryEscape(address), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	if body.Status != "OK" || len(body.Results) == 0 {
		return nil, ErrInvalidAddress
	}

	location := body.Results[0].Geometry.Location
	return &location, nil
}
