package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/howietz/placeshare/internal/domain/entity"
)

const googleEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

// Google resolves addresses through the Google Maps Geocoding API.
type Google struct {
	APIKey   string
	Endpoint string // overridable for tests; defaults to the public API
	Client   *http.Client
}

func NewGoogle(apiKey string) *Google {
	return &Google{
		APIKey:   apiKey,
		Endpoint: googleEndpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *Google) Resolve(ctx context.Context, address string) (entity.Coordinates, error) {
	endpoint := g.Endpoint
	if endpoint == "" {
		endpoint = googleEndpoint
	}
	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}

	q := url.Values{}
	q.Set("address", address)
	q.Set("key", g.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return entity.Coordinates{}, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return entity.Coordinates{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return entity.Coordinates{}, fmt.Errorf("geocoding request failed: %s", resp.Status)
	}

	var body struct {
		Status  string `json:"status"`
		Results []struct {
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entity.Coordinates{}, err
	}
	if body.Status == "ZERO_RESULTS" || len(body.Results) == 0 {
		return entity.Coordinates{}, ErrNoResults
	}

	loc := body.Results[0].Geometry.Location
	return entity.Coordinates{Lat: loc.Lat, Lon: loc.Lng}, nil
}

var _ Resolver = (*Google)(nil)
