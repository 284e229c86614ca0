// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locator

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/care-navigator/internal/httputil"
	"github.com/pdiddy/care-navigator/pkg/types"
)

// NominatimClient resolves free-text locations against a
// Nominatim-compatible geocoding endpoint.
type NominatimClient struct {
	Client *http.Client
	Config types.LocatorConfig
}

// Geocode resolves query to at most one coordinate. The first candidate
// wins; ok is false when the provider returns no candidates, which is
// a valid outcome, not an error.
func (c *NominatimClient) Geocode(ctx context.Context, query string) (coord types.Coordinate, ok bool, err error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	body, err := httputil.Get(ctx, c.Client, c.Config.GeocodeURL+"?"+params.Encode(), c.Config.UserAgent)
	if err != nil {
		return types.Coordinate{}, false, err
	}

	var places []nominatimPlace
	if err := httputil.DecodeJSON(body, &places); err != nil {
		return types.Coordinate{}, false, err
	}
	if len(places) == 0 {
		return types.Coordinate{}, false, nil
	}

	// Nominatim serializes coordinates as strings.
	lat, latErr := strconv.ParseFloat(places[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(places[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return types.Coordinate{}, false, types.NewError(types.KindMalformedResponse,
			"parsing geocoding coordinates", nil)
	}

	return types.Coordinate{Latitude: lat, Longitude: lon}, true, nil
}

// nominatimPlace is the subset of the geocoding response consumed here.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}
