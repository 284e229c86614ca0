// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locator

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/care-navigator/internal/httputil"
	"github.com/pdiddy/care-navigator/pkg/types"
)

// unnamedFacility is the placeholder for elements carrying no name tag.
// Such elements are kept; only a missing coordinate drops an element.
const unnamedFacility = "Unnamed Hospital"

// OverpassClient queries an Overpass-compatible interpreter for map
// features tagged as hospitals.
type OverpassClient struct {
	Client *http.Client
	Config types.LocatorConfig
}

// FindHospitals returns the hospitals within the configured radius of
// center, in provider order. Elements without a usable coordinate are
// skipped; a center coordinate substitutes for a missing direct one.
func (c *OverpassClient) FindHospitals(ctx context.Context, center types.Coordinate) ([]types.Facility, error) {
	radius := c.Config.RadiusMeters
	if radius <= 0 {
		radius = 50000
	}

	params := url.Values{}
	params.Set("data", buildOverpassQuery(radius, center))

	body, err := httputil.Get(ctx, c.Client, c.Config.OverpassURL+"?"+params.Encode(), c.Config.UserAgent)
	if err != nil {
		return nil, err
	}

	var resp overpassResponse
	if err := httputil.DecodeJSON(body, &resp); err != nil {
		return nil, err
	}

	var facilities []types.Facility
	for _, el := range resp.Elements {
		lat, lon, ok := el.coordinate()
		if !ok {
			continue
		}
		name := el.Tags["name"]
		if name == "" {
			name = unnamedFacility
		}
		facilities = append(facilities, types.Facility{
			Name:      name,
			Latitude:  lat,
			Longitude: lon,
		})
	}
	return facilities, nil
}

// buildOverpassQuery constructs the node/way/relation union for
// amenity=hospital within radius meters of center, requesting geometry
// centers for area and relation results.
func buildOverpassQuery(radius int, center types.Coordinate) string {
	around := fmt.Sprintf("(around:%d,%f,%f)", radius, center.Latitude, center.Longitude)
	return fmt.Sprintf(`[out:json];(node["amenity"="hospital"]%s;way["amenity"="hospital"]%s;relation["amenity"="hospital"]%s;);out center;`,
		around, around, around)
}

// Overpass interpreter JSON structures. Coordinates are pointers so a
// genuinely-zero coordinate is distinguishable from an absent one.
type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// coordinate returns the element's position: the direct point when
// present, otherwise the provided center, otherwise ok=false.
func (e overpassElement) coordinate() (lat, lon float64, ok bool) {
	if e.Lat != nil && e.Lon != nil {
		return *e.Lat, *e.Lon, true
	}
	if e.Center != nil && e.Center.Lat != nil && e.Center.Lon != nil {
		return *e.Center.Lat, *e.Center.Lon, true
	}
	return 0, 0, false
}
