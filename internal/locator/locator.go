// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locator implements the hospital locator pipeline: a free-text
// location is geocoded to one coordinate, then nearby facilities tagged
// as hospitals are fetched and normalized. The two calls are strictly
// ordered; a failure at either step terminates the invocation.
package locator

import (
	"context"
	"strings"

	"github.com/pdiddy/care-navigator/internal/httputil"
	"github.com/pdiddy/care-navigator/pkg/types"
)

// Geocoder resolves a free-text location to at most one coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (coord types.Coordinate, ok bool, err error)
}

// FacilityFinder returns hospitals around a coordinate in provider order.
type FacilityFinder interface {
	FindHospitals(ctx context.Context, center types.Coordinate) ([]types.Facility, error)
}

// Service chains the geocoder and the facility finder.
type Service struct {
	geo Geocoder
	poi FacilityFinder
}

// NewService builds the pipeline from the configured providers.
func NewService(cfg types.LocatorConfig) *Service {
	client := httputil.NewClient(cfg.Timeout)
	return &Service{
		geo: &NominatimClient{Client: client, Config: cfg},
		poi: &OverpassClient{Client: client, Config: cfg},
	}
}

// NewServiceWith builds the pipeline from explicit providers.
func NewServiceWith(geo Geocoder, poi FacilityFinder) *Service {
	return &Service{geo: geo, poi: poi}
}

// Locate runs the pipeline. A location that resolves to no coordinate
// terminates with "location not found" and issues no facility query;
// zero qualifying facilities terminate with "no hospitals found".
func (s *Service) Locate(ctx context.Context, location string) (types.LocatorResult, error) {
	if strings.TrimSpace(location) == "" {
		return types.LocatorResult{}, types.Invalid("location is required")
	}

	origin, ok, err := s.geo.Geocode(ctx, location)
	if err != nil {
		return types.LocatorResult{}, err
	}
	if !ok {
		return types.LocatorResult{}, types.NotFound("location not found")
	}

	facilities, err := s.poi.FindHospitals(ctx, origin)
	if err != nil {
		return types.LocatorResult{}, err
	}
	if len(facilities) == 0 {
		return types.LocatorResult{}, types.NotFound("no hospitals found")
	}

	return types.LocatorResult{Origin: origin, Facilities: facilities}, nil
}

var _ Geocoder = (*NominatimClient)(nil)
var _ FacilityFinder = (*OverpassClient)(nil)
