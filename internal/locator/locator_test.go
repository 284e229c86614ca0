// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locator

import (
	"context"
	"testing"

	"github.com/pdiddy/care-navigator/pkg/types"
)

// --- mock providers ---

type mockGeocoder struct {
	coord types.Coordinate
	ok    bool
	err   error
	calls int
}

func (m *mockGeocoder) Geocode(_ context.Context, _ string) (types.Coordinate, bool, error) {
	m.calls++
	return m.coord, m.ok, m.err
}

type mockFinder struct {
	facilities []types.Facility
	err        error
	calls      int
}

func (m *mockFinder) FindHospitals(_ context.Context, _ types.Coordinate) ([]types.Facility, error) {
	m.calls++
	return m.facilities, m.err
}

// --- Locate ---

func TestLocate_HappyPath(t *testing.T) {
	geo := &mockGeocoder{coord: types.Coordinate{Latitude: 40.7128, Longitude: -74.0060}, ok: true}
	poi := &mockFinder{facilities: []types.Facility{
		{Name: "General Hospital", Latitude: 40.7130, Longitude: -74.0055},
	}}
	svc := NewServiceWith(geo, poi)

	out, err := svc.Locate(context.Background(), "New York")
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if out.Origin.Latitude != 40.7128 || out.Origin.Longitude != -74.0060 {
		t.Errorf("origin = %+v, want New York coordinate", out.Origin)
	}
	if len(out.Facilities) != 1 || out.Facilities[0].Name != "General Hospital" {
		t.Errorf("facilities = %+v, want one General Hospital", out.Facilities)
	}
}

func TestLocate_BlankLocationRejectedBeforeAnyCall(t *testing.T) {
	geo := &mockGeocoder{}
	poi := &mockFinder{}
	svc := NewServiceWith(geo, poi)

	_, err := svc.Locate(context.Background(), "   ")
	if types.KindOf(err) != types.KindValidation {
		t.Fatalf("kind = %v, want validation", types.KindOf(err))
	}
	if geo.calls != 0 || poi.calls != 0 {
		t.Errorf("providers were called (%d, %d), want none", geo.calls, poi.calls)
	}
}

func TestLocate_NoGeocodeCandidateSkipsFacilityQuery(t *testing.T) {
	geo := &mockGeocoder{ok: false}
	poi := &mockFinder{}
	svc := NewServiceWith(geo, poi)

	// Repeat to confirm the failing input is idempotent.
	for i := 0; i < 2; i++ {
		_, err := svc.Locate(context.Background(), "nowhere")
		if types.KindOf(err) != types.KindNotFound {
			t.Fatalf("kind = %v, want not_found", types.KindOf(err))
		}
	}
	if poi.calls != 0 {
		t.Errorf("facility query issued %d times, want 0", poi.calls)
	}
}

func TestLocate_ZeroFacilitiesIsNotFound(t *testing.T) {
	geo := &mockGeocoder{coord: types.Coordinate{Latitude: 1, Longitude: 2}, ok: true}
	poi := &mockFinder{facilities: nil}
	svc := NewServiceWith(geo, poi)

	_, err := svc.Locate(context.Background(), "somewhere")
	if types.KindOf(err) != types.KindNotFound {
		t.Fatalf("kind = %v, want not_found", types.KindOf(err))
	}
	if err.Error() != "no hospitals found" {
		t.Errorf("message = %q, want %q", err.Error(), "no hospitals found")
	}
}

func TestLocate_GeocodeFailureHaltsPipeline(t *testing.T) {
	geo := &mockGeocoder{err: types.NewError(types.KindNetworkTimeout, "request timed out", nil)}
	poi := &mockFinder{}
	svc := NewServiceWith(geo, poi)

	_, err := svc.Locate(context.Background(), "New York")
	if types.KindOf(err) != types.KindNetworkTimeout {
		t.Fatalf("kind = %v, want network_timeout", types.KindOf(err))
	}
	if poi.calls != 0 {
		t.Errorf("facility query issued after geocode failure")
	}
}
