// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the care-navigator
// pipelines. Records are normalized at the provider boundary: loosely
// typed provider payloads become these structs immediately after
// parsing, and are immutable from then on.
package types

// Coordinate is a resolved latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Facility is one hospital returned by the locator pipeline. Records
// lacking a name get a placeholder; records lacking a coordinate are
// never constructed.
type Facility struct {
	// Name is the display name, or "Unnamed Hospital" when the provider
	// supplied none.
	Name string `json:"name" yaml:"name"`

	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// LocatorResult is the hospital locator output: the facilities in
// provider order plus the origin coordinate for map anchoring.
type LocatorResult struct {
	Origin     Coordinate `json:"origin" yaml:"origin"`
	Facilities []Facility `json:"facilities" yaml:"facilities"`
}

// ArticleSummary is one literature search hit. Order is preserved from
// the provider (implicitly publication-date rank).
type ArticleSummary struct {
	// Identifier is the provider's canonical article ID.
	Identifier string `json:"identifier" yaml:"identifier"`

	// Title is the article title, or "No Title" when absent.
	Title string `json:"title" yaml:"title"`

	// Link is derived purely from Identifier by a fixed URL template.
	Link string `json:"link" yaml:"link"`
}

// TrialRecord is one clinical study returned by the trial finder.
type TrialRecord struct {
	// Identifier is the registry's study ID; may be empty when the
	// provider omitted it.
	Identifier string `json:"identifier" yaml:"identifier"`

	// Title is the official study title, or "No Title" when absent.
	Title string `json:"title" yaml:"title"`

	// Status is the overall recruitment status, or "Status Unknown".
	Status string `json:"status" yaml:"status"`

	// Phase is the trial phase, or "N/A".
	Phase string `json:"phase" yaml:"phase"`

	// Locations is a comma-joined list of country names, or "Unknown"
	// when the location section is absent or unparsable.
	Locations string `json:"locations" yaml:"locations"`

	// Link is derived from Identifier; empty when Identifier is empty.
	Link string `json:"link" yaml:"link"`
}
