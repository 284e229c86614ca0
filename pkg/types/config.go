// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout applied to every outbound call.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "care-navigator/0.1 (support@example.com)").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// LocatorConfig holds settings for the hospital locator pipeline.
type LocatorConfig struct {
	HTTPConfig `yaml:",inline"`

	// GeocodeURL is the geocoding provider's search endpoint.
	GeocodeURL string `json:"geocode_url" yaml:"geocode_url"`

	// OverpassURL is the map point-of-interest interpreter endpoint.
	OverpassURL string `json:"overpass_url" yaml:"overpass_url"`

	// RadiusMeters is the facility search radius around the resolved
	// coordinate (default 50000).
	RadiusMeters int `json:"radius_meters" yaml:"radius_meters"`
}

// ResearchConfig holds settings for the literature lookup pipeline.
type ResearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// SearchURL is the literature search endpoint (identifier lookup).
	SearchURL string `json:"search_url" yaml:"search_url"`

	// FetchURL is the literature detail endpoint (abstract metadata).
	FetchURL string `json:"fetch_url" yaml:"fetch_url"`

	// MaxResults is the maximum number of article identifiers requested
	// per search (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// TrialsConfig holds settings for the clinical trial finder pipeline.
type TrialsConfig struct {
	HTTPConfig `yaml:",inline"`

	// SearchURL is the trials registry search endpoint.
	SearchURL string `json:"search_url" yaml:"search_url"`

	// MaxResults is the maximum number of ranked studies requested per
	// search (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// QAConfig holds settings for the question-answering capability.
type QAConfig struct {
	HTTPConfig `yaml:",inline"`

	// EndpointURL is the extractive question-answering inference endpoint.
	EndpointURL string `json:"endpoint_url" yaml:"endpoint_url"`

	// APIKey is an optional bearer token for the inference endpoint.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// ServerConfig holds settings for the HTTP surface.
type ServerConfig struct {
	// Port is the listen port (default "8080").
	Port string `json:"port" yaml:"port"`

	// Env selects the runtime mode; "development" enables console log
	// output and relaxed cookie settings.
	Env string `json:"env" yaml:"env"`

	// CORSOrigins lists allowed origins for browser clients.
	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins"`
}

// IsDev reports whether the server runs in development mode.
func (c ServerConfig) IsDev() bool { return c.Env == "development" }

// AppConfig groups all component configurations.
type AppConfig struct {
	Server   ServerConfig   `json:"server" yaml:"server"`
	Locator  LocatorConfig  `json:"locator" yaml:"locator"`
	Research ResearchConfig `json:"research" yaml:"research"`
	Trials   TrialsConfig   `json:"trials" yaml:"trials"`
	QA       QAConfig       `json:"qa" yaml:"qa"`
}
