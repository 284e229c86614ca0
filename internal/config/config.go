// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config binds viper keys to the application configuration.
// Provider endpoints are configuration, not contracts: deployments may
// point any pipeline at an equivalent provider.
package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/care-navigator/pkg/types"
)

// Defaults applied when a key is absent from config file and
// environment.
const (
	defaultPort      = "8080"
	defaultEnv       = "production"
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "care-navigator/0.1"

	defaultGeocodeURL  = "https://nominatim.openstreetmap.org/search"
	defaultOverpassURL = "https://overpass-api.de/api/interpreter"
	defaultRadius      = 50000

	defaultSearchURL  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	defaultFetchURL   = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
	defaultMaxArticle = 10

	defaultTrialsURL = "https://clinicaltrials.gov/api/query/study/search/brief"
	defaultMaxTrials = 20
)

// SetDefaults registers every configuration key with its default. The
// question-answering endpoint has no default; the capability stays
// unavailable until a deployment configures one.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.env", defaultEnv)
	v.SetDefault("server.cors_origins", []string{})

	v.SetDefault("http.timeout", defaultTimeout)
	v.SetDefault("http.user_agent", defaultUserAgent)

	v.SetDefault("locator.geocode_url", defaultGeocodeURL)
	v.SetDefault("locator.overpass_url", defaultOverpassURL)
	v.SetDefault("locator.radius_meters", defaultRadius)

	v.SetDefault("research.search_url", defaultSearchURL)
	v.SetDefault("research.fetch_url", defaultFetchURL)
	v.SetDefault("research.max_results", defaultMaxArticle)

	v.SetDefault("trials.search_url", defaultTrialsURL)
	v.SetDefault("trials.max_results", defaultMaxTrials)

	v.SetDefault("qa.endpoint_url", "")
	v.SetDefault("qa.api_key", "")
}

// Load builds the application configuration from v. Call SetDefaults
// first; Load itself never fails, it only reads.
func Load(v *viper.Viper) types.AppConfig {
	http := types.HTTPConfig{
		Timeout:   v.GetDuration("http.timeout"),
		UserAgent: v.GetString("http.user_agent"),
	}

	return types.AppConfig{
		Server: types.ServerConfig{
			Port:        v.GetString("server.port"),
			Env:         v.GetString("server.env"),
			CORSOrigins: v.GetStringSlice("server.cors_origins"),
		},
		Locator: types.LocatorConfig{
			HTTPConfig:   http,
			GeocodeURL:   v.GetString("locator.geocode_url"),
			OverpassURL:  v.GetString("locator.overpass_url"),
			RadiusMeters: v.GetInt("locator.radius_meters"),
		},
		Research: types.ResearchConfig{
			HTTPConfig: http,
			SearchURL:  v.GetString("research.search_url"),
			FetchURL:   v.GetString("research.fetch_url"),
			MaxResults: v.GetInt("research.max_results"),
		},
		Trials: types.TrialsConfig{
			HTTPConfig: http,
			SearchURL:  v.GetString("trials.search_url"),
			MaxResults: v.GetInt("trials.max_results"),
		},
		QA: types.QAConfig{
			HTTPConfig:  http,
			EndpointURL: v.GetString("qa.endpoint_url"),
			APIKey:      v.GetString("qa.api_key"),
		},
	}
}
