// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trials

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/care-navigator/internal/httputil"
	"github.com/pdiddy/care-navigator/pkg/types"
)

// Placeholders for optional study fields.
const (
	noTitle         = "No Title"
	statusUnknown   = "Status Unknown"
	phaseNotStated  = "N/A"
	locationUnknown = "Unknown"
)

// trialLinkTemplate derives the canonical study page from a registry
// identifier.
const trialLinkTemplate = "https://clinicaltrials.gov/ct2/show/%s"

// TrialLink returns the canonical link for identifier, or the empty
// string when the study carries no identifier.
func TrialLink(identifier string) string {
	if identifier == "" {
		return ""
	}
	return fmt.Sprintf(trialLinkTemplate, identifier)
}

// RegistryClient talks to a clinical-trials registry that answers a
// structured boolean query with a hierarchical XML study list.
type RegistryClient struct {
	Client *http.Client
	Config types.TrialsConfig
}

// Search returns up to max ranked studies matching expr, normalized
// into flat records.
func (c *RegistryClient) Search(ctx context.Context, expr string, max int) ([]types.TrialRecord, error) {
	params := url.Values{}
	params.Set("expr", expr)
	params.Set("min_rnk", "1")
	params.Set("max_rnk", fmt.Sprintf("%d", max))
	params.Set("fmt", "xml")

	body, err := httputil.Get(ctx, c.Client, c.Config.SearchURL+"?"+params.Encode(), c.Config.UserAgent)
	if err != nil {
		return nil, err
	}

	var doc clinicalStudies
	if err := httputil.DecodeXML(body, &doc); err != nil {
		return nil, err
	}

	// A single-study document decodes into a one-element slice; the
	// one-record case must never collapse into scalar fields.
	records := make([]types.TrialRecord, 0, len(doc.Studies))
	for _, s := range doc.Studies {
		records = append(records, normalizeStudy(s))
	}
	return records, nil
}

// normalizeStudy flattens one study element, substituting placeholders
// for absent optional fields.
func normalizeStudy(s clinicalStudy) types.TrialRecord {
	title := strings.TrimSpace(s.OfficialTitle)
	if title == "" {
		title = noTitle
	}
	status := strings.TrimSpace(s.OverallStatus)
	if status == "" {
		status = statusUnknown
	}
	phase := strings.TrimSpace(s.Phase)
	if phase == "" {
		phase = phaseNotStated
	}
	id := strings.TrimSpace(s.IDInfo.NCTID)

	return types.TrialRecord{
		Identifier: id,
		Title:      title,
		Status:     status,
		Phase:      phase,
		Locations:  joinCountries(s.LocationCountries.Countries),
		Link:       TrialLink(id),
	}
}

// joinCountries comma-joins the country list. An absent or empty
// location section yields the placeholder, never an error.
func joinCountries(countries []locationCountry) string {
	names := make([]string, 0, len(countries))
	for _, c := range countries {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			name = locationUnknown
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return locationUnknown
	}
	return strings.Join(names, ", ")
}

// Registry search XML structures (brief-study subset).
type clinicalStudies struct {
	Studies []clinicalStudy `xml:"clinical_study"`
}

type clinicalStudy struct {
	OfficialTitle     string         `xml:"official_title"`
	OverallStatus     string         `xml:"overall_status"`
	Phase             string         `xml:"phase"`
	IDInfo            studyIDInfo    `xml:"id_info"`
	LocationCountries countryListing `xml:"location_countries"`
}

type studyIDInfo struct {
	NCTID string `xml:"nct_id"`
}

type countryListing struct {
	Countries []locationCountry `xml:"location_country"`
}

type locationCountry struct {
	Name string `xml:"location"`
}
