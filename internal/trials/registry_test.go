// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trials

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pdiddy/care-navigator/pkg/types"
)

func testTrialsCfg(searchURL string) types.TrialsConfig {
	return types.TrialsConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "care-navigator-test/0.1",
		},
		SearchURL:  searchURL,
		MaxResults: 20,
	}
}

const sampleStudiesXML = `<?xml version="1.0" ?>
<clinical_studies>
  <clinical_study>
    <id_info>
      <nct_id>NCT04567890</nct_id>
    </id_info>
    <official_title>A Phase 2 Study of Pembrolizumab in Advanced Lung Cancer</official_title>
    <overall_status>Recruiting</overall_status>
    <phase>Phase 2</phase>
    <location_countries>
      <location_country>
        <location>United States</location>
      </location_country>
      <location_country>
        <location>Canada</location>
      </location_country>
    </location_countries>
  </clinical_study>
  <clinical_study>
    <id_info>
      <nct_id>NCT01112223</nct_id>
    </id_info>
    <overall_status></overall_status>
  </clinical_study>
</clinical_studies>`

const singleStudyXML = `<?xml version="1.0" ?>
<clinical_studies>
  <clinical_study>
    <id_info>
      <nct_id>NCT09998887</nct_id>
    </id_info>
    <official_title>Only Study</official_title>
    <overall_status>Completed</overall_status>
    <phase>Phase 3</phase>
  </clinical_study>
</clinical_studies>`

func TestSearch(t *testing.T) {
	var gotExpr, gotMin, gotMax, gotFmt string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotExpr = r.URL.Query().Get("expr")
		gotMin = r.URL.Query().Get("min_rnk")
		gotMax = r.URL.Query().Get("max_rnk")
		gotFmt = r.URL.Query().Get("fmt")
		w.Write([]byte(sampleStudiesXML))
	}))
	defer ts.Close()

	c := &RegistryClient{Client: ts.Client(), Config: testTrialsCfg(ts.URL)}
	records, err := c.Search(context.Background(), "Lung Cancer[Condition] AND Boston[Location]", 20)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotExpr != "Lung Cancer[Condition] AND Boston[Location]" {
		t.Errorf("expr = %q", gotExpr)
	}
	if gotMin != "1" || gotMax != "20" || gotFmt != "xml" {
		t.Errorf("params = min_rnk:%q max_rnk:%q fmt:%q", gotMin, gotMax, gotFmt)
	}

	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}

	first := records[0]
	if first.Identifier != "NCT04567890" {
		t.Errorf("identifier = %q", first.Identifier)
	}
	if first.Title != "A Phase 2 Study of Pembrolizumab in Advanced Lung Cancer" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Status != "Recruiting" || first.Phase != "Phase 2" {
		t.Errorf("status = %q, phase = %q", first.Status, first.Phase)
	}
	if first.Locations != "United States, Canada" {
		t.Errorf("locations = %q", first.Locations)
	}
	if first.Link != "https://clinicaltrials.gov/ct2/show/NCT04567890" {
		t.Errorf("link = %q", first.Link)
	}

	// The second study carries almost nothing; every absent field gets
	// its placeholder.
	second := records[1]
	if second.Title != "No Title" {
		t.Errorf("title = %q, want placeholder", second.Title)
	}
	if second.Status != "Status Unknown" {
		t.Errorf("status = %q, want placeholder", second.Status)
	}
	if second.Phase != "N/A" {
		t.Errorf("phase = %q, want placeholder", second.Phase)
	}
	if second.Locations != "Unknown" {
		t.Errorf("locations = %q, want placeholder", second.Locations)
	}
}

func TestSearch_SingleStudyStaysAList(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(singleStudyXML))
	}))
	defer ts.Close()

	c := &RegistryClient{Client: ts.Client(), Config: testTrialsCfg(ts.URL)}
	records, err := c.Search(context.Background(), "anything", 20)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len = %d, want exactly 1", len(records))
	}
	if records[0].Identifier != "NCT09998887" {
		t.Errorf("identifier = %q", records[0].Identifier)
	}
}

func TestSearch_EmptyDocument(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0" ?><clinical_studies></clinical_studies>`))
	}))
	defer ts.Close()

	c := &RegistryClient{Client: ts.Client(), Config: testTrialsCfg(ts.URL)}
	records, err := c.Search(context.Background(), "anything", 20)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len = %d, want 0", len(records))
	}
}

func TestSearch_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>registry maintenance page`))
	}))
	defer ts.Close()

	c := &RegistryClient{Client: ts.Client(), Config: testTrialsCfg(ts.URL)}
	records, err := c.Search(context.Background(), "anything", 20)
	if types.KindOf(err) != types.KindMalformedResponse {
		t.Fatalf("kind = %v, want malformed_response", types.KindOf(err))
	}
	if records != nil {
		t.Errorf("records = %v, want none on parse failure", records)
	}
}

func TestTrialLink(t *testing.T) {
	if got := TrialLink("NCT04567890"); got != "https://clinicaltrials.gov/ct2/show/NCT04567890" {
		t.Errorf("TrialLink() = %q", got)
	}
	if got := TrialLink(""); got != "" {
		t.Errorf("TrialLink(\"\") = %q, want empty", got)
	}
}
