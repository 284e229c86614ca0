// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/care-navigator/internal/httputil"
	"github.com/pdiddy/care-navigator/pkg/types"
)

// noTitle is the placeholder for articles carrying no title.
const noTitle = "No Title"

// articleLinkTemplate derives the canonical article page from an
// identifier. The link is a pure function of the identifier.
const articleLinkTemplate = "https://pubmed.ncbi.nlm.nih.gov/%s/"

// ArticleLink returns the canonical link for identifier.
func ArticleLink(identifier string) string {
	return fmt.Sprintf(articleLinkTemplate, identifier)
}

// PubMedClient talks to a PubMed-compatible two-step literature API:
// a search call returning ranked identifiers, then one batched fetch
// call returning abstract metadata.
type PubMedClient struct {
	Client *http.Client
	Config types.ResearchConfig
}

// SearchIDs returns up to max article identifiers for topic, sorted by
// publication date, in provider order.
func (c *PubMedClient) SearchIDs(ctx context.Context, topic string, max int) ([]string, error) {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("term", topic)
	params.Set("retmax", fmt.Sprintf("%d", max))
	params.Set("sort", "pub date")
	params.Set("retmode", "json")

	body, err := httputil.Get(ctx, c.Client, c.Config.SearchURL+"?"+params.Encode(), c.Config.UserAgent)
	if err != nil {
		return nil, err
	}

	var resp esearchResponse
	if err := httputil.DecodeJSON(body, &resp); err != nil {
		return nil, err
	}
	return resp.Result.IDList, nil
}

// FetchSummaries batch-fetches abstract metadata for ids in one call
// and normalizes the hierarchical document into per-article records. A
// parse failure yields one malformed-response error for the whole
// batch, never partial results.
func (c *PubMedClient) FetchSummaries(ctx context.Context, ids []string) ([]types.ArticleSummary, error) {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("id", strings.Join(ids, ","))
	params.Set("retmode", "xml")
	params.Set("rettype", "abstract")

	body, err := httputil.Get(ctx, c.Client, c.Config.FetchURL+"?"+params.Encode(), c.Config.UserAgent)
	if err != nil {
		return nil, err
	}

	var set pubmedArticleSet
	if err := httputil.DecodeXML(body, &set); err != nil {
		return nil, err
	}

	// A single-article document decodes into a one-element slice; the
	// one-record case must never collapse into scalar fields.
	summaries := make([]types.ArticleSummary, 0, len(set.Articles))
	for _, a := range set.Articles {
		title := strings.TrimSpace(a.Citation.Article.Title)
		if title == "" {
			title = noTitle
		}
		id := strings.TrimSpace(a.Citation.PMID)
		summaries = append(summaries, types.ArticleSummary{
			Identifier: id,
			Title:      title,
			Link:       ArticleLink(id),
		})
	}
	return summaries, nil
}

// PubMed efetch XML structures (abstract subset).
type pubmedArticleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation pubmedCitation `xml:"MedlineCitation"`
}

type pubmedCitation struct {
	PMID    string         `xml:"PMID"`
	Article pubmedMetadata `xml:"Article"`
}

type pubmedMetadata struct {
	Title string `xml:"ArticleTitle"`
}

// esearchResponse is the identifier-search JSON envelope.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	IDList []string `json:"idlist"`
}
