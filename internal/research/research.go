// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research implements the literature lookup pipeline: a topic
// search yields ranked article identifiers, and one batched fetch
// resolves them to titles and links.
package research

import (
	"context"
	"strings"

	"github.com/pdiddy/care-navigator/internal/httputil"
	"github.com/pdiddy/care-navigator/pkg/types"
)

// Provider is the two-step literature API the pipeline runs against.
type Provider interface {
	SearchIDs(ctx context.Context, topic string, max int) ([]string, error)
	FetchSummaries(ctx context.Context, ids []string) ([]types.ArticleSummary, error)
}

// Service chains the search and fetch calls.
type Service struct {
	provider   Provider
	maxResults int
}

// NewService builds the pipeline against the configured provider.
func NewService(cfg types.ResearchConfig) *Service {
	max := cfg.MaxResults
	if max <= 0 {
		max = 10
	}
	return &Service{
		provider:   &PubMedClient{Client: httputil.NewClient(cfg.Timeout), Config: cfg},
		maxResults: max,
	}
}

// NewServiceWith builds the pipeline against an explicit provider.
func NewServiceWith(p Provider, maxResults int) *Service {
	if maxResults <= 0 {
		maxResults = 10
	}
	return &Service{provider: p, maxResults: maxResults}
}

// Lookup runs the pipeline for topic. An empty identifier list
// terminates with "no articles found" and issues no fetch call.
func (s *Service) Lookup(ctx context.Context, topic string) ([]types.ArticleSummary, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, types.Invalid("topic is required")
	}

	ids, err := s.provider.SearchIDs(ctx, topic, s.maxResults)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, types.NotFound("no articles found")
	}

	return s.provider.FetchSummaries(ctx, ids)
}

var _ Provider = (*PubMedClient)(nil)
