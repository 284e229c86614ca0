// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package trials implements the clinical-trial finder pipeline: a
// structured query built from condition, location, and phase runs
// against a trials registry and yields flattened study records.
package trials

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/care-navigator/internal/httputil"
	"github.com/pdiddy/care-navigator/pkg/types"
)

// PhaseAll is the phase selection that adds no phase clause.
const PhaseAll = "All"

// defaultMaxResults bounds a registry search when the configuration
// does not.
const defaultMaxResults = 20

// Registry is the trials provider the pipeline runs against.
type Registry interface {
	Search(ctx context.Context, expr string, max int) ([]types.TrialRecord, error)
}

// Query is the structured trial search input.
type Query struct {
	Condition string
	Location  string
	Phase     string
}

// BuildQuery conjoins the query fields into typed clauses. The phase
// clause is omitted when the phase is PhaseAll or blank.
func BuildQuery(q Query) string {
	expr := fmt.Sprintf("%s[Condition] AND %s[Location]", q.Condition, q.Location)
	phase := strings.TrimSpace(q.Phase)
	if phase != "" && phase != PhaseAll {
		expr += fmt.Sprintf(" AND %s[Phase]", phase)
	}
	return expr
}

// Service runs structured queries against the registry.
type Service struct {
	registry   Registry
	maxResults int
}

// NewService builds the pipeline against the configured registry.
func NewService(cfg types.TrialsConfig) *Service {
	max := cfg.MaxResults
	if max <= 0 {
		max = defaultMaxResults
	}
	return &Service{
		registry:   &RegistryClient{Client: httputil.NewClient(cfg.Timeout), Config: cfg},
		maxResults: max,
	}
}

// NewServiceWith builds the pipeline against an explicit registry.
func NewServiceWith(r Registry, maxResults int) *Service {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	return &Service{registry: r, maxResults: maxResults}
}

// Find runs the pipeline for q. Condition and location are required;
// zero matches terminate with "no trials found".
func (s *Service) Find(ctx context.Context, q Query) ([]types.TrialRecord, error) {
	if strings.TrimSpace(q.Condition) == "" {
		return nil, types.Invalid("condition is required")
	}
	if strings.TrimSpace(q.Location) == "" {
		return nil, types.Invalid("location is required")
	}

	records, err := s.registry.Search(ctx, BuildQuery(q), s.maxResults)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, types.NotFound("no trials found")
	}
	return records, nil
}

var _ Registry = (*RegistryClient)(nil)
