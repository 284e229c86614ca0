// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package qa surfaces single-span answers from an extractive
// question-answering inference endpoint, always against one fixed
// reference passage. Endpoint availability is probed once at startup
// and cached for the process lifetime.
package qa

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pdiddy/care-navigator/internal/httputil"
	"github.com/pdiddy/care-navigator/pkg/types"
)

// ReferencePassage is the curated context every question is answered
// against.
const ReferencePassage = "Cancer is a group of diseases characterized by the uncontrolled growth and spread of abnormal cells. " +
	"There are over 100 different types of cancer. Treatment options vary and may include surgery, chemotherapy, radiation therapy, " +
	"targeted therapy, immunotherapy, or a combination of these. Early detection and accurate diagnosis are crucial for better outcomes. " +
	"Various support services exist to help patients cope with the physical, emotional, and financial challenges of cancer."

// probeQuestion is the fixed question used to check the endpoint once
// at startup.
const probeQuestion = "What is cancer?"

// Answer is one extracted answer span. Confidence metadata is carried
// for logging but never shown to the user.
type Answer struct {
	Text  string  `json:"text"`
	Score float64 `json:"score,omitempty"`
}

// Service holds the inference client and the cached availability flag.
type Service struct {
	client    *http.Client
	config    types.QAConfig
	available bool
}

// NewService builds the capability. It is unavailable until Probe
// succeeds.
func NewService(cfg types.QAConfig) *Service {
	return &Service{
		client: httputil.NewClient(cfg.Timeout),
		config: cfg,
	}
}

// Probe checks the endpoint once with a fixed question and caches the
// outcome. A failed probe leaves the capability permanently
// unavailable for this process; callers see KindCapabilityUnavailable
// until restart.
func (s *Service) Probe(ctx context.Context) error {
	if s.config.EndpointURL == "" {
		return types.NewError(types.KindCapabilityUnavailable, "question answering is not configured", nil)
	}
	if _, err := s.infer(ctx, probeQuestion); err != nil {
		return types.NewError(types.KindCapabilityUnavailable, "question answering is not available", err)
	}
	s.available = true
	return nil
}

// Available reports the cached probe outcome.
func (s *Service) Available() bool { return s.available }

// Ask answers question against the reference passage. The capability
// must have probed successfully; a blank question is rejected before
// any call.
func (s *Service) Ask(ctx context.Context, question string) (Answer, error) {
	if strings.TrimSpace(question) == "" {
		return Answer{}, types.Invalid("question is required")
	}
	if !s.available {
		return Answer{}, types.NewError(types.KindCapabilityUnavailable, "question answering is not available", nil)
	}
	return s.infer(ctx, question)
}

func (s *Service) infer(ctx context.Context, question string) (Answer, error) {
	payload, err := json.Marshal(inferRequest{Question: question, Context: ReferencePassage})
	if err != nil {
		return Answer{}, types.NewError(types.KindNetworkFailure, "encoding inference request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.EndpointURL, bytes.NewReader(payload))
	if err != nil {
		return Answer{}, types.NewError(types.KindNetworkFailure, "creating request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", s.config.UserAgent)
	if s.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	}

	body, err := httputil.Do(s.client, req)
	if err != nil {
		return Answer{}, err
	}
	return extractAnswer(body)
}

// extractAnswer normalizes the inference response. Endpoints answer
// with either one object or a ranked list of objects; only the best
// span is kept either way.
func extractAnswer(body []byte) (Answer, error) {
	var single inferResponse
	if err := json.Unmarshal(body, &single); err == nil && single.Answer != "" {
		return Answer{Text: single.Answer, Score: single.Score}, nil
	}

	var ranked []inferResponse
	if err := json.Unmarshal(body, &ranked); err == nil && len(ranked) > 0 && ranked[0].Answer != "" {
		return Answer{Text: ranked[0].Answer, Score: ranked[0].Score}, nil
	}

	return Answer{}, types.NewError(types.KindMalformedResponse, "parsing inference response", nil)
}

type inferRequest struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

type inferResponse struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
}
