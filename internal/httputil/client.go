// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil is the shared external-call adapter. Every provider
// client issues exactly one bounded request per call through Do and gets
// a classified error back. Nothing here retries; each pipeline surfaces
// a failure once and stops.
package httputil

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/pdiddy/care-navigator/pkg/types"
)

// DefaultTimeout is the request bound applied when configuration
// supplies none. Matches the bound every pipeline is specified against.
const DefaultTimeout = 10 * time.Second

// NewClient returns an *http.Client with the shared timeout bound.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Get issues one GET with the fixed identifying User-Agent and returns
// the raw body. Failures come back classified (timeout vs transport vs
// HTTP status); parse failures are the caller's to classify via
// DecodeJSON/DecodeXML.
func Get(ctx context.Context, client *http.Client, rawURL, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, types.NewError(types.KindNetworkFailure, "creating request", err)
	}
	req.Header.Set("User-Agent", userAgent)
	return Do(client, req)
}

// Do executes req and classifies the outcome. A 2xx status yields the
// body; anything else yields a types.Error with the appropriate kind.
func Do(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, types.NewError(types.KindNetworkTimeout, "request timed out", err)
		}
		return nil, types.NewError(types.KindNetworkFailure, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, types.NewError(types.KindNetworkFailure, "reading response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, types.NewError(types.KindNetworkFailure,
			fmt.Sprintf("provider returned HTTP %d", resp.StatusCode), nil)
	}

	return body, nil
}

// DecodeJSON parses data into v, classifying failure as a malformed
// response.
func DecodeJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return types.NewError(types.KindMalformedResponse, "parsing JSON response", err)
	}
	return nil
}

// DecodeXML parses data into v, classifying failure as a malformed
// response.
func DecodeXML(data []byte, v any) error {
	if err := xml.Unmarshal(data, v); err != nil {
		return types.NewError(types.KindMalformedResponse, "parsing XML response", err)
	}
	return nil
}

// isTimeout reports whether err is a deadline or network timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
