// Package volkern provides the HTTP client used to reach the Volkern CRM
// REST API. Every tool invocation maps to exactly one call through this
// package.
package volkern

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	promapi "github.com/prometheus/client_golang/api"
	promcfg "github.com/prometheus/common/config"

	"github.com/volkernhq/volkern-mcp/pkg/config"
)

// DefaultRequestTimeout bounds a single API call end to end.
const DefaultRequestTimeout = 30 * time.Second

// RequestSpec describes one call against the Volkern API. A spec is
// derived from a single tool invocation and lives only for that dispatch.
type RequestSpec struct {
	// Path is the endpoint path relative to the API base URL, with any
	// path parameters already interpolated (e.g. "/leads/abc123").
	Path string
	// Method is the HTTP method to use.
	Method string
	// Query holds query-string parameters, already stringified.
	Query map[string]string
	// Body is the JSON request body. Nil means no body is sent; an empty
	// map still sends "{}".
	Body map[string]any
}

// API is the transport collaborator the dispatcher performs calls
// through. Execute returns the raw JSON payload of a 2xx response; every
// other outcome is an error.
type API interface {
	Execute(ctx context.Context, spec RequestSpec) (json.RawMessage, error)
}

// Client is the production API implementation. A single instance reuses
// one underlying HTTP client and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Ensure Client implements API at compile time
var _ API = (*Client)(nil)

// NewClient builds the API client from startup configuration. The bearer
// token is attached to every request by a credentials round tripper, so
// no call site can forget it.
func NewClient(cfg config.Config) *Client {
	rt := promapi.DefaultRoundTripper.(*http.Transport).Clone()
	if cfg.Insecure {
		rt.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	var roundTripper http.RoundTripper = rt
	if cfg.APIToken != "" {
		roundTripper = promcfg.NewAuthorizationCredentialsRoundTripper(
			"Bearer", promcfg.NewInlineSecret(cfg.APIToken), rt)
	}

	return &Client{
		httpClient: &http.Client{
			Transport: roundTripper,
			Timeout:   DefaultRequestTimeout,
		},
		baseURL: strings.TrimSuffix(cfg.APIURL, "/"),
	}
}

// Execute performs the described request and returns the response body.
func (c *Client) Execute(ctx context.Context, spec RequestSpec) (json.RawMessage, error) {
	var payload io.Reader = http.NoBody
	if spec.Body != nil {
		encoded, err := json.Marshal(spec.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, c.baseURL+spec.Path, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if spec.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if len(spec.Query) > 0 {
		q := req.URL.Query()
		for key, value := range spec.Query {
			q.Set(key, value)
		}
		req.URL.RawQuery = q.Encode()
	}

	return c.doRequest(req)
}

func (c *Client) doRequest(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, errorBody(bodyBytes))
	}

	// volkern.app answers with its login page when the token is missing or
	// expired instead of a JSON error
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return nil, fmt.Errorf("invalid authentication token")
	}

	if !json.Valid(bodyBytes) {
		return nil, fmt.Errorf("invalid JSON in response: %s", string(bodyBytes))
	}

	return bodyBytes, nil
}

// errorBody relays whatever JSON the API attached to an error status; a
// non-JSON or empty error body collapses to an empty object.
func errorBody(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return "{}"
	}
	return string(trimmed)
}
