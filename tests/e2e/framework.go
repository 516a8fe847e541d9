//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/volkernhq/volkern-mcp/pkg/config"
	"github.com/volkernhq/volkern-mcp/pkg/mcp"
	"github.com/volkernhq/volkern-mcp/pkg/tools"
	"github.com/volkernhq/volkern-mcp/pkg/volkern"
)

const (
	testAPIToken   = "e2e-test-token"
	defaultTimeout = 30 * time.Second
)

// TestConfig holds configuration and runtime state for e2e tests
type TestConfig struct {
	Timeout time.Duration

	// Runtime state
	MCPURL    string
	backend   *httptest.Server
	mcpHTTP   *httptest.Server
	cleanedUp bool
}

// NewTestConfig creates a new TestConfig with defaults
func NewTestConfig() *TestConfig {
	config := &TestConfig{
		Timeout: defaultTimeout,
	}
	fmt.Printf("Test config: timeout=%v\n", config.Timeout)
	return config
}

// Setup starts a fake Volkern API and the full MCP HTTP stack against it
func (c *TestConfig) Setup(ctx context.Context) error {
	c.backend = newFakeVolkernAPI(testAPIToken)

	cfg := config.Config{
		APIURL:   c.backend.URL,
		APIToken: testAPIToken,
	}

	dispatcher := tools.NewDispatcher(volkern.NewClient(cfg))
	mcpServer, err := mcp.NewMCPServer(dispatcher)
	if err != nil {
		c.Cleanup()
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	streamableServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	mux := http.NewServeMux()
	mux.Handle(mcpEndpoint, streamableServer)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	})

	c.mcpHTTP = httptest.NewServer(mux)
	c.MCPURL = c.mcpHTTP.URL

	// Wait for service to be ready
	if err := c.waitForReady(ctx, c.MCPURL+"/health"); err != nil {
		c.Cleanup()
		return fmt.Errorf("failed waiting for volkern-mcp: %w", err)
	}

	fmt.Printf("volkern-mcp is ready at %s\n", c.MCPURL)
	return nil
}

// Cleanup stops the test servers. Safe to call multiple times.
func (c *TestConfig) Cleanup() {
	if c.cleanedUp {
		return
	}
	c.cleanedUp = true
	if c.mcpHTTP != nil {
		c.mcpHTTP.Close()
	}
	if c.backend != nil {
		c.backend.Close()
	}
}

// waitForReady polls the target URL until it returns HTTP 200, timeout occurs, or context is cancelled
func (c *TestConfig) waitForReady(ctx context.Context, targetURL string) error {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	fmt.Printf("Waiting for %s to be ready (timeout: %v)\n", targetURL, c.Timeout)
	attempt := 0
	var lastErr error
	for {
		select {
		case <-ctx.Done():
			if ctx.Err() == context.Canceled {
				return fmt.Errorf("cancelled waiting for %s", targetURL)
			}
			return fmt.Errorf("timeout waiting for %s to be ready (last error: %v)", targetURL, lastErr)
		case <-ticker.C:
			attempt++
			resp, err := http.Get(targetURL)
			if err != nil {
				lastErr = err
				continue
			}
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				fmt.Printf("Health check succeeded after %d attempts\n", attempt)
				return nil
			}
			lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
	}
}

// newFakeVolkernAPI serves a small fixed CRM dataset the way api.volkern.app
// does: bearer-token auth, JSON bodies, JSON error payloads on rejection
func newFakeVolkernAPI(token string) *httptest.Server {
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, body string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}

	mux.HandleFunc("GET /leads", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"leads":[{"id":"lead-001","nombre":"Juan Pérez","estado":"nuevo","telefono":"+34600111222"}],"total":1}`)
	})
	mux.HandleFunc("GET /leads/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "lead-001" {
			writeJSON(w, http.StatusNotFound, `{"error":"lead_not_found"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"id":"lead-001","nombre":"Juan Pérez","estado":"nuevo","telefono":"+34600111222"}`)
	})
	mux.HandleFunc("POST /leads", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, `{"error":"invalid_body"}`)
			return
		}
		if _, ok := body["nombre"]; !ok {
			writeJSON(w, http.StatusBadRequest, `{"error":"nombre_required"}`)
			return
		}
		writeJSON(w, http.StatusCreated, `{"id":"lead-new","nombre":"Ana García","estado":"nuevo"}`)
	})
	mux.HandleFunc("GET /citas/disponibilidad", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fecha") == "" {
			writeJSON(w, http.StatusBadRequest, `{"error":"fecha_required"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"fecha":"2025-03-07","slots":["09:00","10:30","16:00"]}`)
	})
	mux.HandleFunc("POST /citas", func(w http.ResponseWriter, r *http.Request) {
		// The happy path is covered by unit tests; here the interesting
		// case is the remote rejecting an occupied slot
		writeJSON(w, http.StatusConflict, `{"error":"slot_taken"}`)
	})
	mux.HandleFunc("GET /servicios", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"servicios":[{"id":"srv-01","nombre":"Lavado premium","precio":49.9}]}`)
	})

	authenticated := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			writeJSON(w, http.StatusUnauthorized, `{"error":"unauthorized"}`)
			return
		}
		mux.ServeHTTP(w, r)
	})

	return httptest.NewServer(authenticated)
}
