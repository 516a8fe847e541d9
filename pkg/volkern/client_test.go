package volkern

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/volkernhq/volkern-mcp/pkg/config"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.Config{
		APIURL:   serverURL,
		APIToken: "test-token",
	})
}

func TestExecuteSendsBearerToken(t *testing.T) {
	var gotAuth, gotAccept, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"leads":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	raw, err := client.Execute(context.Background(), RequestSpec{Path: "/leads", Method: http.MethodGet})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("Expected Authorization 'Bearer test-token', got %q", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Errorf("Expected Accept 'application/json', got %q", gotAccept)
	}
	if gotContentType != "" {
		t.Errorf("Expected no Content-Type on GET, got %q", gotContentType)
	}
	if string(raw) != `{"leads":[]}` {
		t.Errorf("Expected raw body to be relayed verbatim, got %q", string(raw))
	}
}

func TestExecuteEncodesBody(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"lead-001"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Execute(context.Background(), RequestSpec{
		Path:   "/leads",
		Method: http.MethodPost,
		Body:   map[string]any{"nombre": "Juan"},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("Expected POST, got %s", gotMethod)
	}
	if gotPath != "/leads" {
		t.Errorf("Expected path /leads, got %s", gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %q", gotContentType)
	}

	var decoded map[string]any
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatalf("Request body is not valid JSON: %v", err)
	}
	if decoded["nombre"] != "Juan" {
		t.Errorf("Expected body to carry nombre=Juan, got %v", decoded)
	}
}

func TestExecuteSendsEmptyObjectBody(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Execute(context.Background(), RequestSpec{
		Path:   "/leads/abc",
		Method: http.MethodPatch,
		Body:   map[string]any{},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if string(gotBody) != "{}" {
		t.Errorf("Expected empty object body {}, got %q", string(gotBody))
	}
}

func TestExecuteEncodesQuery(t *testing.T) {
	var gotRawQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Execute(context.Background(), RequestSpec{
		Path:   "/leads",
		Method: http.MethodGet,
		Query:  map[string]string{"estado": "nuevo", "page": "2"},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if gotRawQuery != "estado=nuevo&page=2" {
		t.Errorf("Expected query 'estado=nuevo&page=2', got %q", gotRawQuery)
	}
}

func TestExecuteRelaysErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"slot_taken"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Execute(context.Background(), RequestSpec{Path: "/citas", Method: http.MethodPost, Body: map[string]any{}})
	if err == nil {
		t.Fatal("Expected error for 409 response, got nil")
	}

	msg := err.Error()
	if !strings.Contains(msg, "409") {
		t.Errorf("Expected error to contain status 409, got %q", msg)
	}
	if !strings.Contains(msg, "slot_taken") {
		t.Errorf("Expected error to contain remote error body, got %q", msg)
	}
}

func TestExecuteErrorStatusWithNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Execute(context.Background(), RequestSpec{Path: "/leads", Method: http.MethodGet})
	if err == nil {
		t.Fatal("Expected error for 500 response, got nil")
	}

	msg := err.Error()
	if !strings.Contains(msg, "500") {
		t.Errorf("Expected error to contain status 500, got %q", msg)
	}
	if !strings.Contains(msg, "{}") {
		t.Errorf("Expected non-JSON error body to collapse to {}, got %q", msg)
	}
}

func TestExecuteRejectsInvalidJSONOnSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Execute(context.Background(), RequestSpec{Path: "/leads", Method: http.MethodGet})
	if err == nil {
		t.Fatal("Expected error for invalid JSON response, got nil")
	}
	if !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("Expected invalid JSON error, got %q", err.Error())
	}
}

func TestExecuteDetectsLoginPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>Log in</body></html>"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Execute(context.Background(), RequestSpec{Path: "/leads", Method: http.MethodGet})
	if err == nil {
		t.Fatal("Expected error for HTML response, got nil")
	}
	if !strings.Contains(err.Error(), "invalid authentication token") {
		t.Errorf("Expected authentication error, got %q", err.Error())
	}
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(config.Config{APIURL: server.URL + "/", APIToken: "test-token"})
	_, err := client.Execute(context.Background(), RequestSpec{Path: "/leads", Method: http.MethodGet})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if gotPath != "/leads" {
		t.Errorf("Expected path /leads, got %q", gotPath)
	}
}

func TestExecuteHonorsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(server.URL)
	_, err := client.Execute(ctx, RequestSpec{Path: "/leads", Method: http.MethodGet})
	if err == nil {
		t.Fatal("Expected error for cancelled context, got nil")
	}
}
