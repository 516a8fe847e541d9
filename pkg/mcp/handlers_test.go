package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/volkernhq/volkern-mcp/pkg/tools"
	"github.com/volkernhq/volkern-mcp/pkg/volkern"
)

// MockedAPI is a mock implementation of volkern.API for testing
type MockedAPI struct {
	ExecuteFunc func(ctx context.Context, spec volkern.RequestSpec) (json.RawMessage, error)
}

func (m *MockedAPI) Execute(ctx context.Context, spec volkern.RequestSpec) (json.RawMessage, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, spec)
	}
	return json.RawMessage(`{}`), nil
}

// Ensure MockedAPI implements volkern.API at compile time
var _ volkern.API = (*MockedAPI)(nil)

// newMockRequest creates a CallToolRequest with the given parameters
func newMockRequest(name string, params map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: params,
		},
	}
}

func newTestDispatcher(api volkern.API) *tools.Dispatcher {
	return tools.NewDispatcher(api)
}

func getTextContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("expected result content, got none")
		return ""
	}
	switch content := result.Content[0].(type) {
	case mcp.TextContent:
		return content.Text
	default:
		return fmt.Sprintf("%v", content)
	}
}

func TestToolHandler_Success(t *testing.T) {
	mockAPI := &MockedAPI{
		ExecuteFunc: func(ctx context.Context, spec volkern.RequestSpec) (json.RawMessage, error) {
			return json.RawMessage(`{"leads":[{"id":"lead-001","nombre":"Juan"}],"total":1}`), nil
		},
	}

	handler := ToolHandler(newTestDispatcher(mockAPI), "volkern_list_leads")
	result, err := handler(context.Background(), newMockRequest("volkern_list_leads", map[string]any{"estado": "nuevo"}))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got error: %s", getTextContent(t, result))
	}

	text := getTextContent(t, result)
	if text != `{"leads":[{"id":"lead-001","nombre":"Juan"}],"total":1}` {
		t.Errorf("expected the remote payload verbatim, got %q", text)
	}
}

func TestToolHandler_ForwardsArguments(t *testing.T) {
	var gotSpec volkern.RequestSpec
	mockAPI := &MockedAPI{
		ExecuteFunc: func(ctx context.Context, spec volkern.RequestSpec) (json.RawMessage, error) {
			gotSpec = spec
			return json.RawMessage(`{"id":"cita-1"}`), nil
		},
	}

	handler := ToolHandler(newTestDispatcher(mockAPI), "volkern_update_cita")
	result, err := handler(context.Background(), newMockRequest("volkern_update_cita", map[string]any{
		"citaId": "cita-1",
		"estado": "confirmada",
	}))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got error: %s", getTextContent(t, result))
	}

	if gotSpec.Method != http.MethodPatch {
		t.Errorf("expected PATCH, got %s", gotSpec.Method)
	}
	if gotSpec.Path != "/citas/cita-1" {
		t.Errorf("expected path /citas/cita-1, got %q", gotSpec.Path)
	}
	if gotSpec.Body["estado"] != "confirmada" {
		t.Errorf("expected estado in body, got %v", gotSpec.Body)
	}
	if _, present := gotSpec.Body["citaId"]; present {
		t.Error("citaId must not appear in the body")
	}
}

func TestToolHandler_UnknownTool(t *testing.T) {
	// Simulates a handler registered for a name missing from the catalog
	handler := ToolHandler(newTestDispatcher(&MockedAPI{}), "volkern_bogus")
	result, err := handler(context.Background(), newMockRequest("volkern_bogus", nil))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}

	text := getTextContent(t, result)
	if text != "Error: Unknown tool: volkern_bogus" {
		t.Errorf("expected 'Error: Unknown tool: volkern_bogus', got %q", text)
	}
}

func TestToolHandler_MissingRequiredParam(t *testing.T) {
	handler := ToolHandler(newTestDispatcher(&MockedAPI{}), "volkern_create_lead")
	result, err := handler(context.Background(), newMockRequest("volkern_create_lead", map[string]any{}))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}

	text := getTextContent(t, result)
	if text != "Error: nombre parameter is required" {
		t.Errorf("expected 'Error: nombre parameter is required', got %q", text)
	}
}

func TestToolHandler_RemoteRejection(t *testing.T) {
	mockAPI := &MockedAPI{
		ExecuteFunc: func(ctx context.Context, spec volkern.RequestSpec) (json.RawMessage, error) {
			return nil, fmt.Errorf("request failed with status 409: %s", `{"error":"slot_taken"}`)
		},
	}

	handler := ToolHandler(newTestDispatcher(mockAPI), "volkern_create_cita")
	result, err := handler(context.Background(), newMockRequest("volkern_create_cita", map[string]any{
		"leadId": "lead-1",
		"fecha":  "2025-03-07",
		"hora":   "10:30",
	}))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}

	text := getTextContent(t, result)
	if text != `Error: request failed with status 409: {"error":"slot_taken"}` {
		t.Errorf("unexpected error text: %q", text)
	}
}

func TestToolHandler_TransportFailure(t *testing.T) {
	mockAPI := &MockedAPI{
		ExecuteFunc: func(ctx context.Context, spec volkern.RequestSpec) (json.RawMessage, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	}

	handler := ToolHandler(newTestDispatcher(mockAPI), "volkern_list_servicios")
	result, err := handler(context.Background(), newMockRequest("volkern_list_servicios", nil))

	// Transport failures surface in the result envelope, never as a Go error
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
	if getTextContent(t, result) != "Error: dial tcp: connection refused" {
		t.Errorf("unexpected error text: %q", getTextContent(t, result))
	}
}

func TestToolHandler_NilArguments(t *testing.T) {
	mockAPI := &MockedAPI{
		ExecuteFunc: func(ctx context.Context, spec volkern.RequestSpec) (json.RawMessage, error) {
			if len(spec.Query) != 0 {
				t.Errorf("expected empty query, got %v", spec.Query)
			}
			return json.RawMessage(`{"leads":[]}`), nil
		},
	}

	handler := ToolHandler(newTestDispatcher(mockAPI), "volkern_list_leads")
	result, err := handler(context.Background(), newMockRequest("volkern_list_leads", nil))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got error: %s", getTextContent(t, result))
	}
}

func TestRequestArguments_NonObjectPayload(t *testing.T) {
	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "volkern_list_leads",
			Arguments: "not an object",
		},
	}

	if args := requestArguments(req); args != nil {
		t.Errorf("expected nil args for non-object payload, got %v", args)
	}
}
