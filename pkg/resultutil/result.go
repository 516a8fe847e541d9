package resultutil

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Result represents a common tool execution result that can be converted
// to an MCP result.
type Result struct {
	// Data holds the structured result data (only set for successful results)
	Data any
	// JSONText holds the JSON string representation of Data
	JSONText string
	// Error holds any error that occurred (nil for successful results)
	Error error
}

// NewSuccessResult creates a successful result with structured data.
// The data will be automatically marshaled to JSON.
// If marshaling fails, an error result is returned instead.
func NewSuccessResult(data any) *Result {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return &Result{
			Error: fmt.Errorf("failed to marshal result: %w", err),
		}
	}

	return &Result{
		Data:     data,
		JSONText: string(jsonBytes),
	}
}

// NewRawResult creates a successful result from a raw JSON payload,
// keeping the payload text verbatim. Numbers are decoded as json.Number
// so numeric identifiers survive the round trip unchanged.
// If the payload is not valid JSON, an error result is returned instead.
func NewRawResult(raw json.RawMessage) *Result {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var data any
	if err := decoder.Decode(&data); err != nil {
		return &Result{
			Error: fmt.Errorf("failed to decode response: %w", err),
		}
	}

	return &Result{
		Data:     data,
		JSONText: string(raw),
	}
}

// NewErrorResult creates an error result with the given error.
func NewErrorResult(err error) *Result {
	return &Result{
		Error: err,
	}
}

// ToMCPResult converts the Result to an MCP CallToolResult.
// Returns (result, nil) following the MCP pattern where errors
// are encoded in the result, not the error return value.
// Error text always carries the "Error: " prefix clients key on.
func (r *Result) ToMCPResult() (*mcp.CallToolResult, error) {
	if r.Error != nil {
		//nolint:nilerr // MCP pattern encodes errors in result, not error return
		return mcp.NewToolResultError("Error: " + r.Error.Error()), nil
	}
	return mcp.NewToolResultStructured(r.Data, r.JSONText), nil
}

// IsError returns true if the result represents an error.
func (r *Result) IsError() bool {
	return r.Error != nil
}
