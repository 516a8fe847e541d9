package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/volkernhq/volkern-mcp/pkg/tools"
)

// ToolHandler builds the mcp-go handler for one catalog tool. Every tool
// shares this adapter: it extracts the argument object, hands it to the
// dispatcher, and reports the envelope back, recording metrics either
// way.
func ToolHandler(dispatcher *tools.Dispatcher, name string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := requestArguments(req)

		slog.Info("Tool call received", "tool", name)
		slog.Debug("Tool call arguments", "tool", name, "args", args)

		start := time.Now()
		result := dispatcher.Invoke(ctx, name, args)
		elapsed := time.Since(start)
		observeToolCall(name, result.IsError(), elapsed)

		if result.IsError() {
			slog.Error("Tool call failed", "tool", name, "error", result.Error)
		} else {
			slog.Info("Tool call completed", "tool", name, "duration", elapsed)
		}

		return result.ToMCPResult()
	}
}

// requestArguments pulls the raw argument object out of a call request.
// A missing or non-object argument payload counts as no arguments; the
// dispatcher's required-parameter checks take it from there.
func requestArguments(req mcp.CallToolRequest) map[string]any {
	if req.Params.Arguments == nil {
		return nil
	}
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	return args
}
