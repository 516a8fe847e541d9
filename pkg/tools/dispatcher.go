package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/volkernhq/volkern-mcp/pkg/resultutil"
	"github.com/volkernhq/volkern-mcp/pkg/volkern"
)

// Dispatcher turns one tool invocation into one Volkern API call and a
// uniform result envelope. It holds no mutable state: a single instance
// is safe for concurrent use as long as the underlying API client is.
type Dispatcher struct {
	api volkern.API
}

// NewDispatcher creates a dispatcher backed by the given API client.
func NewDispatcher(api volkern.API) *Dispatcher {
	return &Dispatcher{api: api}
}

// Invoke dispatches a tool call by name. Every failure mode - unknown
// tool, missing parameter, rejected or unreachable remote - is reported
// through the returned envelope; Invoke never panics and never returns
// nil.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args map[string]any) *resultutil.Result {
	def, ok := FindTool(name)
	if !ok {
		//nolint:staticcheck // the capitalized message is part of the client-facing contract
		return resultutil.NewErrorResult(fmt.Errorf("Unknown tool: %s", name))
	}

	for _, param := range def.Params {
		if !param.Required {
			continue
		}
		if value, present := args[param.Name]; !present || value == nil {
			return resultutil.NewErrorResult(fmt.Errorf("%s parameter is required", param.Name))
		}
	}

	spec, err := BuildRequestSpec(name, args)
	if err != nil {
		return resultutil.NewErrorResult(err)
	}

	slog.Debug("Dispatching tool call", "tool", name, "method", spec.Method, "path", spec.Path)

	raw, err := d.api.Execute(ctx, spec)
	if err != nil {
		return resultutil.NewErrorResult(err)
	}

	return resultutil.NewRawResult(raw)
}
