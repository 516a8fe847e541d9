package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/volkernhq/volkern-mcp/pkg/resultutil"
)

// CurrentTimeOutput defines the output schema for the get_current_time tool.
type CurrentTimeOutput struct {
	Fecha   string `json:"fecha" jsonschema:"description=Current date in YYYY-MM-DD format, ready for fecha parameters"`
	Hora    string `json:"hora" jsonschema:"description=Current time in HH:MM 24h format, ready for hora parameters"`
	RFC3339 string `json:"rfc3339" jsonschema:"description=Current date and time in RFC3339 format (UTC)"`
}

func CreateGetCurrentTimeTool() mcp.Tool {
	tool := mcp.NewTool("get_current_time",
		mcp.WithDescription(`Get the current date and time.

Call this before interpreting relative date expressions like "hoy", "mañana" or "el viernes" - the 'fecha' and 'hora' fields are already in the format the scheduling tools expect.`),
		mcp.WithTitleAnnotation("Get Current Time"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithOutputSchema[CurrentTimeOutput](),
	)
	// workaround for tool with no parameter
	// see https://github.com/containers/kubernetes-mcp-server/pull/341/files#diff-8f8a99cac7a7cbb9c14477d40539efa1494b62835603244ba9f10e6be1c7e44c
	tool.InputSchema = mcp.ToolInputSchema{}
	tool.RawInputSchema = []byte(`{"type":"object","properties":{}}`)
	return tool
}

// CurrentTimeHandler answers get_current_time locally; it is the one tool
// that performs no API call.
func CurrentTimeHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	now := time.Now().UTC()
	return resultutil.NewSuccessResult(CurrentTimeOutput{
		Fecha:   now.Format("2006-01-02"),
		Hora:    now.Format("15:04"),
		RFC3339: now.Format(time.RFC3339),
	}).ToMCPResult()
}
