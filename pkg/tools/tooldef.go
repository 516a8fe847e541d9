package tools

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/mark3labs/mcp-go/mcp"
)

// ParamDef defines a tool parameter
type ParamDef struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	Pattern     string
	Enum        []string
}

// ParamType represents the type of a parameter
type ParamType string

const (
	ParamTypeString      ParamType = "string"
	ParamTypeNumber      ParamType = "number"
	ParamTypeBoolean     ParamType = "boolean"
	ParamTypeStringArray ParamType = "string-array"
	ParamTypeObject      ParamType = "object"
)

// ToolDef defines a tool that can be converted to different formats (MCP, JSON Schema, etc.)
type ToolDef struct {
	Name        string
	Description string
	Title       string
	Params      []ParamDef
	ReadOnly    bool
	Destructive bool
	Idempotent  bool
	OpenWorld   bool
}

// ToMCPTool converts a ToolDef to an mcp.Tool
func (d ToolDef) ToMCPTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(d.Description),
		mcp.WithTitleAnnotation(d.Title),
		mcp.WithReadOnlyHintAnnotation(d.ReadOnly),
		mcp.WithDestructiveHintAnnotation(d.Destructive),
		mcp.WithIdempotentHintAnnotation(d.Idempotent),
		mcp.WithOpenWorldHintAnnotation(d.OpenWorld),
	}

	for _, param := range d.Params {
		propOpts := []mcp.PropertyOption{mcp.Description(param.Description)}
		if param.Required {
			propOpts = append(propOpts, mcp.Required())
		}

		switch param.Type {
		case ParamTypeString:
			if param.Pattern != "" {
				propOpts = append(propOpts, mcp.Pattern(param.Pattern))
			}
			if len(param.Enum) > 0 {
				propOpts = append(propOpts, mcp.Enum(param.Enum...))
			}
			opts = append(opts, mcp.WithString(param.Name, propOpts...))

		case ParamTypeNumber:
			opts = append(opts, mcp.WithNumber(param.Name, propOpts...))

		case ParamTypeBoolean:
			opts = append(opts, mcp.WithBoolean(param.Name, propOpts...))

		case ParamTypeStringArray:
			propOpts = append(propOpts, mcp.Items(map[string]any{"type": "string"}))
			opts = append(opts, mcp.WithArray(param.Name, propOpts...))

		case ParamTypeObject:
			opts = append(opts, mcp.WithObject(param.Name, propOpts...))
		}
	}

	tool := mcp.NewTool(d.Name, opts...)

	// Workaround for tools with no parameters
	// See https://github.com/containers/kubernetes-mcp-server/pull/341/files
	if len(d.Params) == 0 {
		tool.InputSchema = mcp.ToolInputSchema{}
		tool.RawInputSchema = []byte(`{"type":"object","properties":{}}`)
	}

	return tool
}

// InputSchema renders the tool's parameters as a JSON Schema object. This
// is the listing-contract view consumed by the documentation generator.
func (d ToolDef) InputSchema() *jsonschema.Schema {
	properties := make(map[string]*jsonschema.Schema)
	var required []string

	for _, param := range d.Params {
		schema := &jsonschema.Schema{
			Description: param.Description,
		}

		switch param.Type {
		case ParamTypeString:
			schema.Type = "string"
			if param.Pattern != "" {
				schema.Pattern = param.Pattern
			}
			if len(param.Enum) > 0 {
				schema.Enum = make([]any, len(param.Enum))
				for i, value := range param.Enum {
					schema.Enum[i] = value
				}
			}
		case ParamTypeNumber:
			schema.Type = "number"
		case ParamTypeBoolean:
			schema.Type = "boolean"
		case ParamTypeStringArray:
			schema.Type = "array"
			schema.Items = &jsonschema.Schema{Type: "string"}
		case ParamTypeObject:
			schema.Type = "object"
		}

		properties[param.Name] = schema

		if param.Required {
			required = append(required, param.Name)
		}
	}

	inputSchema := &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
	}

	if len(required) > 0 {
		inputSchema.Required = required
	}

	return inputSchema
}
