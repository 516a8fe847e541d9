package tools

import (
	"testing"
)

// exampleDef exercises every parameter type the converter knows about.
var exampleDef = ToolDef{
	Name:        "example_tool",
	Description: "Example tool for conversion tests",
	Title:       "Example Tool",
	ReadOnly:    true,
	Destructive: false,
	Idempotent:  true,
	OpenWorld:   true,
	Params: []ParamDef{
		{Name: "id", Type: ParamTypeString, Description: "Identifier", Required: true},
		{Name: "estado", Type: ParamTypeString, Description: "State filter", Enum: []string{"uno", "dos"}},
		{Name: "fecha", Type: ParamTypeString, Description: "Date", Pattern: `^\d{4}-\d{2}-\d{2}$`},
		{Name: "page", Type: ParamTypeNumber, Description: "Page number"},
		{Name: "activo", Type: ParamTypeBoolean, Description: "Active flag"},
		{Name: "etiquetas", Type: ParamTypeStringArray, Description: "Labels"},
		{Name: "variables", Type: ParamTypeObject, Description: "Variable values"},
	},
}

func TestToMCPToolParamTypes(t *testing.T) {
	tool := exampleDef.ToMCPTool()

	if tool.Name != "example_tool" {
		t.Errorf("expected tool name example_tool, got %q", tool.Name)
	}
	if tool.Description != exampleDef.Description {
		t.Errorf("expected description to carry over, got %q", tool.Description)
	}

	expectedTypes := map[string]string{
		"id":        "string",
		"estado":    "string",
		"fecha":     "string",
		"page":      "number",
		"activo":    "boolean",
		"etiquetas": "array",
		"variables": "object",
	}

	for param, expectedType := range expectedTypes {
		prop, exists := tool.InputSchema.Properties[param]
		if !exists {
			t.Errorf("parameter %q not found in schema", param)
			continue
		}
		propMap, ok := prop.(map[string]any)
		if !ok {
			t.Errorf("parameter %q is not a map", param)
			continue
		}
		if propMap["type"] != expectedType {
			t.Errorf("parameter %q: expected type %q, got %v", param, expectedType, propMap["type"])
		}
	}

	if len(tool.InputSchema.Required) != 1 || tool.InputSchema.Required[0] != "id" {
		t.Errorf("expected only 'id' to be required, got %v", tool.InputSchema.Required)
	}

	estado := tool.InputSchema.Properties["estado"].(map[string]any)
	enum, ok := estado["enum"].([]string)
	if !ok {
		t.Fatalf("expected estado enum to be []string, got %T", estado["enum"])
	}
	if len(enum) != 2 || enum[0] != "uno" || enum[1] != "dos" {
		t.Errorf("expected enum [uno dos], got %v", enum)
	}

	fecha := tool.InputSchema.Properties["fecha"].(map[string]any)
	if fecha["pattern"] != `^\d{4}-\d{2}-\d{2}$` {
		t.Errorf("expected fecha pattern to carry over, got %v", fecha["pattern"])
	}

	etiquetas := tool.InputSchema.Properties["etiquetas"].(map[string]any)
	items, ok := etiquetas["items"].(map[string]any)
	if !ok {
		t.Fatalf("expected etiquetas items schema, got %T", etiquetas["items"])
	}
	if items["type"] != "string" {
		t.Errorf("expected string array items, got %v", items["type"])
	}
}

func TestToMCPToolAnnotations(t *testing.T) {
	tool := exampleDef.ToMCPTool()

	if tool.Annotations.Title != "Example Tool" {
		t.Errorf("expected title annotation, got %q", tool.Annotations.Title)
	}
	if tool.Annotations.ReadOnlyHint == nil || !*tool.Annotations.ReadOnlyHint {
		t.Error("expected ReadOnlyHint to be true")
	}
	if tool.Annotations.DestructiveHint == nil || *tool.Annotations.DestructiveHint {
		t.Error("expected DestructiveHint to be false")
	}
	if tool.Annotations.IdempotentHint == nil || !*tool.Annotations.IdempotentHint {
		t.Error("expected IdempotentHint to be true")
	}
	if tool.Annotations.OpenWorldHint == nil || !*tool.Annotations.OpenWorldHint {
		t.Error("expected OpenWorldHint to be true")
	}
}

func TestToMCPToolNoParams(t *testing.T) {
	def := ToolDef{
		Name:        "no_params_tool",
		Description: "Tool without parameters",
	}

	tool := def.ToMCPTool()

	if len(tool.RawInputSchema) == 0 {
		t.Fatal("expected raw input schema for parameterless tool")
	}
	if string(tool.RawInputSchema) != `{"type":"object","properties":{}}` {
		t.Errorf("unexpected raw input schema: %s", string(tool.RawInputSchema))
	}
}

func TestInputSchema(t *testing.T) {
	schema := exampleDef.InputSchema()

	if schema.Type != "object" {
		t.Errorf("expected object schema, got %q", schema.Type)
	}
	if len(schema.Properties) != len(exampleDef.Params) {
		t.Errorf("expected %d properties, got %d", len(exampleDef.Params), len(schema.Properties))
	}
	if len(schema.Required) != 1 || schema.Required[0] != "id" {
		t.Errorf("expected only 'id' to be required, got %v", schema.Required)
	}

	estado := schema.Properties["estado"]
	if estado == nil {
		t.Fatal("estado property missing")
	}
	if len(estado.Enum) != 2 || estado.Enum[0] != "uno" || estado.Enum[1] != "dos" {
		t.Errorf("expected enum [uno dos], got %v", estado.Enum)
	}

	fecha := schema.Properties["fecha"]
	if fecha == nil || fecha.Pattern != `^\d{4}-\d{2}-\d{2}$` {
		t.Error("expected fecha pattern to carry over")
	}

	etiquetas := schema.Properties["etiquetas"]
	if etiquetas == nil || etiquetas.Type != "array" {
		t.Fatal("expected etiquetas to be an array")
	}
	if etiquetas.Items == nil || etiquetas.Items.Type != "string" {
		t.Error("expected string array items")
	}

	page := schema.Properties["page"]
	if page == nil || page.Type != "number" {
		t.Error("expected page to be a number")
	}

	variables := schema.Properties["variables"]
	if variables == nil || variables.Type != "object" {
		t.Error("expected variables to be an object")
	}
}
