package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/volkernhq/volkern-mcp/pkg/mcp"
	"github.com/volkernhq/volkern-mcp/pkg/tools"
)

func main() {
	defs := tools.AllTools()

	if err := generateMarkdown(defs, "TOOLS.md"); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating TOOLS.md: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✓ TOOLS.md generated successfully")
	fmt.Printf("  Documented %d tools:\n", len(defs)+1)
	for i := range defs {
		fmt.Printf("    - %s\n", defs[i].Name)
	}
	fmt.Println("    - get_current_time")
	fmt.Println("\n💡 Reminder: When adding a new tool, register it in pkg/tools/definitions.go AllTools()")
}

type fieldInfo struct {
	Name        string
	Type        string
	Required    bool
	Description string
	Pattern     string
	Enum        []string
}

// formatTable generates a formatted markdown table with aligned columns
func formatTable(headers, alignments []string, rows [][]string) string {
	if len(headers) == 0 || len(rows) == 0 {
		return ""
	}

	// Calculate max width for each column
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder

	// Header row
	sb.WriteString("|")
	for i, h := range headers {
		sb.WriteString(fmt.Sprintf(" %-*s |", widths[i], h))
	}
	sb.WriteString("\n")

	// Separator row with alignment
	sb.WriteString("|")
	for i, w := range widths {
		align := "l" // default left
		if i < len(alignments) {
			align = alignments[i]
		}
		switch align {
		case "c": // center
			sb.WriteString(fmt.Sprintf(" :%s: |", strings.Repeat("-", w-2)))
		case "r": // right
			sb.WriteString(fmt.Sprintf(" %s: |", strings.Repeat("-", w-1)))
		default: // left
			sb.WriteString(fmt.Sprintf(" :%s |", strings.Repeat("-", w-1)))
		}
	}
	sb.WriteString("\n")

	// Data rows
	for _, row := range rows {
		sb.WriteString("|")
		for i, cell := range row {
			if i < len(widths) {
				sb.WriteString(fmt.Sprintf(" %-*s |", widths[i], cell))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func extractParams(def *tools.ToolDef) []fieldInfo {
	schema := def.InputSchema()

	requiredSet := make(map[string]bool)
	for _, r := range schema.Required {
		requiredSet[r] = true
	}

	var params []fieldInfo
	for name, prop := range schema.Properties {
		p := fieldInfo{
			Name:        name,
			Required:    requiredSet[name],
			Type:        prop.Type,
			Description: prop.Description,
			Pattern:     prop.Pattern,
		}
		if p.Type == "array" && prop.Items != nil {
			p.Type = prop.Items.Type + "[]"
		}
		for _, v := range prop.Enum {
			if s, ok := v.(string); ok {
				p.Enum = append(p.Enum, s)
			}
		}
		params = append(params, p)
	}

	sort.Slice(params, func(i, j int) bool {
		if params[i].Required != params[j].Required {
			return params[i].Required
		}
		return params[i].Name < params[j].Name
	})

	return params
}

func extractTimeToolOutput() []fieldInfo {
	tool := mcp.CreateGetCurrentTimeTool()

	var fields []fieldInfo
	if len(tool.OutputSchema.Properties) == 0 {
		return fields
	}

	for name, prop := range tool.OutputSchema.Properties {
		f := fieldInfo{Name: name}
		if propMap, ok := prop.(map[string]any); ok {
			if t, ok := propMap["type"].(string); ok {
				f.Type = t
			}
			if d, ok := propMap["description"].(string); ok {
				f.Description = d
			}
		}
		fields = append(fields, f)
	}

	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Name < fields[j].Name
	})

	return fields
}

// writeDescription renders a tool description: the first paragraph becomes
// the main blockquote, subsequent paragraphs become usage tips
func writeDescription(sb *strings.Builder, description string) {
	paragraphs := strings.Split(strings.TrimSpace(description), "\n\n")
	sb.WriteString(fmt.Sprintf("> %s\n\n", strings.TrimSpace(paragraphs[0])))

	if len(paragraphs) > 1 {
		sb.WriteString("**Usage Tips:**\n\n")
		for _, para := range paragraphs[1:] {
			// Join lines within a paragraph and create a single bullet
			lines := strings.Split(para, "\n")
			var joined []string
			for _, line := range lines {
				line = strings.TrimSpace(line)
				if line != "" {
					joined = append(joined, line)
				}
			}
			if len(joined) > 0 {
				sb.WriteString(fmt.Sprintf("- %s\n", strings.Join(joined, " ")))
			}
		}
		sb.WriteString("\n")
	}
}

func writeParams(sb *strings.Builder, params []fieldInfo) {
	if len(params) == 0 {
		sb.WriteString(formatTable(
			[]string{"", ""},
			[]string{"l", "l"},
			[][]string{{"**Parameters**", "None"}},
		))
		sb.WriteString("\n")
		return
	}

	sb.WriteString("**Parameters:**\n\n")
	var rows [][]string
	for _, p := range params {
		req := ""
		if p.Required {
			req = "✅"
		}
		allowed := ""
		if len(p.Enum) > 0 {
			quoted := make([]string, len(p.Enum))
			for i, v := range p.Enum {
				quoted[i] = fmt.Sprintf("`%s`", v)
			}
			allowed = strings.Join(quoted, ", ")
		}
		rows = append(rows, []string{
			fmt.Sprintf("`%s`", p.Name),
			fmt.Sprintf("`%s`", p.Type),
			req,
			p.Description,
			allowed,
		})
	}
	sb.WriteString(formatTable(
		[]string{"Parameter", "Type", "Required", "Description", "Allowed values"},
		[]string{"l", "l", "c", "l", "l"},
		rows,
	))
	sb.WriteString("\n")

	var noted bool
	for _, p := range params {
		if p.Pattern == "" {
			continue
		}
		if !noted {
			sb.WriteString("> [!NOTE]\n")
			noted = true
		}
		sb.WriteString(fmt.Sprintf("> `%s` must match `%s`\n", p.Name, p.Pattern))
	}
	if noted {
		sb.WriteString("\n")
	}
}

func generateMarkdown(defs []tools.ToolDef, filename string) error {
	var sb strings.Builder

	sb.WriteString("<!-- This file is auto-generated. Do not edit manually. -->\n")
	sb.WriteString("<!-- Run 'make generate-tools-doc' to regenerate. -->\n\n")

	sb.WriteString("# Available Tools\n\n")
	sb.WriteString("This MCP server exposes the following tools for interacting with the Volkern CRM API:\n\n")

	for i := range defs {
		def := &defs[i]
		sb.WriteString(fmt.Sprintf("## `%s`\n\n", def.Name))
		writeDescription(&sb, def.Description)
		writeParams(&sb, extractParams(def))
		sb.WriteString("---\n\n")
	}

	// get_current_time lives outside the catalog: it is the one tool
	// that performs no API call
	timeTool := mcp.CreateGetCurrentTimeTool()
	sb.WriteString(fmt.Sprintf("## `%s`\n\n", timeTool.Name))
	writeDescription(&sb, timeTool.Description)
	writeParams(&sb, nil)

	outputFields := extractTimeToolOutput()
	if len(outputFields) > 0 {
		sb.WriteString("**Output Schema:**\n\n")
		var rows [][]string
		for _, f := range outputFields {
			rows = append(rows, []string{
				fmt.Sprintf("`%s`", f.Name),
				fmt.Sprintf("`%s`", f.Type),
				f.Description,
			})
		}
		sb.WriteString(formatTable(
			[]string{"Field", "Type", "Description"},
			[]string{"l", "l", "l"},
			rows,
		))
		sb.WriteString("\n")
	}

	return os.WriteFile(filename, []byte(sb.String()), 0o644)
}
