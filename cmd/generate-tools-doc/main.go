package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"

	"github.com/rhobs/launch-dash/pkg/callbacks"
	"github.com/rhobs/launch-dash/pkg/dataset"
	"github.com/rhobs/launch-dash/pkg/mcp"
	"github.com/rhobs/launch-dash/pkg/tools"
)

// chartTools maps a dashboard graph to the tool returning the same figure.
var chartTools = map[string]string{
	callbacks.SuccessPieChartID:     tools.GetSuccessPieChart.Name,
	callbacks.PayloadScatterChartID: tools.GetPayloadScatterChart.Name,
}

// labelExamples are sample values for the query_launches selector labels.
var labelExamples = map[string]string{
	dataset.LabelLaunchSite:             `"KSC LC-39A"`,
	dataset.LabelClass:                  `"1"`,
	dataset.LabelBoosterVersion:         `=~"F9 FT.*"`,
	dataset.LabelBoosterVersionCategory: `"B5"`,
	dataset.LabelFlightNumber:           `"42"`,
}

func main() {
	output := flag.String("output", "TOOLS.md", "File to write the tool reference to.")
	flag.Parse()

	doc := reference{
		Tools:     mcp.AllTools(),
		Callbacks: callbacks.NewDispatcher(nil).Callbacks(),
		Labels:    dataset.SelectorLabels(),
	}
	if err := os.WriteFile(*output, []byte(doc.render()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", *output, err)
		os.Exit(1)
	}
	fmt.Printf("✓ %s generated: %d tools, %d dashboard callbacks, %d selector labels\n",
		*output, len(doc.Tools), len(doc.Callbacks), len(doc.Labels))
}

// reference is everything TOOLS.md documents.
type reference struct {
	Tools     []mcplib.Tool
	Callbacks []callbacks.Callback
	Labels    []string
}

type fieldInfo struct {
	Name        string
	Type        string
	Required    bool
	Description string
	Pattern     string
	Minimum     *float64
}

func (r reference) render() string {
	var sb strings.Builder

	sb.WriteString("<!-- This file is auto-generated. Do not edit manually. -->\n")
	sb.WriteString("<!-- Run 'go run ./cmd/generate-tools-doc' to regenerate. -->\n\n")
	sb.WriteString("# Launch Dashboard Tools\n\n")
	sb.WriteString("The MCP server exposes read-only tools over the SpaceX launch records dataset.\n")
	sb.WriteString("The chart tools return the same Plotly figures the dashboard callbacks produce.\n\n")

	r.renderCallbacks(&sb)
	r.renderLabels(&sb)

	sb.WriteString("## Tools\n\n")
	for i := range r.Tools {
		if i > 0 {
			sb.WriteString("---\n\n")
		}
		renderTool(&sb, &r.Tools[i])
	}
	return sb.String()
}

func (r reference) renderCallbacks(sb *strings.Builder) {
	sb.WriteString("## Dashboard callbacks\n\n")
	rows := make([][]string, 0, len(r.Callbacks))
	for _, cb := range r.Callbacks {
		inputs := make([]string, 0, len(cb.Inputs))
		for _, in := range cb.Inputs {
			inputs = append(inputs, code(in.String()))
		}
		tool := "-"
		if name, ok := chartTools[cb.Output.ID]; ok {
			tool = code(name)
		}
		rows = append(rows, []string{code(cb.Output.String()), strings.Join(inputs, ", "), tool})
	}
	sb.WriteString(formatTable([]string{"Output", "Inputs", "Tool"}, []string{"l", "l", "l"}, rows))
	sb.WriteString("\n")
}

func (r reference) renderLabels(sb *strings.Builder) {
	sb.WriteString("## Selector labels\n\n")
	sb.WriteString(fmt.Sprintf("`%s` accepts Prometheus label matchers over these labels:\n\n", tools.QueryLaunches.Name))
	rows := make([][]string, 0, len(r.Labels))
	for _, label := range r.Labels {
		example := "-"
		if v, ok := labelExamples[label]; ok {
			if !strings.HasPrefix(v, "=") && !strings.HasPrefix(v, "!") {
				v = "=" + v
			}
			example = code("{" + label + v + "}")
		}
		rows = append(rows, []string{code(label), example})
	}
	sb.WriteString(formatTable([]string{"Label", "Example"}, []string{"l", "l"}, rows))
	sb.WriteString("\n")
}

func renderTool(sb *strings.Builder, tool *mcplib.Tool) {
	sb.WriteString(fmt.Sprintf("### `%s`\n\n", tool.Name))

	paragraphs := strings.Split(strings.TrimSpace(tool.Description), "\n\n")
	sb.WriteString(fmt.Sprintf("> %s\n\n", strings.Join(strings.Fields(paragraphs[0]), " ")))
	if len(paragraphs) > 1 {
		sb.WriteString("**Usage Tips:**\n\n")
		for _, para := range paragraphs[1:] {
			if tip := strings.Join(strings.Fields(para), " "); tip != "" {
				sb.WriteString("- " + tip + "\n")
			}
		}
		sb.WriteString("\n")
	}

	params := extractParams(tool)
	if len(params) == 0 {
		sb.WriteString("**Parameters:** none\n\n")
	} else {
		sb.WriteString("**Parameters:**\n\n")
		rows := make([][]string, 0, len(params))
		for _, p := range params {
			req := ""
			if p.Required {
				req = "✅"
			}
			rows = append(rows, []string{code(p.Name), code(p.Type), req, p.Description, constraints(p)})
		}
		sb.WriteString(formatTable(
			[]string{"Parameter", "Type", "Required", "Description", "Constraints"},
			[]string{"l", "l", "c", "l", "l"},
			rows,
		))
		sb.WriteString("\n")
	}

	fields := flattenSchema("", tool.OutputSchema.Properties, tool.OutputSchema.Required)
	if len(fields) > 0 {
		sb.WriteString("**Output Schema:**\n\n")
		rows := make([][]string, 0, len(fields))
		for _, f := range fields {
			rows = append(rows, []string{code(f.Name), code(f.Type), f.Description})
		}
		sb.WriteString(formatTable([]string{"Field", "Type", "Description"}, []string{"l", "l", "l"}, rows))
		sb.WriteString("\n")
	}
}

func constraints(p fieldInfo) string {
	var parts []string
	if p.Minimum != nil {
		parts = append(parts, fmt.Sprintf("≥ %g", *p.Minimum))
	}
	if p.Pattern != "" {
		parts = append(parts, "matches "+code(p.Pattern))
	}
	return strings.Join(parts, "; ")
}

func code(s string) string {
	return "`" + s + "`"
}

func extractParams(tool *mcplib.Tool) []fieldInfo {
	params := make([]fieldInfo, 0, len(tool.InputSchema.Properties))
	for name, prop := range tool.InputSchema.Properties {
		propMap, _ := prop.(map[string]any)
		p := fieldInfo{
			Name:        name,
			Type:        stringKey(propMap, "type"),
			Required:    slices.Contains(tool.InputSchema.Required, name),
			Description: stringKey(propMap, "description"),
			Pattern:     stringKey(propMap, "pattern"),
		}
		if minimum, ok := propMap["minimum"].(float64); ok {
			p.Minimum = &minimum
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

// flattenSchema lists every field of an output schema, descending into
// objects and arrays of objects. Nested fields are named by dotted path,
// with "[]" marking array elements, e.g. figure.data[].x.
func flattenSchema(prefix string, properties map[string]any, required []string) []fieldInfo {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var fields []fieldInfo
	for _, name := range names {
		propMap, _ := properties[name].(map[string]any)
		path := prefix + name
		f := fieldInfo{
			Name:        path,
			Type:        stringKey(propMap, "type"),
			Required:    slices.Contains(required, name),
			Description: stringKey(propMap, "description"),
		}

		nested := propMap
		if f.Type == "array" {
			items, _ := propMap["items"].(map[string]any)
			f.Type = schemaTypeOf(items) + "[]"
			nested = items
			path += "[]"
		}
		fields = append(fields, f)

		if children, ok := nested["properties"].(map[string]any); ok {
			fields = append(fields, flattenSchema(path+".", children, stringSlice(nested["required"]))...)
		}
	}
	return fields
}

func schemaTypeOf(schema map[string]any) string {
	switch t := stringKey(schema, "type"); {
	case t == "array":
		items, _ := schema["items"].(map[string]any)
		return schemaTypeOf(items) + "[]"
	case t != "":
		return t
	default:
		return "any"
	}
}

func stringKey(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func stringSlice(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// formatTable renders a markdown table with padded columns. Alignments are
// "l", "c" or "r" per column; missing entries default to "l".
func formatTable(headers, alignments []string, rows [][]string) string {
	if len(headers) == 0 || len(rows) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], len(row[i]))
		}
	}

	line := func(cells []string) string {
		padded := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			padded[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
		}
		return "| " + strings.Join(padded, " | ") + " |\n"
	}

	separators := make([]string, len(widths))
	for i, w := range widths {
		align := "l"
		if i < len(alignments) {
			align = alignments[i]
		}
		switch align {
		case "c":
			separators[i] = ":" + strings.Repeat("-", w-2) + ":"
		case "r":
			separators[i] = strings.Repeat("-", w-1) + ":"
		default:
			separators[i] = ":" + strings.Repeat("-", w-1)
		}
	}

	var sb strings.Builder
	sb.WriteString(line(headers))
	sb.WriteString("| " + strings.Join(separators, " | ") + " |\n")
	for _, row := range rows {
		sb.WriteString(line(row))
	}
	return sb.String()
}
