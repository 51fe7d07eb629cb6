package tooldef

import "github.com/mark3labs/mcp-go/mcp"

// ToMCPTool converts a ToolDef to an mcp.Tool. Extra options, such as an
// output schema, are applied after the parameters.
func (d ToolDef) ToMCPTool(extra ...mcp.ToolOption) mcp.Tool {
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
			opts = append(opts, mcp.WithString(param.Name, propOpts...))

		case ParamTypeNumber:
			if param.Minimum != nil {
				propOpts = append(propOpts, mcp.Min(*param.Minimum))
			}
			opts = append(opts, mcp.WithNumber(param.Name, propOpts...))

		case ParamTypeBoolean:
			opts = append(opts, mcp.WithBoolean(param.Name, propOpts...))
		}
	}

	opts = append(opts, extra...)
	tool := mcp.NewTool(d.Name, opts...)

	// Workaround for tools with no parameters
	// See https://github.com/containers/kubernetes-mcp-server/pull/341/files
	if len(d.Params) == 0 {
		tool.InputSchema = mcp.ToolInputSchema{}
		tool.RawInputSchema = []byte(`{"type":"object","properties":{}}`)
	}

	return tool
}
