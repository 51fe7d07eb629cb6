package tooldef

// ToolDef defines a tool that can be converted to different formats (MCP, Toolset, etc.)
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

// ParamDef defines a tool parameter
type ParamDef struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	Pattern     string
	// Minimum bounds number parameters from below when set.
	Minimum *float64
}

// ParamType represents the type of a parameter
type ParamType string

const (
	ParamTypeString  ParamType = "string"
	ParamTypeNumber  ParamType = "number"
	ParamTypeBoolean ParamType = "boolean"
)

// ParamNames returns the parameter names in declaration order.
func (d ToolDef) ParamNames() []string {
	names := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		names = append(names, p.Name)
	}
	return names
}
