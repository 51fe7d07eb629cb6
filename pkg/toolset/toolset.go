package toolset

import (
	"slices"

	"github.com/containers/kubernetes-mcp-server/pkg/api"
	"github.com/containers/kubernetes-mcp-server/pkg/toolsets"

	"github.com/rhobs/launch-dash/pkg/toolset/tools"
)

// Toolset implements the launch records toolset.
type Toolset struct{}

var _ api.Toolset = (*Toolset)(nil)

// GetName returns the name of the toolset.
func (t *Toolset) GetName() string {
	return "launch-dash"
}

// GetDescription returns a human-readable description of the toolset.
func (t *Toolset) GetDescription() string {
	return `SpaceX launch records: launch sites, payload range, success pie chart, payload vs. outcome scatter chart and label selector queries.

## WORKFLOW

1. Call list_launch_sites to learn the exact site names.
2. Call get_payload_range before choosing payload bounds.
3. Use get_success_pie_chart and get_payload_scatter_chart for the dashboard charts, or query_launches for raw records.`
}

// GetTools returns all tools provided by this toolset.
func (t *Toolset) GetTools(_ api.Openshift) []api.ServerTool {
	return slices.Concat(
		tools.InitListLaunchSites(),
		tools.InitGetPayloadRange(),
		tools.InitGetSuccessPieChart(),
		tools.InitGetPayloadScatterChart(),
		tools.InitQueryLaunches(),
	)
}

// GetPrompts returns prompts provided by this toolset.
func (t *Toolset) GetPrompts() []api.ServerPrompt {
	// The workflow instructions are embedded in the tool descriptions
	return nil
}

func init() {
	toolsets.Register(&Toolset{})
}
