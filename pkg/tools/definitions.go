package tools

import (
	"k8s.io/utils/ptr"

	"github.com/rhobs/launch-dash/pkg/tooldef"
)

// All tool definitions as a single source of truth
var (
	ListLaunchSites = tooldef.ToolDef{
		Name:        "list_launch_sites",
		Description: ListLaunchSitesPrompt,
		Title:       "List Launch Sites",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   false,
	}

	GetPayloadRange = tooldef.ToolDef{
		Name:        "get_payload_range",
		Description: GetPayloadRangePrompt,
		Title:       "Get Payload Range",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   false,
	}

	GetSuccessPieChart = tooldef.ToolDef{
		Name:        "get_success_pie_chart",
		Description: GetSuccessPieChartPrompt,
		Title:       "Get Launch Success Pie Chart",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   false,
		Params: []tooldef.ParamDef{
			{
				Name:        "site",
				Type:        tooldef.ParamTypeString,
				Description: "Launch site name from list_launch_sites, or 'ALL' for every site. Defaults to ALL.",
				Required:    false,
			},
		},
	}

	GetPayloadScatterChart = tooldef.ToolDef{
		Name:        "get_payload_scatter_chart",
		Description: GetPayloadScatterChartPrompt,
		Title:       "Get Payload vs. Outcome Scatter Chart",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   false,
		Params: []tooldef.ParamDef{
			{
				Name:        "site",
				Type:        tooldef.ParamTypeString,
				Description: "Launch site name from list_launch_sites, or 'ALL' for every site. Defaults to ALL.",
				Required:    false,
			},
			{
				Name:        "payload_low",
				Type:        tooldef.ParamTypeNumber,
				Description: "Lower payload mass bound in kg, inclusive. Defaults to the smallest payload in the dataset.",
				Required:    false,
				Minimum:     ptr.To(0.0),
			},
			{
				Name:        "payload_high",
				Type:        tooldef.ParamTypeNumber,
				Description: "Upper payload mass bound in kg, inclusive. Defaults to the largest payload in the dataset.",
				Required:    false,
				Minimum:     ptr.To(0.0),
			},
		},
	}

	QueryLaunches = tooldef.ToolDef{
		Name:        "query_launches",
		Description: QueryLaunchesPrompt,
		Title:       "Query Launch Records",
		ReadOnly:    true,
		Destructive: false,
		Idempotent:  true,
		OpenWorld:   false,
		Params: []tooldef.ParamDef{
			{
				Name:        "selector",
				Type:        tooldef.ParamTypeString,
				Description: `Label selector over launch records, e.g. '{launch_site="KSC LC-39A", booster_version_category=~"B.*"}'. Labels: launch_site, class, booster_version, booster_version_category, flight_number.`,
				Required:    true,
			},
		},
	}
)

// AllTools returns all tool definitions
func AllTools() []tooldef.ToolDef {
	return []tooldef.ToolDef{
		ListLaunchSites,
		GetPayloadRange,
		GetSuccessPieChart,
		GetPayloadScatterChart,
		QueryLaunches,
	}
}
