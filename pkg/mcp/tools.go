package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rhobs/launch-dash/pkg/tools"
)

func CreateListLaunchSitesTool() mcp.Tool {
	return tools.ListLaunchSites.ToMCPTool(mcp.WithOutputSchema[tools.SitesOutput]())
}

func CreateGetPayloadRangeTool() mcp.Tool {
	return tools.GetPayloadRange.ToMCPTool(mcp.WithOutputSchema[tools.PayloadRangeOutput]())
}

func CreateGetSuccessPieChartTool() mcp.Tool {
	return tools.GetSuccessPieChart.ToMCPTool(mcp.WithOutputSchema[tools.ChartOutput]())
}

func CreateGetPayloadScatterChartTool() mcp.Tool {
	return tools.GetPayloadScatterChart.ToMCPTool(mcp.WithOutputSchema[tools.ChartOutput]())
}

func CreateQueryLaunchesTool() mcp.Tool {
	return tools.QueryLaunches.ToMCPTool(mcp.WithOutputSchema[tools.QueryLaunchesOutput]())
}

// AllTools returns every tool served by NewMCPServer, in registration order.
func AllTools() []mcp.Tool {
	return []mcp.Tool{
		CreateListLaunchSitesTool(),
		CreateGetPayloadRangeTool(),
		CreateGetSuccessPieChartTool(),
		CreateGetPayloadScatterChartTool(),
		CreateQueryLaunchesTool(),
	}
}
