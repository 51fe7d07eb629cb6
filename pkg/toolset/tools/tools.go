package tools

import (
	"github.com/containers/kubernetes-mcp-server/pkg/api"

	"github.com/rhobs/launch-dash/pkg/tools"
)

// InitListLaunchSites creates the list_launch_sites tool.
func InitListLaunchSites() []api.ServerTool {
	return []api.ServerTool{
		tools.ListLaunchSites.ToServerTool(ListLaunchSitesHandler),
	}
}

// InitGetPayloadRange creates the get_payload_range tool.
func InitGetPayloadRange() []api.ServerTool {
	return []api.ServerTool{
		tools.GetPayloadRange.ToServerTool(GetPayloadRangeHandler),
	}
}

// InitGetSuccessPieChart creates the get_success_pie_chart tool.
func InitGetSuccessPieChart() []api.ServerTool {
	return []api.ServerTool{
		tools.GetSuccessPieChart.ToServerTool(SuccessPieChartHandler),
	}
}

// InitGetPayloadScatterChart creates the get_payload_scatter_chart tool.
func InitGetPayloadScatterChart() []api.ServerTool {
	return []api.ServerTool{
		tools.GetPayloadScatterChart.ToServerTool(PayloadScatterChartHandler),
	}
}

// InitQueryLaunches creates the query_launches tool.
func InitQueryLaunches() []api.ServerTool {
	return []api.ServerTool{
		tools.QueryLaunches.ToServerTool(QueryLaunchesHandler),
	}
}
