package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rhobs/launch-dash/pkg/tools"
)

// ListLaunchSitesHandler handles the listing of launch sites.
func ListLaunchSitesHandler(opts LaunchDashOptions) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return tools.ListLaunchSitesHandler(ctx, opts.Dataset, opts.SiteOptions).ToMCPResult()
	}
}

// GetPayloadRangeHandler handles the payload range lookup.
func GetPayloadRangeHandler(opts LaunchDashOptions) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return tools.GetPayloadRangeHandler(ctx, opts.Dataset).ToMCPResult()
	}
}

// SuccessPieChartHandler handles building the success pie chart.
func SuccessPieChartHandler(opts LaunchDashOptions) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input := tools.BuildSuccessPieInput(req.GetArguments())
		return tools.SuccessPieChartHandler(ctx, opts.Dataset, input).ToMCPResult()
	}
}

// PayloadScatterChartHandler handles building the payload scatter chart.
func PayloadScatterChartHandler(opts LaunchDashOptions) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input, err := tools.BuildPayloadScatterInput(req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid payload range: %s", err.Error())), nil
		}
		return tools.PayloadScatterChartHandler(ctx, opts.Dataset, input).ToMCPResult()
	}
}

// QueryLaunchesHandler handles label selector queries over launch records.
func QueryLaunchesHandler(opts LaunchDashOptions) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input := tools.BuildQueryLaunchesInput(req.GetArguments())
		return tools.QueryLaunchesHandler(ctx, opts.Dataset, input).ToMCPResult()
	}
}
