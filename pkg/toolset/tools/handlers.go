package tools

import (
	"fmt"

	"github.com/containers/kubernetes-mcp-server/pkg/api"

	"github.com/rhobs/launch-dash/pkg/tools"
)

// ListLaunchSitesHandler handles the listing of launch sites.
func ListLaunchSitesHandler(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	ds, err := getDataset(params)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to load launch dataset: %w", err)), nil
	}

	options, err := getSiteOptions(params)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to load site options: %w", err)), nil
	}

	return tools.ListLaunchSitesHandler(params.Context, ds, options).ToToolsetResult()
}

// GetPayloadRangeHandler handles the payload range lookup.
func GetPayloadRangeHandler(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	ds, err := getDataset(params)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to load launch dataset: %w", err)), nil
	}

	return tools.GetPayloadRangeHandler(params.Context, ds).ToToolsetResult()
}

// SuccessPieChartHandler handles building the success pie chart.
func SuccessPieChartHandler(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	ds, err := getDataset(params)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to load launch dataset: %w", err)), nil
	}

	return tools.SuccessPieChartHandler(params.Context, ds, tools.BuildSuccessPieInput(params.GetArguments())).ToToolsetResult()
}

// PayloadScatterChartHandler handles building the payload scatter chart.
func PayloadScatterChartHandler(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	ds, err := getDataset(params)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to load launch dataset: %w", err)), nil
	}

	input, err := tools.BuildPayloadScatterInput(params.GetArguments())
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("invalid payload range: %w", err)), nil
	}

	return tools.PayloadScatterChartHandler(params.Context, ds, input).ToToolsetResult()
}

// QueryLaunchesHandler handles label selector queries over launch records.
func QueryLaunchesHandler(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	ds, err := getDataset(params)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to load launch dataset: %w", err)), nil
	}

	return tools.QueryLaunchesHandler(params.Context, ds, tools.BuildQueryLaunchesInput(params.GetArguments())).ToToolsetResult()
}
