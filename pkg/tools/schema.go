package tools

import (
	"github.com/rhobs/launch-dash/pkg/dataset"
	"github.com/rhobs/launch-dash/pkg/figure"
)

// SitesOutput defines the output schema for the list_launch_sites tool.
type SitesOutput struct {
	Sites []SiteSummary `json:"sites" jsonschema:"description=Launch sites offered by the dashboard, in dropdown order"`
}

// SiteSummary describes the launches recorded for one site.
type SiteSummary struct {
	Site        string  `json:"site" jsonschema:"description=Launch site name, usable as the site parameter of the chart tools"`
	Label       string  `json:"label" jsonschema:"description=Display label of the site in the dashboard dropdown"`
	Launches    int     `json:"launches" jsonschema:"description=Number of launches from the site"`
	Successes   int     `json:"successes" jsonschema:"description=Number of successful launches (class 1) from the site"`
	SuccessRate float64 `json:"successRate" jsonschema:"description=Successes divided by launches"`
}

// PayloadRangeOutput defines the output schema for the get_payload_range tool.
type PayloadRangeOutput struct {
	Min     float64 `json:"min" jsonschema:"description=Smallest payload mass in kg"`
	Max     float64 `json:"max" jsonschema:"description=Largest payload mass in kg"`
	Records int     `json:"records" jsonschema:"description=Number of launch records loaded"`
}

// ChartOutput defines the output schema for the chart tools.
type ChartOutput struct {
	Output string        `json:"output" jsonschema:"description=Dashboard component the chart belongs to"`
	Figure figure.Figure `json:"figure" jsonschema:"description=Plotly figure specification with data and layout"`
}

// QueryLaunchesOutput defines the output schema for the query_launches tool.
type QueryLaunchesOutput struct {
	Launches  []dataset.Launch `json:"launches" jsonschema:"description=Launch records matching the selector"`
	Count     int              `json:"count" jsonschema:"description=Number of matching launch records"`
	Successes int              `json:"successes" jsonschema:"description=Number of matching launches with class 1"`
}

// Input structs for handler parameters

// SuccessPieInput defines the input parameters for SuccessPieChartHandler.
type SuccessPieInput struct {
	Site string `json:"site,omitempty"`
}

// PayloadScatterInput defines the input parameters for PayloadScatterChartHandler.
type PayloadScatterInput struct {
	Site        string   `json:"site,omitempty"`
	PayloadLow  *float64 `json:"payload_low,omitempty"`
	PayloadHigh *float64 `json:"payload_high,omitempty"`
}

// QueryLaunchesInput defines the input parameters for QueryLaunchesHandler.
type QueryLaunchesInput struct {
	Selector string `json:"selector"`
}
