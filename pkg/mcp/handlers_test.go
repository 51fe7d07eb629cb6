package mcp

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rhobs/launch-dash/pkg/dataset/datasettest"
	"github.com/rhobs/launch-dash/pkg/layout"
	"github.com/rhobs/launch-dash/pkg/tools"
)

// newMockRequest creates a CallToolRequest with the given parameters
func newMockRequest(name string, params map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: params,
		},
	}
}

// Helper to extract the first text content from result
func getTextContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("expected content in result")
		return ""
	}
	switch content := result.Content[0].(type) {
	case mcp.TextContent:
		return content.Text
	default:
		return fmt.Sprintf("%v", content)
	}
}

func TestListLaunchSitesHandler(t *testing.T) {
	handler := ListLaunchSitesHandler(LaunchDashOptions{Dataset: datasettest.Sample(t)})

	result, err := handler(context.Background(), newMockRequest("list_launch_sites", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %v", getTextContent(t, result))
	}

	output, ok := result.StructuredContent.(tools.SitesOutput)
	if !ok {
		t.Fatalf("expected SitesOutput, got %T", result.StructuredContent)
	}
	if len(output.Sites) != 4 {
		t.Errorf("expected 4 sites, got %d", len(output.Sites))
	}
	if len(result.Content) != 2 {
		t.Fatalf("expected JSON and summary content, got %d items", len(result.Content))
	}
	if summary := result.Content[1].(mcp.TextContent).Text; summary != "4 launch sites" {
		t.Errorf("unexpected summary %q", summary)
	}
}

func TestListLaunchSitesHandlerSiteOptions(t *testing.T) {
	handler := ListLaunchSitesHandler(LaunchDashOptions{
		Dataset:     datasettest.Sample(t),
		SiteOptions: []layout.SiteOption{{Label: "All Sites", Value: "ALL"}, {Label: "Kennedy", Value: "KSC LC-39A"}},
	})

	result, err := handler(context.Background(), newMockRequest("list_launch_sites", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output, ok := result.StructuredContent.(tools.SitesOutput)
	if !ok {
		t.Fatalf("expected SitesOutput, got %T", result.StructuredContent)
	}
	if len(output.Sites) != 1 || output.Sites[0].Label != "Kennedy" || output.Sites[0].Launches != 3 {
		t.Errorf("unexpected sites %+v", output.Sites)
	}
}

func TestGetPayloadRangeHandler(t *testing.T) {
	handler := GetPayloadRangeHandler(LaunchDashOptions{Dataset: datasettest.Sample(t)})

	result, err := handler(context.Background(), newMockRequest("get_payload_range", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(getTextContent(t, result), `"max":9600`) {
		t.Errorf("unexpected payload range %s", getTextContent(t, result))
	}
}

func TestSuccessPieChartHandler(t *testing.T) {
	handler := SuccessPieChartHandler(LaunchDashOptions{Dataset: datasettest.Sample(t)})

	tests := []struct {
		name      string
		params    map[string]any
		wantError string
		wantTitle string
	}{
		{
			name:      "all sites by default",
			params:    map[string]any{},
			wantTitle: "Total Successful Launches by Site",
		},
		{
			name:      "specific site",
			params:    map[string]any{"site": "VAFB SLC-4E"},
			wantTitle: "Success vs. Failure for VAFB SLC-4E",
		},
		{
			name:      "unknown site",
			params:    map[string]any{"site": "Boca Chica"},
			wantError: "unknown launch site",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handler(context.Background(), newMockRequest("get_success_pie_chart", tt.params))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantError != "" {
				if !result.IsError {
					t.Fatal("expected error result")
				}
				if msg := getTextContent(t, result); !strings.Contains(msg, tt.wantError) {
					t.Errorf("expected error containing %q, got %q", tt.wantError, msg)
				}
				return
			}
			if result.IsError {
				t.Fatalf("unexpected error result: %v", getTextContent(t, result))
			}
			output := result.StructuredContent.(tools.ChartOutput)
			if output.Figure.Layout.Title.Text != tt.wantTitle {
				t.Errorf("title = %q, want %q", output.Figure.Layout.Title.Text, tt.wantTitle)
			}
		})
	}
}

func TestPayloadScatterChartHandler(t *testing.T) {
	handler := PayloadScatterChartHandler(LaunchDashOptions{Dataset: datasettest.Sample(t)})

	tests := []struct {
		name       string
		params     map[string]any
		wantError  string
		wantPoints int
	}{
		{
			name:       "full range",
			params:     map[string]any{},
			wantPoints: 13,
		},
		{
			name:       "reversed bounds are swapped",
			params:     map[string]any{"payload_low": 7500, "payload_high": 2500},
			wantPoints: 4,
		},
		{
			name:      "non numeric bound",
			params:    map[string]any{"payload_high": "max"},
			wantError: "invalid payload range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handler(context.Background(), newMockRequest("get_payload_scatter_chart", tt.params))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantError != "" {
				if !result.IsError || !strings.Contains(getTextContent(t, result), tt.wantError) {
					t.Fatalf("expected error containing %q, got %v", tt.wantError, result.Content)
				}
				return
			}
			if result.IsError {
				t.Fatalf("unexpected error result: %v", getTextContent(t, result))
			}

			output := result.StructuredContent.(tools.ChartOutput)
			points := 0
			for _, trace := range output.Figure.Data {
				points += len(trace.X)
			}
			if points != tt.wantPoints {
				t.Errorf("points = %d, want %d", points, tt.wantPoints)
			}
		})
	}
}

func TestQueryLaunchesHandler(t *testing.T) {
	handler := QueryLaunchesHandler(LaunchDashOptions{Dataset: datasettest.Sample(t)})

	result, err := handler(context.Background(), newMockRequest("query_launches", map[string]any{
		"selector": `{launch_site="CCAFS SLC-40"}`,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %v", getTextContent(t, result))
	}
	output := result.StructuredContent.(tools.QueryLaunchesOutput)
	if output.Count != 2 || output.Successes != 2 {
		t.Errorf("unexpected output %+v", output)
	}

	result, err = handler(context.Background(), newMockRequest("query_launches", map[string]any{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for missing selector")
	}
}
