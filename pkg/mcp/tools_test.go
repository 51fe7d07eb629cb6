package mcp

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestToolParameters(t *testing.T) {
	tests := []struct {
		tool             mcp.Tool
		expectedRequired []string
		expectedOptional []string
	}{
		{
			tool:             CreateListLaunchSitesTool(),
			expectedRequired: []string{},
			expectedOptional: []string{},
		},
		{
			tool:             CreateGetPayloadRangeTool(),
			expectedRequired: []string{},
			expectedOptional: []string{},
		},
		{
			tool:             CreateGetSuccessPieChartTool(),
			expectedRequired: []string{},
			expectedOptional: []string{"site"},
		},
		{
			tool:             CreateGetPayloadScatterChartTool(),
			expectedRequired: []string{},
			expectedOptional: []string{"site", "payload_low", "payload_high"},
		},
		{
			tool:             CreateQueryLaunchesTool(),
			expectedRequired: []string{"selector"},
			expectedOptional: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.tool.Name, func(t *testing.T) {
			tool := tt.tool

			requiredSet := make(map[string]bool)
			for _, r := range tool.InputSchema.Required {
				requiredSet[r] = true
			}

			if len(tool.InputSchema.Required) != len(tt.expectedRequired) {
				t.Errorf("expected %d required params, got %d",
					len(tt.expectedRequired), len(tool.InputSchema.Required))
			}

			for _, param := range tt.expectedRequired {
				if !requiredSet[param] {
					t.Errorf("parameter %q should be required", param)
				}
			}

			for _, param := range tt.expectedOptional {
				if _, exists := tool.InputSchema.Properties[param]; !exists {
					t.Errorf("optional parameter %q not found", param)
				}
				if requiredSet[param] {
					t.Errorf("parameter %q should be optional", param)
				}
			}
		})
	}
}

func TestToolsHaveOutputSchema(t *testing.T) {
	tools := AllTools()
	if len(tools) != 5 {
		t.Fatalf("expected 5 tools, got %d", len(tools))
	}

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.OutputSchema.Type == "" && len(tool.RawOutputSchema) == 0 {
				t.Errorf("tool %q missing output schema", tool.Name)
			}

			if tool.Description == "" {
				t.Errorf("tool %q missing description", tool.Name)
			}

			if tool.Annotations.ReadOnlyHint == nil || !*tool.Annotations.ReadOnlyHint {
				t.Errorf("tool %q should be read-only", tool.Name)
			}
		})
	}
}
