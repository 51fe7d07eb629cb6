package resultutil

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

type siteCounts struct {
	Site      string `json:"site"`
	Launches  int    `json:"launches"`
	Successes int    `json:"successes"`
}

func TestNewSuccessResult(t *testing.T) {
	output := siteCounts{Site: "KSC LC-39A", Launches: 13, Successes: 10}

	result := NewSuccessResult(output)

	if result.IsError() {
		t.Errorf("expected success result, got error: %v", result.Error)
	}

	if result.Data == nil {
		t.Error("expected Data to be set")
	}

	if result.JSONText == "" {
		t.Error("expected JSONText to be set")
	}

	// Verify JSON is valid and matches the data
	var decoded siteCounts
	if err := json.Unmarshal([]byte(result.JSONText), &decoded); err != nil {
		t.Errorf("failed to unmarshal JSONText: %v", err)
	}

	if decoded != output {
		t.Errorf("expected %+v, got %+v", output, decoded)
	}
}

func TestNewErrorResult(t *testing.T) {
	errorMsg := "test error message"
	result := NewErrorResult(errors.New(errorMsg))

	if !result.IsError() {
		t.Error("expected error result")
	}

	if result.Error == nil {
		t.Error("expected Error to be set")
	}

	if result.Error.Error() != errorMsg {
		t.Errorf("expected error message %q, got %q", errorMsg, result.Error.Error())
	}

	if result.Data != nil {
		t.Error("expected Data to be nil for error result")
	}
}

func TestToMCPResult_Success(t *testing.T) {
	output := siteCounts{Site: "VAFB SLC-4E", Launches: 10, Successes: 4}

	result := NewSuccessResult(output)
	mcpResult, err := result.ToMCPResult()

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if mcpResult == nil {
		t.Fatal("expected non-nil MCP result")
	}

	// The MCP result should contain the structured data
	if mcpResult.Content == nil {
		t.Error("expected MCP result content to be set")
	}
}

func TestToMCPResult_Error(t *testing.T) {
	result := NewErrorResult(errors.New("unknown launch site \"Boca Chica\""))
	mcpResult, err := result.ToMCPResult()

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if mcpResult == nil {
		t.Fatal("expected non-nil MCP result")
	}

	// MCP error results should have isError set to true
	if !mcpResult.IsError {
		t.Error("expected MCP result to have IsError=true")
	}
}

func TestToToolsetResult_Success(t *testing.T) {
	output := siteCounts{Site: "VAFB SLC-4E", Launches: 10, Successes: 4}

	result := NewSuccessResult(output)
	toolsetResult, err := result.ToToolsetResult()

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if toolsetResult == nil {
		t.Fatal("expected non-nil Toolset result")
	}

	// The Toolset result should contain the JSON text
	if toolsetResult.Error != nil {
		t.Errorf("expected no error in result, got: %v", toolsetResult.Error)
	}

	if toolsetResult.Content == "" {
		t.Error("expected content to be set")
	}

	// Verify the content is valid JSON
	var decoded siteCounts
	if err := json.Unmarshal([]byte(toolsetResult.Content), &decoded); err != nil {
		t.Errorf("failed to unmarshal content: %v", err)
	}
}

func TestToToolsetResult_Error(t *testing.T) {
	errorMsg := "test error"
	result := NewErrorResult(errors.New(errorMsg))
	toolsetResult, err := result.ToToolsetResult()

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if toolsetResult == nil {
		t.Fatal("expected non-nil Toolset result")
	}

	// The Toolset result should contain the error
	if toolsetResult.Error == nil {
		t.Fatal("expected error in result")
	}

	if toolsetResult.Error.Error() != errorMsg {
		t.Errorf("expected error message %q, got %q", errorMsg, toolsetResult.Error.Error())
	}
}

func TestMarshalError(t *testing.T) {
	// Create a type that can't be marshaled to JSON
	type UnmarshalableType struct {
		Channel chan int // channels can't be marshaled to JSON
	}

	result := NewSuccessResult(UnmarshalableType{Channel: make(chan int)})

	if !result.IsError() {
		t.Error("expected error result when marshaling fails")
	}

	if result.Error == nil {
		t.Error("expected Error to be set")
	}
}

func TestWithSummary(t *testing.T) {
	result := NewSuccessResult(siteCounts{Site: "CCAFS LC-40", Launches: 26, Successes: 7}).
		WithSummary("7 of 26 launches succeeded")

	mcpResult, err := result.ToMCPResult()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mcpResult.Content) != 2 {
		t.Fatalf("expected JSON and summary content, got %d items", len(mcpResult.Content))
	}
	summary, ok := mcpResult.Content[1].(mcp.TextContent)
	if !ok || summary.Text != "7 of 26 launches succeeded" {
		t.Errorf("unexpected summary content %+v", mcpResult.Content[1])
	}
	if mcpResult.StructuredContent == nil {
		t.Error("expected structured content to be set")
	}

	toolsetResult, _ := result.ToToolsetResult()
	var decoded siteCounts
	if err := json.Unmarshal([]byte(toolsetResult.Content), &decoded); err != nil {
		t.Errorf("toolset content must stay plain JSON: %v", err)
	}

	errResult := NewErrorResult(errors.New("boom")).WithSummary("ignored")
	if errResult.Summary != "" {
		t.Error("expected summary to be ignored on error results")
	}
}
