package tool

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mark3labs/mcp-go/mcp"
)

func echoRequest(args map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Name = "echo"
	request.Params.Arguments = args
	return request
}

func TestEchoTool_Build(t *testing.T) {
	built := NewEchoTool().Build()
	if built.Name != "echo" {
		t.Errorf("expected tool name echo, got %q", built.Name)
	}
	if built.Description != "Echo back the message" {
		t.Errorf("unexpected description: %q", built.Description)
	}
	if diff := cmp.Diff([]string{"message"}, built.InputSchema.Required); diff != "" {
		t.Errorf("required parameters mismatch (-want +got):\n%s", diff)
	}
	if _, ok := built.InputSchema.Properties["message"]; !ok {
		t.Error("expected a message property in the input schema")
	}
}

func TestEchoTool_Invoke(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    string
	}{
		{"plain", "Hello from client!", "Echo: Hello from client!"},
		{"empty", "", "Echo: "},
		{"unicode", "你好", "Echo: 你好"},
	}
	echo := NewEchoTool()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := echo.Invoke(context.Background(), echoRequest(map[string]any{"message": tc.message}))
			if err != nil {
				t.Fatalf("invoke failed: %v", err)
			}
			if result.IsError {
				t.Fatalf("unexpected error result: %+v", result.Content)
			}
			text, ok := mcp.AsTextContent(result.Content[0])
			if !ok {
				t.Fatalf("expected text content, got %T", result.Content[0])
			}
			if diff := cmp.Diff(tc.want, text.Text); diff != "" {
				t.Errorf("echo text mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEchoTool_InvokeMissingMessage(t *testing.T) {
	echo := NewEchoTool()
	result, err := echo.Invoke(context.Background(), echoRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("invoke failed: %v", err)
	}
	if !result.IsError {
		t.Error("expected an error result for a missing message argument")
	}
}

func TestEchoTool_InvokeWrongType(t *testing.T) {
	echo := NewEchoTool()
	result, err := echo.Invoke(context.Background(), echoRequest(map[string]any{"message": 42}))
	if err != nil {
		t.Fatalf("invoke failed: %v", err)
	}
	if !result.IsError {
		t.Error("expected an error result for a non-string message argument")
	}
}
