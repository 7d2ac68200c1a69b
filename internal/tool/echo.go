package tool

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

type EchoTool struct {
}

var _ MCPTool = (*EchoTool)(nil)

func NewEchoTool() *EchoTool {
	return &EchoTool{}
}

func (e *EchoTool) Build() mcp.Tool {
	//这里要加上描述，参数这些才行
	return mcp.NewTool("echo",
		mcp.WithDescription("Echo back the message"),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("Message to echo back"),
		),
	)
}

func (e *EchoTool) Invoke(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Echo: %s", message)), nil
}
