package main

import (
	"context"
	"fmt"
	"log"

	jsoniter "github.com/json-iterator/go"
	"github.com/mark3labs/mcp-go/mcp"

	"slzmcp/internal/mcpclient"
)

const serverURL = "http://127.0.0.1:8000/mcp"

func main() {
	ctx := context.Background()
	session, err := mcpclient.Connect(ctx, &mcpclient.Config{
		BaseUrl: serverURL,
		Name:    "slzmcp-client",
		Version: "0.1.0",
	})
	if err != nil {
		log.Fatalf("connect %s: %v", serverURL, err)
	}
	defer session.Close()

	tools, err := session.ListTools(ctx)
	if err != nil {
		log.Fatalf("list tools: %v", err)
	}
	fmt.Println("Available tools:")
	for _, t := range tools {
		fmt.Printf("  - %s: %s\n", t.Name, t.Description)
	}

	result, err := session.CallTool(ctx, "echo", map[string]any{"message": "Hello from client!"})
	if err != nil {
		log.Fatalf("call echo: %v", err)
	}
	if text, ok := firstText(result); ok {
		fmt.Printf("\nResult: %s\n", text)
	} else {
		raw, _ := jsoniter.MarshalToString(result.Content)
		fmt.Printf("\nResult: %s\n", raw)
	}

	//会话ID后续可用于重连
	fmt.Printf("\nSession ID: %s\n", session.ID())
}

func firstText(result *mcp.CallToolResult) (string, bool) {
	if len(result.Content) == 0 {
		return "", false
	}
	text, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		return "", false
	}
	return text.Text, true
}
