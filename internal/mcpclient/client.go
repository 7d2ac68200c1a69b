package mcpclient

import (
	"context"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

type Config struct {
	BaseUrl string
	Name    string
	Version string
}

// Session 是一条已完成初始化的 streamable http 连接
type Session struct {
	cli *client.Client
}

func Connect(ctx context.Context, config *Config) (*Session, error) {
	//支持streamable http
	cli, err := client.NewStreamableHttpClient(config.BaseUrl)
	if err != nil {
		return nil, err
	}
	err = cli.Start(ctx)
	if err != nil {
		return nil, err
	}

	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{
		Name:    config.Name,
		Version: config.Version,
	}

	_, err = cli.Initialize(ctx, initRequest)
	if err != nil {
		cli.Close()
		return nil, err
	}
	return &Session{cli: cli}, nil
}

func (s *Session) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	tools, err := s.cli.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, err
	}
	return tools.Tools, nil
}

func (s *Session) CallTool(ctx context.Context, name string, arguments map[string]any) (*mcp.CallToolResult, error) {
	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = arguments
	return s.cli.CallTool(ctx, request)
}

// ID 返回传输层分配的会话ID，可用于重连
func (s *Session) ID() string {
	return s.cli.GetSessionId()
}

func (s *Session) Close() error {
	return s.cli.Close()
}
