package router

import (
	"slzmcp/internal/tool"

	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName    = "slzmcp-server"
	ServerVersion = "0.1.0"
	// streamable http 的挂载路径
	EndpointPath = "/mcp"
)

type McpRouter struct {
}

func (m *McpRouter) Register(engine *gin.Engine) {
	//这里需要使用mcp-go 创建mcp服务
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
	)
	echo := tool.NewEchoTool()
	mcpServer.AddTool(echo.Build(), echo.Invoke)
	//客户端走 streamable http，会话ID由传输层分配
	httpServer := server.NewStreamableHTTPServer(
		mcpServer,
		server.WithEndpointPath(EndpointPath),
	)
	engine.Any(EndpointPath, gin.WrapH(httpServer))
}
