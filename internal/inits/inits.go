package inits

import (
	"slzmcp/internal/router"

	"github.com/mszlu521/thunder/config"
	"github.com/mszlu521/thunder/server"
)

func Init(s *server.Server, conf *config.Config) {
	s.RegisterRouters(&router.Event{}, routers()...)
}

func routers() []server.IRouter {
	return []server.IRouter{&router.HealthRouter{}, &router.McpRouter{}}
}
