package main

import (
	"slzmcp/internal/inits"

	"github.com/mszlu521/thunder/config"
	"github.com/mszlu521/thunder/logs"
	"github.com/mszlu521/thunder/server"
)

func main() {
	// 配置来自 etc/config.yml
	config.Init()
	conf := config.GetConfig()
	logs.Init(conf.Log)
	s := server.NewServer(conf)
	inits.Init(s, conf)
	s.Start()
}
