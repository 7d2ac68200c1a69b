package router

import (
	"github.com/mszlu521/thunder/event"
)

// Event 预留的事件注册入口
type Event struct {
}

func (e *Event) Register() {
}

var _ event.IEvent = (*Event)(nil)
