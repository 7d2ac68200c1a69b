package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthRouter struct {
}

func (h *HealthRouter) Register(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
