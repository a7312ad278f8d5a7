package handler

import (
	"time"

	"tasksahead/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	startedAt time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":        "ok",
		"uptime":        time.Since(h.startedAt).Round(time.Second).String(),
		"cpuPercent":    utils.GetCPUUsage(),
		"memoryPercent": utils.GetMemoryUsage(),
	})
}
