package handler

import (
	"tasksahead/usecase"
	"tasksahead/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	service *usecase.StatsService
	userID  string
}

func NewStatsHandler(service *usecase.StatsService, userID string) *StatsHandler {
	return &StatsHandler{service: service, userID: userID}
}

func (h *StatsHandler) GetUserStats(c *gin.Context) {
	stats, err := h.service.GetUserStats(h.userID)
	if err != nil {
		writeError(c, err, "User not found")
		return
	}
	utils.Success(c, stats)
}
