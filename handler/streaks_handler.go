package handler

import (
	"tasksahead/dto"
	"tasksahead/usecase"
	"tasksahead/utils"

	"github.com/gin-gonic/gin"
)

type StreakHandler struct {
	service *usecase.StreakService
	userID  string
}

func NewStreakHandler(service *usecase.StreakService, userID string) *StreakHandler {
	return &StreakHandler{service: service, userID: userID}
}

// GetStreaks returns the user's per-day completion log, newest first.
func (h *StreakHandler) GetStreaks(c *gin.Context) {
	entries := h.service.GetUserStreaks(h.userID)
	utils.Success(c, dto.ToStreakResponses(entries))
}
