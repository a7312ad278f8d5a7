package handler

import (
	"tasksahead/dto"
	"tasksahead/model"
	"tasksahead/usecase"
	"tasksahead/utils"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	service *usecase.UserService
	userID  string
}

func NewSettingsHandler(service *usecase.UserService, userID string) *SettingsHandler {
	return &SettingsHandler{service: service, userID: userID}
}

// UpdateSettings changes theme and simple-mode preferences. Streak counters
// cannot be reached from this endpoint.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var updates model.SettingsUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid settings data: "+err.Error())
		return
	}

	user, err := h.service.UpdateSettings(h.userID, &updates)
	if err != nil {
		writeError(c, err, "User not found")
		return
	}

	utils.Success(c, dto.ToUserResponse(user))
}
