package handler

import (
	"tasksahead/dto"
	"tasksahead/model"
	"tasksahead/usecase"
	"tasksahead/utils"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	service *usecase.ProjectService
	userID  string
}

func NewProjectHandler(service *usecase.ProjectService, userID string) *ProjectHandler {
	return &ProjectHandler{service: service, userID: userID}
}

func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects := h.service.GetUserProjects(h.userID)
	utils.Success(c, dto.ToProjectResponses(projects))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Color string `json:"color"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid project data: "+err.Error())
		return
	}

	project, err := h.service.CreateProject(&model.Project{
		Name:   req.Name,
		Color:  req.Color,
		UserID: h.userID,
	})
	if err != nil {
		writeError(c, err, "Project not found")
		return
	}

	utils.Created(c, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var updates model.ProjectUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid project data: "+err.Error())
		return
	}

	project, err := h.service.UpdateProject(c.Param("id"), &updates)
	if err != nil {
		writeError(c, err, "Project not found")
		return
	}

	utils.Success(c, dto.ToProjectResponse(project))
}

// DeleteProject removes a project. Tasks referencing it are left alone;
// their project lookup simply stops resolving.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.service.DeleteProject(c.Param("id")); err != nil {
		writeError(c, err, "Project not found")
		return
	}
	utils.NoContent(c)
}
