package handler

import (
	"time"

	"tasksahead/dto"
	"tasksahead/model"
	"tasksahead/usecase"
	"tasksahead/utils"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	service  *usecase.TaskService
	projects *usecase.ProjectService
	userID   string
}

func NewTaskHandler(service *usecase.TaskService, projects *usecase.ProjectService, userID string) *TaskHandler {
	return &TaskHandler{
		service:  service,
		projects: projects,
		userID:   userID,
	}
}

// GetTasks lists tasks with optional filtering. search wins over priority,
// priority over filter; an unknown priority or filter value falls back to
// the full list. Every task carries its embedded project, or null when the
// projectId no longer resolves.
func (h *TaskHandler) GetTasks(c *gin.Context) {
	var tasks []*model.Task

	search := c.Query("search")
	priority := model.Priority(c.Query("priority"))
	projectID := c.Query("projectId")

	switch {
	case search != "":
		tasks = h.service.SearchTasks(h.userID, search)
	case model.ValidPriority(priority):
		tasks = h.service.GetTasksByPriority(h.userID, priority)
	case projectID != "":
		tasks = h.service.GetTasksByProject(projectID)
	case c.Query("filter") == "overdue":
		tasks = h.service.GetOverdueTasks(h.userID)
	case c.Query("filter") == "today":
		tasks = h.service.GetTodayTasks(h.userID)
	default:
		tasks = h.service.GetUserTasks(h.userID)
	}

	projectsByID := h.projects.ProjectsByID(h.userID)
	utils.Success(c, dto.ToTaskResponses(tasks, projectsByID))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.service.GetTask(c.Param("id"))
	if err != nil {
		writeError(c, err, "Task not found")
		return
	}

	project, _ := h.projects.GetProject(task.ProjectID)
	utils.Success(c, dto.ToTaskResponse(task, project))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req struct {
		Title       string         `json:"title" binding:"required"`
		Description string         `json:"description"`
		Priority    model.Priority `json:"priority" binding:"omitempty,priority"`
		DueDate     *time.Time     `json:"dueDate"`
		DueTime     string         `json:"dueTime"`
		Tags        []string       `json:"tags"`
		ProjectID   string         `json:"projectId"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid task data: "+err.Error())
		return
	}

	task := &model.Task{
		UserID:      h.userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		DueTime:     req.DueTime,
		Tags:        req.Tags,
		ProjectID:   req.ProjectID,
	}

	created, err := h.service.CreateTask(task)
	if err != nil {
		writeError(c, err, "Task not found")
		return
	}

	project, _ := h.projects.GetProject(created.ProjectID)
	utils.Created(c, dto.ToTaskResponse(created, project))
}

// UpdateTask applies a partial update. A payload newly setting
// completed:true runs the streak engine before the response is written.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID := c.Param("id")

	var updates model.TaskUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid task data: "+err.Error())
		return
	}

	task, err := h.service.UpdateTask(taskID, &updates)
	if err != nil {
		writeError(c, err, "Task not found")
		return
	}

	project, _ := h.projects.GetProject(task.ProjectID)
	utils.Success(c, dto.ToTaskResponse(task, project))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.service.DeleteTask(c.Param("id")); err != nil {
		writeError(c, err, "Task not found")
		return
	}
	utils.NoContent(c)
}
