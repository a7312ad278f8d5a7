package dto

import (
	"time"

	"tasksahead/model"
)

type TaskResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Completed   bool             `json:"completed"`
	Priority    model.Priority   `json:"priority"`
	DueDate     *time.Time       `json:"dueDate"`
	DueTime     string           `json:"dueTime,omitempty"`
	Tags        []string         `json:"tags"`
	ProjectID   string           `json:"projectId,omitempty"`
	Overdue     bool             `json:"overdue"`
	CompletedAt *time.Time       `json:"completedAt"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Project     *ProjectResponse `json:"project"`
}

// ToTaskResponse converts a task, embedding its project when it still
// resolves. A dangling projectId yields a null project, not an error.
func ToTaskResponse(task *model.Task, project *model.Project) TaskResponse {
	response := TaskResponse{
		ID:          task.TaskID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
		DueTime:     task.DueTime,
		Tags:        task.Tags,
		ProjectID:   task.ProjectID,
		Overdue:     task.Overdue,
		CompletedAt: task.CompletedAt,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if task.Tags == nil {
		response.Tags = []string{}
	}
	if project != nil {
		converted := ToProjectResponse(project)
		response.Project = &converted
	}
	return response
}

// ToTaskResponses converts a task list, resolving each task's project
// through the supplied lookup map.
func ToTaskResponses(tasks []*model.Task, projectsByID map[string]*model.Project) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task, projectsByID[task.ProjectID])
	}
	return responses
}
