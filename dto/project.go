package dto

import (
	"time"

	"tasksahead/model"
)

type ProjectResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToProjectResponse(project *model.Project) ProjectResponse {
	return ProjectResponse{
		ID:        project.ProjectID,
		Name:      project.Name,
		Color:     project.Color,
		UserID:    project.UserID,
		CreatedAt: project.CreatedAt,
	}
}

func ToProjectResponses(projects []*model.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = ToProjectResponse(project)
	}
	return responses
}
