package usecase

import (
	"strings"

	"tasksahead/model"
	"tasksahead/repository"
)

type ProjectService struct {
	projects *repository.ProjectsRepo
}

func NewProjectService(projects *repository.ProjectsRepo) *ProjectService {
	return &ProjectService{projects: projects}
}

// CreateProject validates and stores a new project. Duplicate names are
// allowed; only an empty name is rejected.
func (svc *ProjectService) CreateProject(project *model.Project) (*model.Project, error) {
	if project.UserID == "" {
		return nil, invalid("userId", "is required")
	}
	if strings.TrimSpace(project.Name) == "" {
		return nil, invalid("name", "is required")
	}
	return svc.projects.CreateProject(project), nil
}

func (svc *ProjectService) GetProject(projectID string) (*model.Project, error) {
	project := svc.projects.GetProject(projectID)
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

func (svc *ProjectService) GetUserProjects(userID string) []*model.Project {
	return svc.projects.GetUserProjects(userID)
}

func (svc *ProjectService) UpdateProject(projectID string, updates *model.ProjectUpdate) (*model.Project, error) {
	if updates.Name != nil && strings.TrimSpace(*updates.Name) == "" {
		return nil, invalid("name", "cannot be empty")
	}
	project := svc.projects.UpdateProject(projectID, updates)
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

// DeleteProject removes a project. Tasks still referencing it keep their
// dangling projectId.
func (svc *ProjectService) DeleteProject(projectID string) error {
	if !svc.projects.DeleteProject(projectID) {
		return ErrNotFound
	}
	return nil
}

// ProjectsByID returns a lookup map used to embed projects into task
// responses.
func (svc *ProjectService) ProjectsByID(userID string) map[string]*model.Project {
	byID := make(map[string]*model.Project)
	for _, project := range svc.projects.GetUserProjects(userID) {
		byID[project.ProjectID] = project
	}
	return byID
}
