package repository

import (
	"sync"
	"time"

	"tasksahead/model"

	"github.com/google/uuid"
)

type ProjectsRepo struct {
	mu       sync.RWMutex
	projects map[string]*model.Project
	now      func() time.Time
}

func NewProjectsRepo() *ProjectsRepo {
	return &ProjectsRepo{
		projects: make(map[string]*model.Project),
		now:      time.Now,
	}
}

func (r *ProjectsRepo) CreateProject(project *model.Project) *model.Project {
	r.mu.Lock()
	defer r.mu.Unlock()

	if project.ProjectID == "" {
		project.ProjectID = uuid.NewString()
	}
	if project.Color == "" {
		project.Color = model.DefaultProjectColor
	}
	project.CreatedAt = r.now()

	r.projects[project.ProjectID] = project
	return cloneProject(project)
}

// GetProject returns the project with the given id, or nil when absent.
func (r *ProjectsRepo) GetProject(id string) *model.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, ok := r.projects[id]
	if !ok {
		return nil
	}
	return cloneProject(project)
}

func (r *ProjectsRepo) GetUserProjects(userID string) []*model.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var projects []*model.Project
	for _, project := range r.projects {
		if project.UserID == userID {
			projects = append(projects, cloneProject(project))
		}
	}
	return projects
}

// UpdateProject applies a partial update, or returns nil when absent.
func (r *ProjectsRepo) UpdateProject(id string, updates *model.ProjectUpdate) *model.Project {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[id]
	if !ok {
		return nil
	}
	if updates.Name != nil {
		project.Name = *updates.Name
	}
	if updates.Color != nil {
		project.Color = *updates.Color
	}
	return cloneProject(project)
}

// DeleteProject removes a project and reports whether it existed. Tasks
// referencing it keep their projectId; there is no cascade.
func (r *ProjectsRepo) DeleteProject(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return false
	}
	delete(r.projects, id)
	return true
}

func cloneProject(project *model.Project) *model.Project {
	clone := *project
	return &clone
}
