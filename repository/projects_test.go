package repository

import (
	"testing"

	"tasksahead/model"
)

func TestCreateProjectDefaults(t *testing.T) {
	repo := NewProjectsRepo()

	project := repo.CreateProject(&model.Project{Name: "Personal", UserID: "user-1"})
	if project.ProjectID == "" {
		t.Error("Expected project id to be assigned")
	}
	if project.Color != model.DefaultProjectColor {
		t.Errorf("Expected default color %q, got %q", model.DefaultProjectColor, project.Color)
	}

	colored := repo.CreateProject(&model.Project{Name: "Work", Color: "#ef4444", UserID: "user-1"})
	if colored.Color != "#ef4444" {
		t.Errorf("Expected explicit color kept, got %q", colored.Color)
	}
}

func TestDuplicateProjectNamesAllowed(t *testing.T) {
	repo := NewProjectsRepo()

	repo.CreateProject(&model.Project{Name: "Personal", UserID: "user-1"})
	repo.CreateProject(&model.Project{Name: "Personal", UserID: "user-1"})

	if projects := repo.GetUserProjects("user-1"); len(projects) != 2 {
		t.Errorf("Expected duplicate names to be allowed, got %d projects", len(projects))
	}
}

func TestDeleteProjectDoesNotCascade(t *testing.T) {
	projects := NewProjectsRepo()
	tasks := NewTasksRepo()

	project := projects.CreateProject(&model.Project{Name: "Doomed", UserID: "user-1"})
	task := tasks.CreateTask(&model.Task{UserID: "user-1", Title: "Orphan to be", ProjectID: project.ProjectID})

	if !projects.DeleteProject(project.ProjectID) {
		t.Fatal("Expected delete to succeed")
	}

	// The task keeps its now-dangling reference.
	orphaned := tasks.GetTask(task.TaskID)
	if orphaned.ProjectID != project.ProjectID {
		t.Errorf("Expected projectId unchanged after project deletion, got %q", orphaned.ProjectID)
	}
	if projects.GetProject(project.ProjectID) != nil {
		t.Error("Expected project lookup to no longer resolve")
	}
}

func TestUpdateProject(t *testing.T) {
	repo := NewProjectsRepo()
	project := repo.CreateProject(&model.Project{Name: "Old name", UserID: "user-1"})

	name := "New name"
	updated := repo.UpdateProject(project.ProjectID, &model.ProjectUpdate{Name: &name})
	if updated == nil || updated.Name != "New name" {
		t.Errorf("Expected renamed project, got %+v", updated)
	}

	if updated := repo.UpdateProject("missing", &model.ProjectUpdate{Name: &name}); updated != nil {
		t.Error("Expected update of unknown project to return nil")
	}
}
