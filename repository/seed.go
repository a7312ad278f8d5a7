package repository

import (
	"log"
	"time"

	"tasksahead/model"
	"tasksahead/services"
)

// ProvisionDefaultUser creates the single account every request operates on.
// The app has no registration or login; the user exists from process start.
func ProvisionDefaultUser(users *UsersRepo, username, email, password string) *model.User {
	hash, err := services.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash default user password: %v", err)
	}

	return users.CreateUser(&model.User{
		Username:            username,
		Email:               email,
		Password:            hash,
		CurrentStreak:       7,
		LongestStreak:       15,
		TotalTasksCompleted: 42,
		Theme:               "light",
	})
}

// SeedSampleData loads the demo projects and tasks so a fresh process has
// something on the board: three projects and a mix of overdue, due-today and
// completed tasks.
func SeedSampleData(tasks *TasksRepo, projects *ProjectsRepo, userID string) {
	personal := projects.CreateProject(&model.Project{Name: "Personal", Color: "#3b82f6", UserID: userID})
	work := projects.CreateProject(&model.Project{Name: "Work", Color: "#ef4444", UserID: userID})
	home := projects.CreateProject(&model.Project{Name: "Home", Color: "#22c55e", UserID: userID})

	now := time.Now()
	twoDaysAgo := now.Add(-2 * 24 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)

	tasks.CreateTask(&model.Task{
		UserID:      userID,
		Title:       "Complete quarterly report",
		Description: "Finish Q4 performance analysis and submit to management",
		Priority:    model.PriorityHigh,
		DueDate:     &twoDaysAgo,
		DueTime:     "17:00",
		Tags:        []string{"work", "urgent"},
		ProjectID:   work.ProjectID,
	})
	tasks.CreateTask(&model.Task{
		UserID:    userID,
		Title:     "Call dentist for appointment",
		Priority:  model.PriorityMedium,
		DueDate:   &yesterday,
		DueTime:   "10:00",
		Tags:      []string{"health"},
		ProjectID: personal.ProjectID,
	})
	tasks.CreateTask(&model.Task{
		UserID:      userID,
		Title:       "Review presentation slides",
		Description: "Final review before tomorrow's client meeting",
		Priority:    model.PriorityHigh,
		DueDate:     &now,
		DueTime:     "18:00",
		Tags:        []string{"presentation", "work"},
		ProjectID:   work.ProjectID,
	})
	tasks.CreateTask(&model.Task{
		UserID:    userID,
		Title:     "Grocery shopping",
		Priority:  model.PriorityMedium,
		DueDate:   &now,
		DueTime:   "20:00",
		Tags:      []string{"shopping"},
		ProjectID: personal.ProjectID,
	})

	watered := tasks.CreateTask(&model.Task{
		UserID:    userID,
		Title:     "Water plants",
		Priority:  model.PriorityLow,
		DueDate:   &now,
		DueTime:   "14:30",
		Tags:      []string{"routine"},
		ProjectID: home.ProjectID,
	})
	completed := true
	tasks.UpdateTask(watered.TaskID, &model.TaskUpdate{Completed: &completed})

	log.Printf("Seeded demo data for user %s", userID)
}
