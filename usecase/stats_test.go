package usecase

import (
	"testing"
	"time"

	"tasksahead/model"
	"tasksahead/repository"
)

func TestGetUserStats(t *testing.T) {
	users := repository.NewUsersRepo()
	tasks := repository.NewTasksRepo()
	service := NewStatsService(tasks, users)

	user := users.CreateUser(&model.User{
		Username:            "demo",
		CurrentStreak:       7,
		LongestStreak:       15,
		TotalTasksCompleted: 42,
	})

	yesterday := time.Now().Add(-24 * time.Hour)
	shortly := time.Now().Add(time.Minute)

	tasks.CreateTask(&model.Task{UserID: user.UserID, Title: "overdue one", DueDate: &yesterday})
	tasks.CreateTask(&model.Task{UserID: user.UserID, Title: "due today", DueDate: &shortly})
	done := tasks.CreateTask(&model.Task{UserID: user.UserID, Title: "finished"})
	completed := true
	tasks.UpdateTask(done.TaskID, &model.TaskUpdate{Completed: &completed})

	stats, err := service.GetUserStats(user.UserID)
	if err != nil {
		t.Fatalf("GetUserStats failed: %v", err)
	}

	if stats.TotalTasks != 3 {
		t.Errorf("Expected totalTasks 3, got %d", stats.TotalTasks)
	}
	if stats.OverdueTasks != 1 {
		t.Errorf("Expected overdueTasks 1, got %d", stats.OverdueTasks)
	}
	if stats.TodayTasks != 1 {
		t.Errorf("Expected todayTasks 1, got %d", stats.TodayTasks)
	}
	if stats.CompletedTasks != 1 {
		t.Errorf("Expected completedTasks 1, got %d", stats.CompletedTasks)
	}
	if stats.CurrentStreak != 7 || stats.LongestStreak != 15 || stats.TotalTasksCompleted != 42 {
		t.Errorf("Expected user counters passed through, got %+v", stats)
	}
	if stats.CurrentBadge == nil || stats.CurrentBadge.Name != "Warrior of the Week" {
		t.Errorf("Expected Warrior of the Week badge at streak 7, got %+v", stats.CurrentBadge)
	}
}

func TestGetUserStatsOffThresholdBadge(t *testing.T) {
	users := repository.NewUsersRepo()
	tasks := repository.NewTasksRepo()
	service := NewStatsService(tasks, users)

	user := users.CreateUser(&model.User{Username: "demo", CurrentStreak: 8, LongestStreak: 15})

	stats, err := service.GetUserStats(user.UserID)
	if err != nil {
		t.Fatalf("GetUserStats failed: %v", err)
	}
	if stats.CurrentBadge != nil {
		t.Errorf("Expected no badge at streak 8, got %+v", stats.CurrentBadge)
	}
}

func TestGetUserStatsUnknownUser(t *testing.T) {
	service := NewStatsService(repository.NewTasksRepo(), repository.NewUsersRepo())

	if _, err := service.GetUserStats("missing"); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
