package repository

import (
	"testing"

	"tasksahead/model"
)

func TestAdvanceStreak(t *testing.T) {
	repo := NewUsersRepo()
	user := repo.CreateUser(&model.User{
		Username:            "demo",
		CurrentStreak:       7,
		LongestStreak:       15,
		TotalTasksCompleted: 42,
	})

	updated := repo.AdvanceStreak(user.UserID, 8)
	if updated.CurrentStreak != 8 {
		t.Errorf("Expected currentStreak 8, got %d", updated.CurrentStreak)
	}
	if updated.LongestStreak != 15 {
		t.Errorf("Expected longestStreak to stay at 15, got %d", updated.LongestStreak)
	}
	if updated.TotalTasksCompleted != 43 {
		t.Errorf("Expected totalTasksCompleted 43, got %d", updated.TotalTasksCompleted)
	}

	// Push past the high-water mark.
	for day := 9; day <= 16; day++ {
		updated = repo.AdvanceStreak(user.UserID, day)
	}
	if updated.LongestStreak != 16 {
		t.Errorf("Expected longestStreak raised to 16, got %d", updated.LongestStreak)
	}
}

func TestUpdateSettingsLeavesStreakAlone(t *testing.T) {
	repo := NewUsersRepo()
	user := repo.CreateUser(&model.User{Username: "demo", CurrentStreak: 7, LongestStreak: 15})

	theme := "dark"
	simpleMode := true
	updated := repo.UpdateSettings(user.UserID, &model.SettingsUpdate{Theme: &theme, SimpleMode: &simpleMode})

	if updated.Theme != "dark" || !updated.SimpleMode {
		t.Errorf("Expected settings applied, got theme=%q simpleMode=%v", updated.Theme, updated.SimpleMode)
	}
	if updated.CurrentStreak != 7 || updated.LongestStreak != 15 {
		t.Error("Expected streak counters untouched by settings update")
	}
}

func TestCreateUserDefaults(t *testing.T) {
	repo := NewUsersRepo()
	user := repo.CreateUser(&model.User{Username: "demo"})

	if user.UserID == "" {
		t.Error("Expected user id to be assigned")
	}
	if user.Theme != "light" {
		t.Errorf("Expected default theme light, got %q", user.Theme)
	}

	if found := repo.GetUserByUsername("demo"); found == nil {
		t.Error("Expected lookup by username to resolve")
	}
	if found := repo.GetUser("missing"); found != nil {
		t.Error("Expected unknown id to return nil")
	}
}
