package usecase

import (
	"tasksahead/model"
	"tasksahead/repository"
)

// StatsService composes the dashboard summary from the task store and the
// user's streak counters. It keeps no state of its own.
type StatsService struct {
	tasks *repository.TasksRepo
	users *repository.UsersRepo
}

func NewStatsService(tasks *repository.TasksRepo, users *repository.UsersRepo) *StatsService {
	return &StatsService{tasks: tasks, users: users}
}

func (svc *StatsService) GetUserStats(userID string) (*model.UserStats, error) {
	user := svc.users.GetUser(userID)
	if user == nil {
		return nil, ErrNotFound
	}

	tasks := svc.tasks.GetUserTasks(userID)
	completed := 0
	for _, task := range tasks {
		if task.Completed {
			completed++
		}
	}

	stats := &model.UserStats{
		CurrentStreak:       user.CurrentStreak,
		LongestStreak:       user.LongestStreak,
		TotalTasksCompleted: user.TotalTasksCompleted,
		TotalTasks:          len(tasks),
		OverdueTasks:        len(svc.tasks.GetOverdueTasks(userID)),
		TodayTasks:          len(svc.tasks.GetTodayTasks(userID)),
		CompletedTasks:      completed,
	}
	if user.CurrentStreak > 0 {
		// Exact-match only: off-threshold streak days show no badge.
		stats.CurrentBadge = model.BadgeForStreak(user.CurrentStreak)
	}
	return stats, nil
}
