package model

// UserStats is the composed dashboard summary. It holds no state of its
// own; every field is derived from the task store and the user record.
type UserStats struct {
	CurrentStreak       int    `json:"currentStreak"`
	LongestStreak       int    `json:"longestStreak"`
	TotalTasksCompleted int    `json:"totalTasksCompleted"`
	TotalTasks          int    `json:"totalTasks"`
	OverdueTasks        int    `json:"overdueTasks"`
	TodayTasks          int    `json:"todayTasks"`
	CompletedTasks      int    `json:"completedTasks"`
	CurrentBadge        *Badge `json:"currentBadge"`
}
