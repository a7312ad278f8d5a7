package dto

import (
	"time"

	"tasksahead/model"
)

type StreakResponse struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	TasksCompleted int       `json:"tasksCompleted"`
	StreakDay      int       `json:"streakDay"`
	BadgeEarned    *string   `json:"badgeEarned"`
	CreatedAt      time.Time `json:"createdAt"`
}

func ToStreakResponse(entry *model.StreakEntry) StreakResponse {
	response := StreakResponse{
		ID:             entry.EntryID,
		Date:           entry.Date,
		TasksCompleted: entry.TasksCompleted,
		StreakDay:      entry.StreakDay,
		CreatedAt:      entry.CreatedAt,
	}
	if entry.BadgeEarned != "" {
		badge := entry.BadgeEarned
		response.BadgeEarned = &badge
	}
	return response
}

func ToStreakResponses(entries []*model.StreakEntry) []StreakResponse {
	responses := make([]StreakResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToStreakResponse(entry)
	}
	return responses
}
