package dto

import (
	"time"

	"tasksahead/model"
)

// UserResponse is the settings-update reply. The password hash never leaves
// the process.
type UserResponse struct {
	UserID              string    `json:"userId"`
	Username            string    `json:"username"`
	Email               string    `json:"email"`
	CurrentStreak       int       `json:"currentStreak"`
	LongestStreak       int       `json:"longestStreak"`
	TotalTasksCompleted int       `json:"totalTasksCompleted"`
	SimpleMode          bool      `json:"simpleMode"`
	Theme               string    `json:"theme"`
	CreatedAt           time.Time `json:"createdAt"`
}

func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		UserID:              user.UserID,
		Username:            user.Username,
		Email:               user.Email,
		CurrentStreak:       user.CurrentStreak,
		LongestStreak:       user.LongestStreak,
		TotalTasksCompleted: user.TotalTasksCompleted,
		SimpleMode:          user.SimpleMode,
		Theme:               user.Theme,
		CreatedAt:           user.CreatedAt,
	}
}
