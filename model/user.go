package model

import "time"

type User struct {
	UserID              string    `json:"userId"`
	Username            string    `json:"username"`
	Email               string    `json:"email"`
	Password            string    `json:"-"` // argon2id hash, never serialized
	CurrentStreak       int       `json:"currentStreak"`
	LongestStreak       int       `json:"longestStreak"`
	TotalTasksCompleted int       `json:"totalTasksCompleted"`
	SimpleMode          bool      `json:"simpleMode"`
	Theme               string    `json:"theme"`
	CreatedAt           time.Time `json:"createdAt"`
}

// SettingsUpdate carries the only user fields a settings change may touch.
// Streak counters are owned by the streak engine.
type SettingsUpdate struct {
	Theme      *string `json:"theme"`
	SimpleMode *bool   `json:"simpleMode"`
}
