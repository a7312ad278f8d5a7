package model

import "time"

const DefaultProjectColor = "#3b82f6"

type Project struct {
	ProjectID string    `json:"id"`
	Name      string    `json:"name" binding:"required"`
	Color     string    `json:"color"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProjectUpdate is a partial update; nil fields are left untouched.
type ProjectUpdate struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}
