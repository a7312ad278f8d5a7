package model

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriority reports whether p is one of the three known levels.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	TaskID      string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	DueTime     string     `json:"dueTime"` // HH:MM display hint, not cross-checked against DueDate
	Tags        []string   `json:"tags"`
	ProjectID   string     `json:"projectId"`
	Overdue     bool       `json:"overdue"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskUpdate is a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	Priority    *Priority  `json:"priority" binding:"omitempty,priority"`
	DueDate     *time.Time `json:"dueDate"`
	DueTime     *string    `json:"dueTime"`
	Tags        *[]string  `json:"tags"`
	ProjectID   *string    `json:"projectId"`
}

// IsOverdue applies the overdue rule: a due date in the past on an
// incomplete task.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && !t.Completed
}
