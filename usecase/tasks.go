package usecase

import (
	"strings"
	"time"

	"tasksahead/middleware"
	"tasksahead/model"
	"tasksahead/repository"
)

type TaskService struct {
	tasks   *repository.TasksRepo
	streaks *StreakService
	now     func() time.Time
}

func NewTaskService(tasks *repository.TasksRepo, streaks *StreakService) *TaskService {
	return &TaskService{
		tasks:   tasks,
		streaks: streaks,
		now:     time.Now,
	}
}

// CreateTask validates and stores a new task. New tasks always start
// incomplete; priority defaults to medium when omitted.
func (svc *TaskService) CreateTask(task *model.Task) (*model.Task, error) {
	if task.UserID == "" {
		return nil, invalid("userId", "is required")
	}
	if strings.TrimSpace(task.Title) == "" {
		return nil, invalid("title", "is required")
	}

	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if !model.ValidPriority(task.Priority) {
		return nil, invalid("priority", "must be low, medium or high")
	}

	validTags, err := validateTags(task.Tags)
	if err != nil {
		return nil, err
	}
	task.Tags = validTags

	created := svc.tasks.CreateTask(task)
	middleware.TrackTaskOperation("create")
	return created, nil
}

// GetTask returns a single task or ErrNotFound.
func (svc *TaskService) GetTask(taskID string) (*model.Task, error) {
	task := svc.tasks.GetTask(taskID)
	if task == nil {
		return nil, ErrNotFound
	}
	return task, nil
}

// UpdateTask applies a partial update. When the update flips completed from
// false to true the streak engine records the completion; flipping it back
// clears completedAt but never rolls streak progress back.
func (svc *TaskService) UpdateTask(taskID string, updates *model.TaskUpdate) (*model.Task, error) {
	if updates.Title != nil && strings.TrimSpace(*updates.Title) == "" {
		return nil, invalid("title", "cannot be empty")
	}
	if updates.Priority != nil && !model.ValidPriority(*updates.Priority) {
		return nil, invalid("priority", "must be low, medium or high")
	}
	if updates.Tags != nil {
		validTags, err := validateTags(*updates.Tags)
		if err != nil {
			return nil, err
		}
		updates.Tags = &validTags
	}

	existing := svc.tasks.GetTask(taskID)
	if existing == nil {
		return nil, ErrNotFound
	}
	completedNow := updates.Completed != nil && *updates.Completed && !existing.Completed

	task := svc.tasks.UpdateTask(taskID, updates)
	if task == nil {
		return nil, ErrNotFound
	}
	middleware.TrackTaskOperation("update")

	if completedNow {
		if _, err := svc.streaks.RecordCompletion(task.UserID, svc.now()); err != nil {
			return nil, err
		}
	}

	return task, nil
}

// DeleteTask removes a task or returns ErrNotFound.
func (svc *TaskService) DeleteTask(taskID string) error {
	if !svc.tasks.DeleteTask(taskID) {
		return ErrNotFound
	}
	middleware.TrackTaskOperation("delete")
	return nil
}

// GetUserTasks returns the user's tasks, newest first.
func (svc *TaskService) GetUserTasks(userID string) []*model.Task {
	return svc.tasks.GetUserTasks(userID)
}

func (svc *TaskService) GetOverdueTasks(userID string) []*model.Task {
	return svc.tasks.GetOverdueTasks(userID)
}

func (svc *TaskService) GetTodayTasks(userID string) []*model.Task {
	return svc.tasks.GetTodayTasks(userID)
}

func (svc *TaskService) GetTasksByPriority(userID string, priority model.Priority) []*model.Task {
	return svc.tasks.GetTasksByPriority(userID, priority)
}

func (svc *TaskService) GetTasksByProject(projectID string) []*model.Task {
	return svc.tasks.GetTasksByProject(projectID)
}

// SearchTasks matches query case-insensitively against title, description
// and tags. An empty query returns nothing.
func (svc *TaskService) SearchTasks(userID string, query string) []*model.Task {
	if query == "" {
		return []*model.Task{}
	}
	return svc.tasks.SearchTasks(userID, query)
}

func validateTags(tags []string) ([]string, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	var validTags []string
	for _, tag := range tags {
		if tag != "" {
			validTags = append(validTags, tag)
		}
	}
	if len(validTags) > 5 {
		return nil, invalid("tags", "cannot exceed 5 tags per task")
	}
	for _, tag := range validTags {
		if len(tag) > 20 {
			return nil, invalid("tags", "tag cannot exceed 20 characters")
		}
	}
	return validTags, nil
}
