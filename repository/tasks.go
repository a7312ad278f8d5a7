package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"tasksahead/model"

	"github.com/google/uuid"
)

// TasksRepo keeps all tasks in a process-local map. Storage is volatile by
// design; nothing survives a restart.
type TasksRepo struct {
	mu    sync.RWMutex
	tasks map[string]*model.Task
	now   func() time.Time
}

func NewTasksRepo() *TasksRepo {
	return &TasksRepo{
		tasks: make(map[string]*model.Task),
		now:   time.Now,
	}
}

// CreateTask stores a new task. The task starts incomplete; overdue is
// computed from the due date right away so a task created with a past due
// date is flagged from the start.
func (r *TasksRepo) CreateTask(task *model.Task) *model.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if task.TaskID == "" {
		task.TaskID = uuid.NewString()
	}
	task.Completed = false
	task.CompletedAt = nil
	task.CreatedAt = now
	task.UpdatedAt = now
	task.Overdue = task.IsOverdue(now)

	r.tasks[task.TaskID] = task
	return cloneTask(task)
}

// GetTask returns the task with the given id, or nil when absent.
func (r *TasksRepo) GetTask(id string) *model.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil
	}
	return cloneTask(task)
}

// UpdateTask applies a partial update and returns the updated task, or nil
// when the id is unknown. Every update refreshes updatedAt, recomputes the
// overdue flag, and handles the completedAt transition: set when completed
// flips false to true, cleared when it flips back.
func (r *TasksRepo) UpdateTask(id string, updates *model.TaskUpdate) *model.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil
	}

	now := r.now()
	if updates.Title != nil {
		task.Title = *updates.Title
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.Priority != nil {
		task.Priority = *updates.Priority
	}
	if updates.DueDate != nil {
		due := *updates.DueDate
		task.DueDate = &due
	}
	if updates.DueTime != nil {
		task.DueTime = *updates.DueTime
	}
	if updates.Tags != nil {
		task.Tags = append([]string(nil), (*updates.Tags)...)
	}
	if updates.ProjectID != nil {
		task.ProjectID = *updates.ProjectID
	}
	if updates.Completed != nil {
		if *updates.Completed && !task.Completed {
			completedAt := now
			task.CompletedAt = &completedAt
		} else if !*updates.Completed {
			task.CompletedAt = nil
		}
		task.Completed = *updates.Completed
	}

	task.UpdatedAt = now
	task.Overdue = task.IsOverdue(now)

	return cloneTask(task)
}

// DeleteTask removes a task and reports whether it existed.
func (r *TasksRepo) DeleteTask(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return false
	}
	delete(r.tasks, id)
	return true
}

// GetUserTasks returns all of a user's tasks, newest first.
func (r *TasksRepo) GetUserTasks(userID string) []*model.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tasks []*model.Task
	for _, task := range r.tasks {
		if task.UserID == userID {
			tasks = append(tasks, cloneTask(task))
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks
}

// GetOverdueTasks returns incomplete tasks whose due date has passed. The
// flag is recomputed against the current clock rather than trusted from the
// stored value, so a task that became overdue since its last write still
// shows up.
func (r *TasksRepo) GetOverdueTasks(userID string) []*model.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	var tasks []*model.Task
	for _, task := range r.tasks {
		if task.UserID != userID {
			continue
		}
		task.Overdue = task.IsOverdue(now)
		if task.Overdue {
			tasks = append(tasks, cloneTask(task))
		}
	}
	return tasks
}

// GetTodayTasks returns tasks due within [local midnight, local midnight+24h).
func (r *TasksRepo) GetTodayTasks(userID string) []*model.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	today := model.DayOf(r.now())
	tomorrow := today.Add(24 * time.Hour)

	var tasks []*model.Task
	for _, task := range r.tasks {
		if task.UserID != userID || task.DueDate == nil {
			continue
		}
		due := *task.DueDate
		if !due.Before(today) && due.Before(tomorrow) {
			tasks = append(tasks, cloneTask(task))
		}
	}
	return tasks
}

// GetTasksByPriority returns a user's tasks at the given priority level.
func (r *TasksRepo) GetTasksByPriority(userID string, priority model.Priority) []*model.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tasks []*model.Task
	for _, task := range r.tasks {
		if task.UserID == userID && task.Priority == priority {
			tasks = append(tasks, cloneTask(task))
		}
	}
	return tasks
}

// GetTasksByProject returns every task assigned to a project, regardless of
// whether the project still exists.
func (r *TasksRepo) GetTasksByProject(projectID string) []*model.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tasks []*model.Task
	for _, task := range r.tasks {
		if task.ProjectID == projectID {
			tasks = append(tasks, cloneTask(task))
		}
	}
	return tasks
}

// SearchTasks matches query case-insensitively against title, description
// and tags.
func (r *TasksRepo) SearchTasks(userID string, query string) []*model.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(query)
	var tasks []*model.Task
	for _, task := range r.tasks {
		if task.UserID != userID {
			continue
		}
		if strings.Contains(strings.ToLower(task.Title), query) ||
			strings.Contains(strings.ToLower(task.Description), query) ||
			tagsMatch(task.Tags, query) {
			tasks = append(tasks, cloneTask(task))
		}
	}
	return tasks
}

func tagsMatch(tags []string, loweredQuery string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), loweredQuery) {
			return true
		}
	}
	return false
}

// cloneTask copies a task so callers never share memory with the map.
func cloneTask(task *model.Task) *model.Task {
	clone := *task
	if task.DueDate != nil {
		due := *task.DueDate
		clone.DueDate = &due
	}
	if task.CompletedAt != nil {
		completedAt := *task.CompletedAt
		clone.CompletedAt = &completedAt
	}
	clone.Tags = append([]string(nil), task.Tags...)
	return &clone
}
