package repository

import (
	"sync"
	"time"

	"tasksahead/model"

	"github.com/google/uuid"
)

type UsersRepo struct {
	mu    sync.RWMutex
	users map[string]*model.User
	now   func() time.Time
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{
		users: make(map[string]*model.User),
		now:   time.Now,
	}
}

func (r *UsersRepo) CreateUser(user *model.User) *model.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	if user.Theme == "" {
		user.Theme = "light"
	}
	user.CreatedAt = r.now()

	r.users[user.UserID] = user
	return cloneUser(user)
}

// GetUser returns the user with the given id, or nil when absent.
func (r *UsersRepo) GetUser(id string) *model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil
	}
	return cloneUser(user)
}

func (r *UsersRepo) GetUserByUsername(username string) *model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			return cloneUser(user)
		}
	}
	return nil
}

func (r *UsersRepo) GetUserByEmail(email string) *model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return cloneUser(user)
		}
	}
	return nil
}

// UpdateSettings changes theme and simple-mode preferences only; streak
// counters are untouchable from this path.
func (r *UsersRepo) UpdateSettings(id string, updates *model.SettingsUpdate) *model.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil
	}
	if updates.Theme != nil {
		user.Theme = *updates.Theme
	}
	if updates.SimpleMode != nil {
		user.SimpleMode = *updates.SimpleMode
	}
	return cloneUser(user)
}

// AdvanceStreak records a newly opened streak day on the user: the current
// streak moves to newStreak, the longest-streak high-water mark is raised if
// passed, and the lifetime completion counter ticks once.
func (r *UsersRepo) AdvanceStreak(id string, newStreak int) *model.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil
	}
	user.CurrentStreak = newStreak
	if newStreak > user.LongestStreak {
		user.LongestStreak = newStreak
	}
	user.TotalTasksCompleted++
	return cloneUser(user)
}

func cloneUser(user *model.User) *model.User {
	clone := *user
	return &clone
}
