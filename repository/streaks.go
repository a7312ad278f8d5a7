package repository

import (
	"sort"
	"sync"
	"time"

	"tasksahead/model"

	"github.com/google/uuid"
)

type StreaksRepo struct {
	mu      sync.RWMutex
	entries map[string]*model.StreakEntry
	now     func() time.Time
}

func NewStreaksRepo() *StreaksRepo {
	return &StreaksRepo{
		entries: make(map[string]*model.StreakEntry),
		now:     time.Now,
	}
}

// CreateEntry stores a new per-day record. The date is truncated to its day
// boundary so lookups by day always line up.
func (r *StreaksRepo) CreateEntry(entry *model.StreakEntry) *model.StreakEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.EntryID == "" {
		entry.EntryID = uuid.NewString()
	}
	entry.Date = model.DayOf(entry.Date)
	entry.CreatedAt = r.now()

	r.entries[entry.EntryID] = entry
	return cloneEntry(entry)
}

// GetEntryByDate returns the user's entry for the calendar day containing
// date, or nil when the day has no completions yet.
func (r *StreaksRepo) GetEntryByDate(userID string, date time.Time) *model.StreakEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day := model.DayOf(date)
	for _, entry := range r.entries {
		if entry.UserID == userID && entry.Date.Equal(day) {
			return cloneEntry(entry)
		}
	}
	return nil
}

// IncrementTasksCompleted bumps the day's completion count on an existing
// entry. Returns nil when no entry exists for that day.
func (r *StreaksRepo) IncrementTasksCompleted(userID string, date time.Time) *model.StreakEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := model.DayOf(date)
	for _, entry := range r.entries {
		if entry.UserID == userID && entry.Date.Equal(day) {
			entry.TasksCompleted++
			return cloneEntry(entry)
		}
	}
	return nil
}

// GetUserEntries returns all of a user's streak entries, newest day first.
func (r *StreaksRepo) GetUserEntries(userID string) []*model.StreakEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []*model.StreakEntry
	for _, entry := range r.entries {
		if entry.UserID == userID {
			entries = append(entries, cloneEntry(entry))
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries
}

func cloneEntry(entry *model.StreakEntry) *model.StreakEntry {
	clone := *entry
	return &clone
}
