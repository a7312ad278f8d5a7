package usecase

import (
	"sync"
	"time"

	"tasksahead/middleware"
	"tasksahead/model"
	"tasksahead/repository"
)

// StreakService is the streak engine. It owns every mutation of the user's
// streak counters and of the per-day completion log.
//
// A streak never resets: the engine only checks whether today already has an
// entry, never whether yesterday does. A user who skips a week and then
// completes a task continues from their previous count.
type StreakService struct {
	streaks *repository.StreaksRepo
	users   *repository.UsersRepo
	now     func() time.Time

	// userLocks serializes first-completion-of-the-day races per user, so
	// two concurrent completions cannot both observe "no entry for today"
	// and advance the streak twice.
	userLocks sync.Map
}

func NewStreakService(streaks *repository.StreaksRepo, users *repository.UsersRepo) *StreakService {
	return &StreakService{
		streaks: streaks,
		users:   users,
		now:     time.Now,
	}
}

// RecordCompletion registers a task completion at completedAt.
//
// The first completion of a calendar day opens a new streak day: the user's
// current streak advances by one, the longest-streak high-water mark is
// raised if passed, and a StreakEntry is created carrying the badge for the
// new streak value when it lands exactly on a milestone. Any further
// completion that day only bumps the entry's task count.
func (svc *StreakService) RecordCompletion(userID string, completedAt time.Time) (*model.StreakEntry, error) {
	today := model.DayOf(completedAt)

	lock := svc.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	if entry := svc.streaks.IncrementTasksCompleted(userID, today); entry != nil {
		return entry, nil
	}

	user := svc.users.GetUser(userID)
	if user == nil {
		return nil, ErrNotFound
	}

	newStreak := user.CurrentStreak + 1
	badgeName := ""
	if badge := model.BadgeForStreak(newStreak); badge != nil {
		badgeName = badge.Name
		middleware.TrackBadgeUnlock(badge.Name)
	}

	entry := svc.streaks.CreateEntry(&model.StreakEntry{
		UserID:         userID,
		Date:           today,
		TasksCompleted: 1,
		StreakDay:      newStreak,
		BadgeEarned:    badgeName,
	})
	svc.users.AdvanceStreak(userID, newStreak)
	middleware.TrackStreakDay()

	return entry, nil
}

// GetUserStreaks returns the user's completion log, newest day first.
func (svc *StreakService) GetUserStreaks(userID string) []*model.StreakEntry {
	return svc.streaks.GetUserEntries(userID)
}

func (svc *StreakService) lockFor(userID string) *sync.Mutex {
	lock, _ := svc.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
