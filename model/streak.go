package model

import "time"

// StreakEntry is the per-day completion record. At most one exists per
// (user, calendar day); repeated completions on the same day only bump
// TasksCompleted.
type StreakEntry struct {
	EntryID        string    `json:"id"`
	UserID         string    `json:"userId"`
	Date           time.Time `json:"date"` // truncated to the day boundary
	TasksCompleted int       `json:"tasksCompleted"`
	StreakDay      int       `json:"streakDay"`
	BadgeEarned    string    `json:"badgeEarned,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Badge struct {
	Threshold int    `json:"threshold"`
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
}

// streakBadges maps exact streak-day counts to milestone badges, sorted by
// threshold. Intermediate streak values earn nothing; the lookup is
// exact-match only, so day 8 shows no badge even though day 7 did.
var streakBadges = []Badge{
	{1, "Trailblazer", "🚀"},
	{4, "Consistent", "📏"},
	{7, "Warrior of the Week", "⚔"},
	{14, "Momentum Builder", "🔥"},
	{21, "Unstoppable", "⚡"},
	{28, "Elite", "🏆"},
	{60, "Momentum Master", "🎯"},
	{120, "Champion", "🥇"},
	{180, "The Iron Mind", "🛡"},
	{365, "The Invincible", "👑"},
}

// BadgeForStreak returns the badge unlocked at exactly day n, or nil.
func BadgeForStreak(n int) *Badge {
	for i := range streakBadges {
		if streakBadges[i].Threshold == n {
			return &streakBadges[i]
		}
		if streakBadges[i].Threshold > n {
			break
		}
	}
	return nil
}

// DayOf truncates t to its calendar-day start in t's location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
