package model

import (
	"testing"
	"time"
)

func TestBadgeForStreak(t *testing.T) {
	tests := []struct {
		name      string
		streak    int
		wantName  string
		wantEmoji string
		wantNil   bool
	}{
		{name: "First Day", streak: 1, wantName: "Trailblazer", wantEmoji: "🚀"},
		{name: "Week Milestone", streak: 7, wantName: "Warrior of the Week", wantEmoji: "⚔"},
		{name: "Day After Milestone", streak: 8, wantNil: true},
		{name: "Between Milestones", streak: 10, wantNil: true},
		{name: "Four Weeks", streak: 28, wantName: "Elite", wantEmoji: "🏆"},
		{name: "Full Year", streak: 365, wantName: "The Invincible", wantEmoji: "👑"},
		{name: "Beyond Table", streak: 400, wantNil: true},
		{name: "Zero", streak: 0, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			badge := BadgeForStreak(tt.streak)
			if tt.wantNil {
				if badge != nil {
					t.Errorf("Expected no badge for streak %d, got %q", tt.streak, badge.Name)
				}
				return
			}
			if badge == nil {
				t.Fatalf("Expected badge for streak %d, got none", tt.streak)
			}
			if badge.Name != tt.wantName {
				t.Errorf("Expected badge name %q, got %q", tt.wantName, badge.Name)
			}
			if badge.Emoji != tt.wantEmoji {
				t.Errorf("Expected badge emoji %q, got %q", tt.wantEmoji, badge.Emoji)
			}
		})
	}
}

func TestBadgeTableSorted(t *testing.T) {
	for i := 1; i < len(streakBadges); i++ {
		if streakBadges[i].Threshold <= streakBadges[i-1].Threshold {
			t.Errorf("Badge thresholds out of order at index %d: %d after %d",
				i, streakBadges[i].Threshold, streakBadges[i-1].Threshold)
		}
	}
}

func TestDayOf(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2025, 6, 15, 23, 45, 12, 999, loc)

	day := DayOf(ts)
	if day.Hour() != 0 || day.Minute() != 0 || day.Second() != 0 || day.Nanosecond() != 0 {
		t.Errorf("Expected midnight, got %v", day)
	}
	if day.Year() != 2025 || day.Month() != time.June || day.Day() != 15 {
		t.Errorf("Expected same calendar day, got %v", day)
	}
	if day.Location() != loc {
		t.Errorf("Expected location preserved, got %v", day.Location())
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{name: "Past Due Incomplete", task: Task{DueDate: &past}, want: true},
		{name: "Past Due Completed", task: Task{DueDate: &past, Completed: true}, want: false},
		{name: "Future Due", task: Task{DueDate: &future}, want: false},
		{name: "No Due Date", task: Task{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.IsOverdue(now); got != tt.want {
				t.Errorf("IsOverdue = %v, want %v", got, tt.want)
			}
		})
	}
}
