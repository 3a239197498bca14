package utils

import (
	"testing"
	"time"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"canonical form", "2026-03-15", "2026-03-15", false},
		{"surrounding whitespace", "  2026-03-15  ", "2026-03-15", false},
		{"iso timestamp drops time", "2026-03-15T14:30:00", "2026-03-15", false},
		{"us slash format", "03/15/2026", "2026-03-15", false},
		{"empty", "", "", true},
		{"garbage", "next tuesday", "", true},
		{"wrong separators", "2026.03.15", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local)

	tests := []struct {
		date string
		want bool
	}{
		{"2026-03-09", true},
		{"2026-03-10", false}, // today is not past, even late in the evening
		{"2026-03-11", false},
		{"2025-12-31", true},
	}
	for _, tt := range tests {
		if got := IsPastDate(tt.date, now); got != tt.want {
			t.Errorf("IsPastDate(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestIsSameDayAfterNoon(t *testing.T) {
	tests := []struct {
		name string
		date string
		now  time.Time
		want bool
	}{
		{"same day morning", "2026-03-10", time.Date(2026, 3, 10, 11, 59, 59, 0, time.Local), false},
		{"same day at noon", "2026-03-10", time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local), true},
		{"same day evening", "2026-03-10", time.Date(2026, 3, 10, 18, 0, 0, 0, time.Local), true},
		{"different day afternoon", "2026-03-11", time.Date(2026, 3, 10, 18, 0, 0, 0, time.Local), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSameDayAfterNoon(tt.date, tt.now); got != tt.want {
				t.Errorf("IsSameDayAfterNoon(%s, %v) = %v, want %v", tt.date, tt.now, got, tt.want)
			}
		})
	}
}

func TestWeekAgo(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 45, 0, time.Local)
	got := WeekAgo(now)
	want := time.Date(2026, 3, 3, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("WeekAgo = %v, want %v", got, want)
	}
}
