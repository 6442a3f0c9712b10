package puzzle

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		want    string
	}{
		{
			name:    "afternoon UTC is same day in Eastern",
			instant: time.Date(2024, 3, 5, 13, 0, 0, 0, time.UTC),
			want:    "2024-03-05",
		},
		{
			name:    "early UTC morning is previous day in Eastern",
			instant: time.Date(2024, 3, 5, 3, 0, 0, 0, time.UTC),
			want:    "2024-03-04",
		},
		{
			name:    "summer uses EDT offset",
			instant: time.Date(2024, 7, 1, 2, 0, 0, 0, time.UTC),
			want:    "2024-06-30",
		},
		{
			name:    "winter boundary holds at EST",
			instant: time.Date(2024, 12, 31, 4, 59, 0, 0, time.UTC),
			want:    "2024-12-30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DayKey(tt.instant)
			if got != tt.want {
				t.Errorf("DayKey(%v) = %q, want %q", tt.instant, got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{name: "same day", from: "2024-01-10", to: "2024-01-10", want: 0},
		{name: "one day forward", from: "2024-01-10", to: "2024-01-11", want: 1},
		{name: "backwards is negative", from: "2024-01-10", to: "2024-01-05", want: -5},
		{name: "across spring DST transition", from: "2024-03-09", to: "2024-03-11", want: 2},
		{name: "across fall DST transition", from: "2024-11-02", to: "2024-11-04", want: 2},
		{name: "across year boundary", from: "2023-12-30", to: "2024-01-02", want: 3},
		{name: "malformed from key", from: "not-a-date", to: "2024-01-10", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysBetween(tt.from, tt.to)
			if got != tt.want {
				t.Errorf("DaysBetween(%q, %q) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestPreviousDayKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "2024-01-10", want: "2024-01-09"},
		{key: "2024-01-01", want: "2023-12-31"},
		{key: "2024-03-01", want: "2024-02-29"},
		{key: "2023-03-01", want: "2023-02-28"},
	}

	for _, tt := range tests {
		if got := PreviousDayKey(tt.key); got != tt.want {
			t.Errorf("PreviousDayKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
