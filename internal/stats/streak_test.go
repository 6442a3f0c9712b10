package stats

import (
	"testing"
	"time"
)

// noon UTC on the given Eastern calendar day
func dayInstant(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 17, 0, 0, 0, time.UTC)
}

func TestComputeStreak(t *testing.T) {
	today := dayInstant(2024, 1, 10)

	tests := []struct {
		name        string
		dayKeys     []string
		wantCurrent int
		wantBest    int
	}{
		{
			name:        "empty history",
			dayKeys:     []string{},
			wantCurrent: 0,
			wantBest:    0,
		},
		{
			name:        "single entry today",
			dayKeys:     []string{"2024-01-10"},
			wantCurrent: 1,
			wantBest:    1,
		},
		{
			name:        "single entry yesterday",
			dayKeys:     []string{"2024-01-09"},
			wantCurrent: 1,
			wantBest:    1,
		},
		{
			name:        "single old entry",
			dayKeys:     []string{"2024-01-02"},
			wantCurrent: 0,
			wantBest:    1,
		},
		{
			name:        "three day run with earlier gap",
			dayKeys:     []string{"2024-01-10", "2024-01-09", "2024-01-08", "2024-01-05"},
			wantCurrent: 3,
			wantBest:    3,
		},
		{
			name:        "gap right after today",
			dayKeys:     []string{"2024-01-10", "2024-01-08"},
			wantCurrent: 1,
			wantBest:    1,
		},
		{
			name:        "old run longer than current",
			dayKeys:     []string{"2024-01-10", "2024-01-04", "2024-01-03", "2024-01-02", "2024-01-01"},
			wantCurrent: 1,
			wantBest:    4,
		},
		{
			name:        "current anchored at yesterday",
			dayKeys:     []string{"2024-01-09", "2024-01-08", "2024-01-07"},
			wantCurrent: 3,
			wantBest:    3,
		},
		{
			name:        "streak broken two days ago",
			dayKeys:     []string{"2024-01-08", "2024-01-07", "2024-01-06"},
			wantCurrent: 0,
			wantBest:    3,
		},
		{
			name:        "duplicates collapse",
			dayKeys:     []string{"2024-01-10", "2024-01-10", "2024-01-09"},
			wantCurrent: 2,
			wantBest:    2,
		},
		{
			name:        "unsorted input",
			dayKeys:     []string{"2024-01-08", "2024-01-10", "2024-01-09"},
			wantCurrent: 3,
			wantBest:    3,
		},
		{
			name:        "bonus keys ignored",
			dayKeys:     []string{"bonus-2024-01-10", "2024-01-10", "2024-01-09"},
			wantCurrent: 2,
			wantBest:    2,
		},
		{
			name:        "run across month boundary",
			dayKeys:     []string{"2024-01-10", "2024-01-09", "2024-01-01", "2023-12-31", "2023-12-30"},
			wantCurrent: 2,
			wantBest:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStreak(tt.dayKeys, today)
			if got.Current != tt.wantCurrent {
				t.Errorf("Current = %d, want %d", got.Current, tt.wantCurrent)
			}
			if got.Best != tt.wantBest {
				t.Errorf("Best = %d, want %d", got.Best, tt.wantBest)
			}
		})
	}
}

func TestComputeStreakAcrossDSTTransition(t *testing.T) {
	// Spring-forward weekend: 2024-03-10 is the short day in New York.
	got := ComputeStreak([]string{"2024-03-11", "2024-03-10", "2024-03-09"}, dayInstant(2024, 3, 11))
	if got.Current != 3 || got.Best != 3 {
		t.Errorf("got %+v, want current 3 best 3", got)
	}
}
