package puzzle

import (
	"testing"
	"time"
)

const testEpoch = "2024-01-01"

func TestDailyIndex(t *testing.T) {
	tests := []struct {
		name       string
		archiveLen int
		now        time.Time
		wantKey    string
		wantIndex  int
	}{
		{
			name:       "epoch day is index zero",
			archiveLen: 30,
			now:        time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC),
			wantKey:    "2024-01-01",
			wantIndex:  0,
		},
		{
			name:       "fifteen days in",
			archiveLen: 30,
			now:        time.Date(2024, 1, 16, 13, 0, 0, 0, time.UTC),
			wantKey:    "2024-01-16",
			wantIndex:  15,
		},
		{
			name:       "wraps around archive length",
			archiveLen: 30,
			now:        time.Date(2024, 2, 2, 13, 0, 0, 0, time.UTC),
			wantKey:    "2024-02-02",
			wantIndex:  2,
		},
		{
			name:       "date before epoch stays in range",
			archiveLen: 30,
			now:        time.Date(2023, 12, 31, 13, 0, 0, 0, time.UTC),
			wantKey:    "2023-12-31",
			wantIndex:  29,
		},
		{
			name:       "empty archive has no puzzle",
			archiveLen: 0,
			now:        time.Date(2024, 1, 16, 13, 0, 0, 0, time.UTC),
			wantKey:    "2024-01-16",
			wantIndex:  -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, index := DailyIndex(tt.archiveLen, testEpoch, tt.now)
			if key != tt.wantKey {
				t.Errorf("day key = %q, want %q", key, tt.wantKey)
			}
			if index != tt.wantIndex {
				t.Errorf("index = %d, want %d", index, tt.wantIndex)
			}
		})
	}
}

func TestDailyIndexCyclic(t *testing.T) {
	// With N puzzles the same one resurfaces exactly N days later.
	const n = 47
	day := time.Date(2024, 5, 10, 13, 0, 0, 0, time.UTC)
	_, first := DailyIndex(n, testEpoch, day)
	_, second := DailyIndex(n, testEpoch, day.AddDate(0, 0, n))
	if first != second {
		t.Errorf("index %d days apart: %d != %d", n, first, second)
	}
}

func TestDailyIndexStableWithinDay(t *testing.T) {
	// Two instants on the same Eastern calendar day pick the same puzzle.
	morning := time.Date(2024, 5, 10, 11, 0, 0, 0, time.UTC)
	night := time.Date(2024, 5, 11, 2, 0, 0, 0, time.UTC) // still May 10 in New York
	keyA, indexA := DailyIndex(100, testEpoch, morning)
	keyB, indexB := DailyIndex(100, testEpoch, night)
	if keyA != keyB || indexA != indexB {
		t.Errorf("same Eastern day gave (%q, %d) and (%q, %d)", keyA, indexA, keyB, indexB)
	}
}

func TestPuzzleNumber(t *testing.T) {
	if got := PuzzleNumber(0); got != 1 {
		t.Errorf("PuzzleNumber(0) = %d, want 1", got)
	}
	if got := PuzzleNumber(-1); got != 0 {
		t.Errorf("PuzzleNumber(-1) = %d, want 0", got)
	}
}

func TestBonusIndexAvoidsRecentWindow(t *testing.T) {
	days := []string{
		"2024-01-10", "2024-02-14", "2024-03-01", "2024-06-30",
		"2024-07-04", "2024-11-03", "2024-12-25",
	}
	for _, dayKey := range days {
		for _, dailyIndex := range []int{6, 7, 20, 150} {
			bonus := BonusIndex(dailyIndex, dayKey, "-roles-bonus")
			if bonus > dailyIndex-6 {
				t.Errorf("day %s dailyIndex %d: bonus %d inside the 6-day window", dayKey, dailyIndex, bonus)
			}
			if bonus < 0 {
				t.Errorf("day %s dailyIndex %d: negative bonus index %d", dayKey, dailyIndex, bonus)
			}
		}
	}
}

func TestBonusIndexSmallArchive(t *testing.T) {
	// Too few published puzzles to honor the window: degrade to the first.
	for _, dailyIndex := range []int{0, 1, 5} {
		if got := BonusIndex(dailyIndex, "2024-01-10", "-degrees-bonus"); got != 0 {
			t.Errorf("dailyIndex %d: got %d, want 0", dailyIndex, got)
		}
	}
}

func TestBonusIndexDeterministicPerDay(t *testing.T) {
	a := BonusIndex(50, "2024-01-10", "-roles-bonus")
	b := BonusIndex(50, "2024-01-10", "-roles-bonus")
	if a != b {
		t.Errorf("same day gave different bonus indexes: %d != %d", a, b)
	}
}

func TestBonusDayKey(t *testing.T) {
	if got := BonusDayKey("2024-01-10"); got != "bonus-2024-01-10" {
		t.Errorf("BonusDayKey = %q", got)
	}
}

func TestRoundIndexesPermutation(t *testing.T) {
	const poolLen = 25
	indexes := RoundIndexes(poolLen, poolLen, "2024-01-10")
	if len(indexes) != poolLen {
		t.Fatalf("got %d indexes, want %d", len(indexes), poolLen)
	}
	seen := make(map[int]bool)
	for _, i := range indexes {
		if i < 0 || i >= poolLen {
			t.Errorf("index %d out of range", i)
		}
		if seen[i] {
			t.Errorf("index %d drawn twice", i)
		}
		seen[i] = true
	}
}

func TestRoundIndexes(t *testing.T) {
	tests := []struct {
		name    string
		poolLen int
		count   int
		wantLen int
	}{
		{name: "normal round", poolLen: 100, count: 5, wantLen: 5},
		{name: "count clamped to pool", poolLen: 3, count: 10, wantLen: 3},
		{name: "empty pool", poolLen: 0, count: 5, wantLen: 0},
		{name: "zero count", poolLen: 10, count: 0, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundIndexes(tt.poolLen, tt.count, "2024-01-10")
			if len(got) != tt.wantLen {
				t.Errorf("got %d indexes, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestRoundIndexesDeterministicPerDay(t *testing.T) {
	a := RoundIndexes(50, 5, "2024-01-10")
	b := RoundIndexes(50, 5, "2024-01-10")
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("position %d: %d != %d", i, a[i], b[i])
		}
	}

	c := RoundIndexes(50, 5, "2024-01-11")
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("consecutive days produced an identical round")
	}
}
