package stats

import (
	"sort"
	"time"

	"reelstreak/internal/puzzle"
)

// Streak is derived from a player's set of completed day keys, never stored.
type Streak struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// ComputeStreak calculates the current and best run of consecutive play days
// from an unordered, possibly duplicated collection of day keys. The current
// streak only counts if the most recent entry is today or yesterday relative
// to now; the best streak considers every consecutive run in the history.
// Keys that do not parse as YYYY-MM-DD (e.g. synthetic bonus keys) are
// ignored.
func ComputeStreak(dayKeys []string, now time.Time) Streak {
	seen := make(map[string]bool, len(dayKeys))
	keys := make([]string, 0, len(dayKeys))
	for _, key := range dayKeys {
		if seen[key] {
			continue
		}
		if _, err := puzzle.ParseDayKey(key); err != nil {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return Streak{}
	}

	// Zero-padded YYYY-MM-DD sorts correctly as plain strings.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	today := puzzle.DayKey(now)
	yesterday := puzzle.PreviousDayKey(today)

	current := 0
	if keys[0] == today || keys[0] == yesterday {
		current = 1
		for i := 1; i < len(keys); i++ {
			if keys[i] != puzzle.PreviousDayKey(keys[i-1]) {
				break
			}
			current++
		}
	}

	best := current
	run := 1
	for i := 1; i < len(keys); i++ {
		if keys[i] == puzzle.PreviousDayKey(keys[i-1]) {
			run++
		} else {
			if run > best {
				best = run
			}
			run = 1
		}
	}
	if run > best {
		best = run
	}

	return Streak{Current: current, Best: best}
}
