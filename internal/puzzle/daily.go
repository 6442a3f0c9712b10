package puzzle

import (
	"time"
)

// Bonus puzzles must avoid anything that was (or will be) the daily puzzle
// within this many days before today's index.
const bonusWindow = 6

// BonusKeyPrefix marks result records for bonus rounds so they never collide
// with the daily round's (user, game, date) uniqueness key.
const BonusKeyPrefix = "bonus-"

// DailyIndex maps "now" onto an archive slot. The archive is an ordered,
// append-only list; the slot is the number of whole days elapsed since
// epochKey, wrapped around the archive length. The mapping is cyclic: with N
// puzzles the same one resurfaces every N days, which is accepted behavior
// for a bounded archive.
//
// Returns the day key for now plus the 0-based index, or index -1 when the
// archive is empty. Callers treat -1 as "no puzzle today", not an error.
// Passing a past or future instant gives the admin calendar preview for that
// day without touching any global state.
func DailyIndex(archiveLen int, epochKey string, now time.Time) (dayKey string, index int) {
	dayKey = DayKey(now)
	if archiveLen <= 0 {
		return dayKey, -1
	}
	days := DaysBetween(epochKey, dayKey)
	// Double mod so dates before the epoch still land in range.
	index = ((days % archiveLen) + archiveLen) % archiveLen
	return dayKey, index
}

// PuzzleNumber converts a 0-based archive index to the 1-based number shown
// to players. Index -1 (empty archive) maps to 0.
func PuzzleNumber(index int) int {
	return index + 1
}

// BonusIndex picks a second, distinct puzzle for the day's bonus round. The
// candidate pool is every index at least bonusWindow slots behind today's
// daily index, so the bonus never repeats a recently served daily puzzle.
// Small archives degrade to index 0 rather than failing. The discriminator
// (e.g. "-roles-bonus") keeps different games' bonus draws independent.
func BonusIndex(dailyIndex int, dayKey, discriminator string) int {
	maxIndex := dailyIndex - bonusWindow
	if maxIndex < 0 {
		maxIndex = 0
	}
	pool := maxIndex + 1
	if pool <= 0 {
		return 0
	}
	return int(HashString(dayKey+discriminator) % uint32(pool))
}

// BonusDayKey returns the synthetic result-record key for a bonus round on
// the given day.
func BonusDayKey(dayKey string) string {
	return BonusKeyPrefix + dayKey
}

// RoundIndexes deterministically samples count indexes out of poolLen for the
// given day. The whole index range is Fisher-Yates shuffled with an RNG
// seeded from the day key, then truncated, so every caller sees the same
// round all day and a fresh one at rollover. The result is a permutation
// prefix: no duplicates, and count is clamped to poolLen.
func RoundIndexes(poolLen, count int, dayKey string) []int {
	if poolLen <= 0 || count <= 0 {
		return []int{}
	}
	indexes := make([]int, poolLen)
	for i := range indexes {
		indexes[i] = i
	}
	rng := NewRand(HashString(dayKey))
	for i := poolLen - 1; i > 0; i-- {
		j := int(rng.Float64() * float64(i+1))
		indexes[i], indexes[j] = indexes[j], indexes[i]
	}
	if count > poolLen {
		count = poolLen
	}
	return indexes[:count]
}
