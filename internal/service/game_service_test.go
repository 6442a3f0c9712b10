package service

import (
	"strings"
	"testing"
	"time"

	"reelstreak/internal/archive"
	"reelstreak/internal/models"
)

// afternoonUTC is comfortably inside the same Eastern day, before and after
// DST alike.
func afternoonUTC(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 17, 0, 0, 0, time.UTC)
}

func testArchive(rolesCount, degreesCount, ratingsCount int) *archive.Archive {
	a := &archive.Archive{}
	for i := 0; i < rolesCount; i++ {
		a.Roles = append(a.Roles, models.RolesPuzzle{
			Actor:     "Actor",
			Character: "Character",
			Movie:     "Movie",
			Year:      1990 + i%30,
		})
	}
	for i := 0; i < degreesCount; i++ {
		a.Degrees = append(a.Degrees, models.DegreesPuzzle{
			Start: "Start",
			End:   "End",
			Chain: []models.ChainLink{{Name: "Link", Movie: "Movie"}},
		})
	}
	thumbA, thumbB := 1, 0
	for i := 0; i < ratingsCount; i++ {
		a.Ratings = append(a.Ratings, models.RatingEntry{
			Title:  "Title",
			Year:   1980 + i%40,
			ThumbA: &thumbA,
			ThumbB: &thumbB,
		})
	}
	return a
}

func TestRolesForDayEmptyArchive(t *testing.T) {
	svc := NewGameService(testArchive(0, 0, 0), nil)

	daily := svc.RolesForDay(afternoonUTC(2024, time.May, 10))
	if daily.Puzzle != nil {
		t.Errorf("expected nil puzzle for empty archive, got %+v", daily.Puzzle)
	}
	if daily.Number != 0 {
		t.Errorf("expected puzzle number 0 for empty archive, got %d", daily.Number)
	}
	if daily.DayKey != "2024-05-10" {
		t.Errorf("expected day key 2024-05-10, got %s", daily.DayKey)
	}
}

func TestRolesForDayStableWithinDay(t *testing.T) {
	svc := NewGameService(testArchive(40, 0, 0), nil)

	// Both instants fall on the same Eastern day.
	morning := svc.RolesForDay(time.Date(2024, time.May, 10, 11, 0, 0, 0, time.UTC))
	evening := svc.RolesForDay(time.Date(2024, time.May, 11, 2, 0, 0, 0, time.UTC))

	if morning.DayKey != evening.DayKey {
		t.Errorf("day keys differ within one day: %s vs %s", morning.DayKey, evening.DayKey)
	}
	if morning.Number != evening.Number {
		t.Errorf("puzzle numbers differ within one day: %d vs %d", morning.Number, evening.Number)
	}
}

func TestRolesForDayAdvancesDaily(t *testing.T) {
	svc := NewGameService(testArchive(40, 0, 0), nil)

	today := svc.RolesForDay(afternoonUTC(2024, time.May, 10))
	tomorrow := svc.RolesForDay(afternoonUTC(2024, time.May, 11))

	if tomorrow.Number != today.Number+1 {
		t.Errorf("expected consecutive puzzle numbers, got %d then %d", today.Number, tomorrow.Number)
	}
}

func TestBonusRolesForDay(t *testing.T) {
	svc := NewGameService(testArchive(40, 0, 0), nil)
	asOf := afternoonUTC(2024, time.May, 10)

	daily := svc.RolesForDay(asOf)
	bonus := svc.BonusRolesForDay(asOf)

	if bonus.Puzzle == nil {
		t.Fatal("expected a bonus puzzle")
	}
	if !strings.HasPrefix(bonus.DayKey, "bonus-") {
		t.Errorf("expected synthetic bonus day key, got %s", bonus.DayKey)
	}
	if bonus.DayKey != "bonus-"+daily.DayKey {
		t.Errorf("bonus key %s does not match daily key %s", bonus.DayKey, daily.DayKey)
	}
	// The bonus pick stays out of the recent daily window.
	if bonus.Number > daily.Number-6 {
		t.Errorf("bonus puzzle %d is inside the recent window ending at %d", bonus.Number, daily.Number)
	}

	again := svc.BonusRolesForDay(asOf)
	if again.Number != bonus.Number {
		t.Errorf("bonus pick not deterministic: %d vs %d", bonus.Number, again.Number)
	}
}

func TestBonusRolesForDayEmptyArchive(t *testing.T) {
	svc := NewGameService(testArchive(0, 0, 0), nil)

	bonus := svc.BonusRolesForDay(afternoonUTC(2024, time.May, 10))
	if bonus.Puzzle != nil {
		t.Errorf("expected nil bonus puzzle for empty archive, got %+v", bonus.Puzzle)
	}
	if bonus.DayKey != "bonus-2024-05-10" {
		t.Errorf("expected synthetic key even without a puzzle, got %s", bonus.DayKey)
	}
}

func TestDegreesAndRolesUseIndependentEpochs(t *testing.T) {
	svc := NewGameService(testArchive(40, 40, 0), nil)
	asOf := afternoonUTC(2024, time.May, 10)

	roles := svc.RolesForDay(asOf)
	degrees := svc.DegreesForDay(asOf)

	// Same day, different launch dates, so the counters disagree.
	if roles.Number == degrees.Number {
		t.Errorf("expected different puzzle numbers, both were %d", roles.Number)
	}
}

func TestThumbsRoundForDay(t *testing.T) {
	svc := NewGameService(testArchive(0, 0, 30), nil)
	asOf := afternoonUTC(2024, time.May, 10)

	round := svc.ThumbsRoundForDay(asOf)
	if len(round.Movies) != thumbsRoundSize {
		t.Fatalf("expected %d movies, got %d", thumbsRoundSize, len(round.Movies))
	}

	again := svc.ThumbsRoundForDay(asOf)
	if len(again.Movies) != len(round.Movies) {
		t.Fatalf("round size changed between calls")
	}
	for i := range round.Movies {
		if round.Movies[i] != again.Movies[i] {
			t.Errorf("movie %d differs between same-day calls", i)
		}
	}
}

func TestThumbsRoundForDaySmallPool(t *testing.T) {
	svc := NewGameService(testArchive(0, 0, 3), nil)

	round := svc.ThumbsRoundForDay(afternoonUTC(2024, time.May, 10))
	if len(round.Movies) != 3 {
		t.Errorf("expected the whole pool of 3 movies, got %d", len(round.Movies))
	}
}
