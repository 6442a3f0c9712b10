package service

import (
	"fmt"
	"time"

	"reelstreak/internal/archive"
	"reelstreak/internal/models"
	"reelstreak/internal/puzzle"
	"reelstreak/internal/repository"
	"reelstreak/internal/stats"
)

// Reference epochs: the launch day of each game's archive. Index 0 of an
// archive was the daily puzzle on its epoch day, and selection counts days
// from there. Changing an epoch (or reordering an archive) shifts every
// subsequent day's puzzle, so both are frozen.
const (
	rolesEpoch   = "2023-09-18"
	degreesEpoch = "2023-11-06"
)

// Number of movies in a daily thumbs round.
const thumbsRoundSize = 5

// Bonus draw discriminators, hashed together with the day key.
const (
	rolesBonusSalt   = "-roles-bonus"
	degreesBonusSalt = "-degrees-bonus"
)

// GameService wires the puzzle selectors and stats calculators to the static
// archive and the results store.
type GameService struct {
	archive    *archive.Archive
	resultRepo *repository.ResultRepository
}

// NewGameService creates a new game service
func NewGameService(a *archive.Archive, resultRepo *repository.ResultRepository) *GameService {
	return &GameService{archive: a, resultRepo: resultRepo}
}

// DailyRoles is one day's roles puzzle. Puzzle is nil and Number 0 when the
// archive is empty; callers render "no puzzle today".
type DailyRoles struct {
	DayKey string              `json:"day_key"`
	Number int                 `json:"number"`
	Puzzle *models.RolesPuzzle `json:"puzzle"`
}

// DailyDegrees is one day's degrees puzzle.
type DailyDegrees struct {
	DayKey string                `json:"day_key"`
	Number int                   `json:"number"`
	Puzzle *models.DegreesPuzzle `json:"puzzle"`
}

// ThumbsRound is one day's sampled set of movies for the thumbs game.
type ThumbsRound struct {
	DayKey string               `json:"day_key"`
	Movies []models.RatingEntry `json:"movies"`
}

// RolesForDay returns the daily roles puzzle as observed at the given
// instant. Passing a past or future instant previews that day's puzzle for
// the admin calendar.
func (s *GameService) RolesForDay(asOf time.Time) DailyRoles {
	dayKey, index := puzzle.DailyIndex(len(s.archive.Roles), rolesEpoch, asOf)
	out := DailyRoles{DayKey: dayKey, Number: puzzle.PuzzleNumber(index)}
	if index >= 0 {
		p := s.archive.Roles[index]
		out.Puzzle = &p
	}
	return out
}

// BonusRolesForDay returns the day's bonus roles puzzle: a deterministic
// second pick that stays clear of the last six daily puzzles. Its DayKey is
// the synthetic bonus key, so completions are recorded separately from the
// daily round.
func (s *GameService) BonusRolesForDay(asOf time.Time) DailyRoles {
	dayKey, index := puzzle.DailyIndex(len(s.archive.Roles), rolesEpoch, asOf)
	out := DailyRoles{DayKey: puzzle.BonusDayKey(dayKey)}
	if index < 0 {
		return out
	}
	bonus := puzzle.BonusIndex(index, dayKey, rolesBonusSalt)
	p := s.archive.Roles[bonus]
	out.Number = puzzle.PuzzleNumber(bonus)
	out.Puzzle = &p
	return out
}

// DegreesForDay returns the daily degrees puzzle as observed at the given instant.
func (s *GameService) DegreesForDay(asOf time.Time) DailyDegrees {
	dayKey, index := puzzle.DailyIndex(len(s.archive.Degrees), degreesEpoch, asOf)
	out := DailyDegrees{DayKey: dayKey, Number: puzzle.PuzzleNumber(index)}
	if index >= 0 {
		p := s.archive.Degrees[index]
		out.Puzzle = &p
	}
	return out
}

// BonusDegreesForDay returns the day's bonus degrees puzzle.
func (s *GameService) BonusDegreesForDay(asOf time.Time) DailyDegrees {
	dayKey, index := puzzle.DailyIndex(len(s.archive.Degrees), degreesEpoch, asOf)
	out := DailyDegrees{DayKey: puzzle.BonusDayKey(dayKey)}
	if index < 0 {
		return out
	}
	bonus := puzzle.BonusIndex(index, dayKey, degreesBonusSalt)
	p := s.archive.Degrees[bonus]
	out.Number = puzzle.PuzzleNumber(bonus)
	out.Puzzle = &p
	return out
}

// ThumbsRoundForDay samples the day's thumbs round from the eligible rating
// pool. The pool keeps its archive order, so the seeded shuffle gives every
// player the same movies in the same order all day.
func (s *GameService) ThumbsRoundForDay(asOf time.Time) ThumbsRound {
	dayKey := puzzle.DayKey(asOf)
	indexes := puzzle.RoundIndexes(len(s.archive.Ratings), thumbsRoundSize, dayKey)
	movies := make([]models.RatingEntry, 0, len(indexes))
	for _, i := range indexes {
		movies = append(movies, s.archive.Ratings[i])
	}
	return ThumbsRound{DayKey: dayKey, Movies: movies}
}

// SubmitResult records a completed round. The date key is always stamped
// server-side from the submission instant; clients only say whether it was
// the daily or the bonus round.
func (s *GameService) SubmitResult(result *models.GameResult, bonus bool, now time.Time) error {
	dayKey := puzzle.DayKey(now)
	if bonus {
		dayKey = puzzle.BonusDayKey(dayKey)
	}
	result.DateKey = dayKey

	// UpsertResult validates before writing.
	return s.resultRepo.UpsertResult(result)
}

// GameOverview pairs a game's streak with its aggregates.
type GameOverview struct {
	Streak  stats.Streak        `json:"streak"`
	Thumbs  *stats.ThumbsStats  `json:"thumbs,omitempty"`
	Roles   *stats.RolesStats   `json:"roles,omitempty"`
	Degrees *stats.DegreesStats `json:"degrees,omitempty"`
}

// PlayerStats is the full statistics view for one player.
type PlayerStats struct {
	Thumbs  GameOverview `json:"thumbs"`
	Roles   GameOverview `json:"roles"`
	Degrees GameOverview `json:"degrees"`
}

// StatsForPlayer recomputes a player's streaks and aggregates from their
// stored result history. Streaks are derived on every read, never persisted;
// bonus-round completions carry synthetic keys and do not extend streaks.
func (s *GameService) StatsForPlayer(userID int64, now time.Time) (*PlayerStats, error) {
	out := &PlayerStats{}

	thumbs, err := s.resultRepo.GetResults(userID, models.GameThumbs)
	if err != nil {
		return nil, fmt.Errorf("failed to load thumbs history: %w", err)
	}
	t := stats.ComputeThumbsStats(thumbs)
	out.Thumbs = GameOverview{
		Streak: stats.ComputeStreak(stats.DayKeys(thumbs), now),
		Thumbs: &t,
	}

	roles, err := s.resultRepo.GetResults(userID, models.GameRoles)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles history: %w", err)
	}
	r := stats.ComputeRolesStats(roles)
	out.Roles = GameOverview{
		Streak: stats.ComputeStreak(stats.DayKeys(roles), now),
		Roles:  &r,
	}

	degrees, err := s.resultRepo.GetResults(userID, models.GameDegrees)
	if err != nil {
		return nil, fmt.Errorf("failed to load degrees history: %w", err)
	}
	d := stats.ComputeDegreesStats(degrees)
	out.Degrees = GameOverview{
		Streak:  stats.ComputeStreak(stats.DayKeys(degrees), now),
		Degrees: &d,
	}

	return out, nil
}
