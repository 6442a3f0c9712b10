package models

import (
	"fmt"
	"time"
)

// Game identifiers used in result records and API routes.
const (
	GameThumbs  = "thumbs"
	GameRoles   = "roles"
	GameDegrees = "degrees"
)

// ValidGame reports whether the given game identifier is known.
func ValidGame(game string) bool {
	switch game {
	case GameThumbs, GameRoles, GameDegrees:
		return true
	}
	return false
}

// GameResult is one player's completion of one day's puzzle. At most one row
// exists per (UserID, Game, DateKey); resubmitting the same day overwrites.
// Bonus rounds use a synthetic "bonus-" date key so they never clash with
// the daily round.
//
// The outcome fields are game-specific and nullable: Score/OutOf for thumbs,
// Solved/Strikes/RoundsUsed for roles, Solved/Mistakes/Hints for degrees.
type GameResult struct {
	ID         int64
	UserID     int64
	Game       string
	DateKey    string
	TimeSecs   int
	Score      *int
	OutOf      *int
	Solved     *bool
	Strikes    *int
	RoundsUsed *int
	Mistakes   *int
	Hints      *int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks the invariant fields common to every game.
func (r *GameResult) Validate() error {
	if r.UserID <= 0 {
		return fmt.Errorf("result has invalid user id %d", r.UserID)
	}
	if !ValidGame(r.Game) {
		return fmt.Errorf("result has unknown game %q", r.Game)
	}
	if r.DateKey == "" {
		return fmt.Errorf("result missing date key")
	}
	if r.TimeSecs < 0 {
		return fmt.Errorf("result has negative time %d", r.TimeSecs)
	}
	if r.Game == GameThumbs {
		if r.Score == nil || r.OutOf == nil {
			return fmt.Errorf("thumbs result missing score fields")
		}
		if *r.OutOf <= 0 || *r.Score < 0 || *r.Score > *r.OutOf {
			return fmt.Errorf("thumbs result has invalid score %d/%d", *r.Score, *r.OutOf)
		}
	}
	return nil
}
