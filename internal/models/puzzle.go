package models

import (
	"errors"
	"strings"
)

// RolesPuzzle is one day's actor/character guessing puzzle.
type RolesPuzzle struct {
	Actor      string `json:"actor"`
	Character  string `json:"character"`
	Movie      string `json:"movie"`
	Year       int    `json:"year"`
	Difficulty string `json:"difficulty,omitempty"`
}

// Validate checks that a roles puzzle has the fields the game needs.
func (p *RolesPuzzle) Validate() error {
	if strings.TrimSpace(p.Actor) == "" {
		return errors.New("roles puzzle missing actor")
	}
	if strings.TrimSpace(p.Character) == "" {
		return errors.New("roles puzzle missing character")
	}
	if strings.TrimSpace(p.Movie) == "" {
		return errors.New("roles puzzle missing movie")
	}
	if p.Year < 1888 {
		return errors.New("roles puzzle has implausible year")
	}
	return nil
}

// ChainLink is one hop in a degrees puzzle's connection chain: an actor and
// the movie that links them to the previous entity.
type ChainLink struct {
	Name  string `json:"name"`
	Movie string `json:"movie"`
}

// DegreesPuzzle asks the player to connect Start to End through a chain of
// shared movies. The chain order is the canonical solution.
type DegreesPuzzle struct {
	Start string      `json:"start"`
	End   string      `json:"end"`
	Chain []ChainLink `json:"chain"`
}

// Validate checks that a degrees puzzle is playable.
func (p *DegreesPuzzle) Validate() error {
	if strings.TrimSpace(p.Start) == "" || strings.TrimSpace(p.End) == "" {
		return errors.New("degrees puzzle missing endpoints")
	}
	if len(p.Chain) == 0 {
		return errors.New("degrees puzzle has empty chain")
	}
	for _, link := range p.Chain {
		if strings.TrimSpace(link.Name) == "" || strings.TrimSpace(link.Movie) == "" {
			return errors.New("degrees puzzle has incomplete chain link")
		}
	}
	return nil
}

// RatingEntry is one movie in the thumbs pool with both critics' verdicts.
// Thumb values are pointers because archive data sometimes omits a verdict;
// such entries are not playable.
type RatingEntry struct {
	Title    string  `json:"title"`
	Year     int     `json:"year"`
	Director string  `json:"director,omitempty"`
	ThumbA   *int    `json:"thumb_a"`
	ThumbB   *int    `json:"thumb_b"`
	TMDBID   *int64  `json:"tmdb_id,omitempty"`
	Link     *string `json:"link,omitempty"`
}

// Eligible reports whether the entry can appear in a thumbs round: both
// verdicts present and strictly binary (0 = down, 1 = up). Ineligible
// entries are excluded from the pool entirely, not just hidden.
func (e *RatingEntry) Eligible() bool {
	if e.ThumbA == nil || e.ThumbB == nil {
		return false
	}
	if *e.ThumbA != 0 && *e.ThumbA != 1 {
		return false
	}
	if *e.ThumbB != 0 && *e.ThumbB != 1 {
		return false
	}
	return true
}
