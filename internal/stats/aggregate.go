package stats

import (
	"reelstreak/internal/models"
)

// ThumbsStats summarizes a player's thumbs history.
type ThumbsStats struct {
	Played      int     `json:"played"`
	AvgTimeSecs float64 `json:"avg_time_secs"`
	AvgScorePct float64 `json:"avg_score_pct"`
}

// RolesStats summarizes a player's roles history.
type RolesStats struct {
	Played       int     `json:"played"`
	Solved       int     `json:"solved"`
	SolveRatePct float64 `json:"solve_rate_pct"`
	AvgTimeSecs  float64 `json:"avg_time_secs"`
	AvgStrikes   float64 `json:"avg_strikes"`
	AvgRounds    float64 `json:"avg_rounds"`
}

// DegreesStats summarizes a player's degrees history.
type DegreesStats struct {
	Played       int     `json:"played"`
	Solved       int     `json:"solved"`
	SolveRatePct float64 `json:"solve_rate_pct"`
	AvgTimeSecs  float64 `json:"avg_time_secs"`
	AvgMistakes  float64 `json:"avg_mistakes"`
	AvgHints     float64 `json:"avg_hints"`
}

// Nullable fields in stored results are treated as zero so one bad row cannot
// poison an entire average.
func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func boolOrFalse(p *bool) bool {
	return p != nil && *p
}

// ComputeThumbsStats reduces a player's thumbs results. The average score is
// sum(score)/sum(outOf), not the mean of per-round percentages: rounds are
// weighted by how many movies they contained.
func ComputeThumbsStats(results []models.GameResult) ThumbsStats {
	var s ThumbsStats
	if len(results) == 0 {
		return s
	}
	totalTime := 0
	totalScore := 0
	totalOutOf := 0
	for _, r := range results {
		s.Played++
		totalTime += r.TimeSecs
		totalScore += intOrZero(r.Score)
		totalOutOf += intOrZero(r.OutOf)
	}
	s.AvgTimeSecs = float64(totalTime) / float64(s.Played)
	if totalOutOf > 0 {
		s.AvgScorePct = float64(totalScore) / float64(totalOutOf) * 100
	}
	return s
}

// ComputeRolesStats reduces a player's roles results.
func ComputeRolesStats(results []models.GameResult) RolesStats {
	var s RolesStats
	if len(results) == 0 {
		return s
	}
	totalTime := 0
	totalStrikes := 0
	totalRounds := 0
	for _, r := range results {
		s.Played++
		totalTime += r.TimeSecs
		totalStrikes += intOrZero(r.Strikes)
		totalRounds += intOrZero(r.RoundsUsed)
		if boolOrFalse(r.Solved) {
			s.Solved++
		}
	}
	n := float64(s.Played)
	s.SolveRatePct = float64(s.Solved) / n * 100
	s.AvgTimeSecs = float64(totalTime) / n
	s.AvgStrikes = float64(totalStrikes) / n
	s.AvgRounds = float64(totalRounds) / n
	return s
}

// ComputeDegreesStats reduces a player's degrees results.
func ComputeDegreesStats(results []models.GameResult) DegreesStats {
	var s DegreesStats
	if len(results) == 0 {
		return s
	}
	totalTime := 0
	totalMistakes := 0
	totalHints := 0
	for _, r := range results {
		s.Played++
		totalTime += r.TimeSecs
		totalMistakes += intOrZero(r.Mistakes)
		totalHints += intOrZero(r.Hints)
		if boolOrFalse(r.Solved) {
			s.Solved++
		}
	}
	n := float64(s.Played)
	s.SolveRatePct = float64(s.Solved) / n * 100
	s.AvgTimeSecs = float64(totalTime) / n
	s.AvgMistakes = float64(totalMistakes) / n
	s.AvgHints = float64(totalHints) / n
	return s
}

// DayKeys extracts the day keys from a result set for streak computation.
func DayKeys(results []models.GameResult) []string {
	keys := make([]string, 0, len(results))
	for _, r := range results {
		keys = append(keys, r.DateKey)
	}
	return keys
}
