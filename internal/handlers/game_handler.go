package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"reelstreak/internal/models"
	"reelstreak/internal/puzzle"
	"reelstreak/internal/repository"
	"reelstreak/internal/service"
)

// GameHandler serves the daily puzzles, result submission, and player stats
type GameHandler struct {
	gameService     *service.GameService
	metadataService *service.MetadataService
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *service.GameService, metadataService *service.MetadataService) *GameHandler {
	return &GameHandler{
		gameService:     gameService,
		metadataService: metadataService,
	}
}

// asOf resolves the instant a puzzle request observes. Admins may pass
// ?asOf=YYYY-MM-DD to preview another day's puzzle; everyone else gets now.
func (h *GameHandler) asOf(r *http.Request) time.Time {
	raw := r.URL.Query().Get("asOf")
	if raw == "" {
		return time.Now()
	}

	user := GetUserFromContext(r.Context())
	if user == nil || !user.IsAdmin {
		return time.Now()
	}

	t, err := puzzle.ParseDayKey(raw)
	if err != nil {
		return time.Now()
	}
	return t
}

// DailyRoles returns today's roles puzzle
func (h *GameHandler) DailyRoles(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.gameService.RolesForDay(h.asOf(r)))
}

// BonusRoles returns today's bonus roles puzzle
func (h *GameHandler) BonusRoles(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.gameService.BonusRolesForDay(h.asOf(r)))
}

// DailyDegrees returns today's degrees puzzle
func (h *GameHandler) DailyDegrees(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.gameService.DegreesForDay(h.asOf(r)))
}

// BonusDegrees returns today's bonus degrees puzzle
func (h *GameHandler) BonusDegrees(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.gameService.BonusDegreesForDay(h.asOf(r)))
}

// ThumbsRound returns today's thumbs round, decorated with any movie
// metadata we can find.
func (h *GameHandler) ThumbsRound(w http.ResponseWriter, r *http.Request) {
	round := h.gameService.ThumbsRoundForDay(h.asOf(r))

	view := thumbsRoundView{DayKey: round.DayKey}
	for _, movie := range round.Movies {
		entry := thumbsMovieView{RatingEntry: movie}
		if h.metadataService != nil {
			if movie.TMDBID != nil {
				entry.Metadata = h.metadataService.LookupByID(r.Context(), *movie.TMDBID)
			} else {
				entry.Metadata = h.metadataService.LookupByTitle(r.Context(), movie.Title, movie.Year)
			}
		}
		view.Movies = append(view.Movies, entry)
	}

	respondJSON(w, http.StatusOK, view)
}

// SubmitResult records a completed round for the authenticated player
func (h *GameHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
		return
	}

	var req submitResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	if !models.ValidGame(req.Game) {
		respondWithError(w, http.StatusBadRequest, "Unknown game", "", nil)
		return
	}

	result := &models.GameResult{
		UserID:     user.ID,
		Game:       req.Game,
		TimeSecs:   req.TimeSecs,
		Score:      req.Score,
		OutOf:      req.OutOf,
		Solved:     req.Solved,
		Strikes:    req.Strikes,
		RoundsUsed: req.RoundsUsed,
		Mistakes:   req.Mistakes,
		Hints:      req.Hints,
	}

	if err := h.gameService.SubmitResult(result, req.Bonus, time.Now()); err != nil {
		if errors.Is(err, repository.ErrInvalidResult) {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to save result", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"date_key": result.DateKey})
}

// Stats returns the authenticated player's streaks and aggregates
func (h *GameHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
		return
	}

	stats, err := h.gameService.StatsForPlayer(user.ID, time.Now())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to compute stats", err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
