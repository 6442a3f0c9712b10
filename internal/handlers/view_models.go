package handlers

import (
	"reelstreak/internal/models"
	"reelstreak/internal/service"
)

// submitResultRequest is the body of POST /api/results. Bonus routes the
// result under the synthetic bonus date key; the server stamps the key
// itself either way.
type submitResultRequest struct {
	Game       string `json:"game"`
	Bonus      bool   `json:"bonus"`
	TimeSecs   int    `json:"time_secs"`
	Score      *int   `json:"score"`
	OutOf      *int   `json:"out_of"`
	Solved     *bool  `json:"solved"`
	Strikes    *int   `json:"strikes"`
	RoundsUsed *int   `json:"rounds_used"`
	Mistakes   *int   `json:"mistakes"`
	Hints      *int   `json:"hints"`
}

type thumbsMovieView struct {
	models.RatingEntry
	Metadata *service.MovieMetadata `json:"metadata,omitempty"`
}

type thumbsRoundView struct {
	DayKey string            `json:"day_key"`
	Movies []thumbsMovieView `json:"movies"`
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type feedbackRequest struct {
	Page    string `json:"page"`
	Message string `json:"message"`
}

type userView struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
}

func toUserView(u *models.User) userView {
	return userView{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		IsAdmin:     u.IsAdmin,
	}
}
