package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"reelstreak/internal/security"
	"reelstreak/internal/service"
	"reelstreak/internal/validation"
)

// FeedbackHandler accepts player feedback and lists it for admins
type FeedbackHandler struct {
	feedbackService *service.FeedbackService
	rateLimiter     *security.RateLimiter
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService *service.FeedbackService, rateLimiter *security.RateLimiter) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		rateLimiter:     rateLimiter,
	}
}

// Submit handles POST /api/feedback. Works with or without a logged-in user;
// submissions are rate limited per client IP.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if h.rateLimiter != nil && !h.rateLimiter.Allow(security.GetClientIP(r)) {
		respondWithError(w, http.StatusTooManyRequests, "Too many submissions, try again later", "", nil)
		return
	}

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	var userID *int64
	var userEmail string
	if user := GetUserFromContext(r.Context()); user != nil {
		userID = &user.ID
		userEmail = user.Email
	}

	feedback, err := h.feedbackService.Submit(userID, userEmail, req.Page, req.Message)
	if err != nil {
		var verr validation.ValidationError
		if errors.As(err, &verr) {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to save feedback", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"id": feedback.ID})
}

// Recent handles GET /api/admin/feedback
func (h *FeedbackHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.feedbackService.Recent(limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load feedback", err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}
