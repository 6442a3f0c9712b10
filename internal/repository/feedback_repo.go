package repository

import (
	"fmt"
	"time"

	"reelstreak/internal/database"
	"reelstreak/internal/models"
)

// FeedbackRepository handles database operations for feedback messages
type FeedbackRepository struct {
	db *database.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *database.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// CreateFeedback stores a feedback message
func (r *FeedbackRepository) CreateFeedback(userID *int64, page, message string) (*models.Feedback, error) {
	query := `
		INSERT INTO feedback (user_id, page, message)
		VALUES (?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, userID, page, message)
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	return &models.Feedback{
		ID:        id,
		UserID:    userID,
		Page:      page,
		Message:   message,
		CreatedAt: time.Now(),
	}, nil
}

// GetRecentFeedback retrieves the most recent feedback messages
func (r *FeedbackRepository) GetRecentFeedback(limit int) ([]models.Feedback, error) {
	query := `
		SELECT id, user_id, page, message, created_at
		FROM feedback
		ORDER BY created_at DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	var messages []models.Feedback
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.Page, &f.Message, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		messages = append(messages, f)
	}

	return messages, rows.Err()
}
