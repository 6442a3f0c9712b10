package service

import (
	"context"
	"log"
	"time"

	"reelstreak/internal/models"
	"reelstreak/internal/repository"
	"reelstreak/internal/validation"
)

// FeedbackService stores player feedback and forwards it to the operator
type FeedbackService struct {
	feedbackRepo *repository.FeedbackRepository
	emailService *EmailService
	notifyEmail  string
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(feedbackRepo *repository.FeedbackRepository, emailService *EmailService, notifyEmail string) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		emailService: emailService,
		notifyEmail:  notifyEmail,
	}
}

// Submit validates and stores a feedback message. userID is nil for
// anonymous submissions. The notification email is sent in the background so
// a slow SES call never delays the response.
func (s *FeedbackService) Submit(userID *int64, userEmail, page, message string) (*models.Feedback, error) {
	if err := validation.ValidateFeedbackMessage(message); err != nil {
		return nil, err
	}
	if page == "" {
		page = "unknown"
	}

	feedback, err := s.feedbackRepo.CreateFeedback(userID, page, message)
	if err != nil {
		return nil, err
	}

	if s.emailService != nil && s.emailService.IsEnabled() && s.notifyEmail != "" {
		fromUser := userEmail
		if fromUser == "" {
			fromUser = "anonymous"
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.emailService.SendFeedbackNotification(ctx, s.notifyEmail, fromUser, page, message); err != nil {
				log.Printf("Failed to send feedback notification: %v", err)
			}
		}()
	}

	return feedback, nil
}

// Recent returns the most recently submitted feedback entries
func (s *FeedbackService) Recent(limit int) ([]models.Feedback, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.feedbackRepo.GetRecentFeedback(limit)
}
