package models

import "time"

// User represents a player account. Accounts created through the hosted auth
// provider carry OAuthProvider/OAuthSubject and have no password hash.
type User struct {
	ID            int64
	Email         string
	PasswordHash  string
	DisplayName   string
	OAuthProvider string
	OAuthSubject  string
	IsAdmin       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Session represents an authenticated browser session.
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired checks if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Feedback is a message submitted through the in-game feedback widget.
type Feedback struct {
	ID        int64
	UserID    *int64
	Page      string
	Message   string
	CreatedAt time.Time
}
