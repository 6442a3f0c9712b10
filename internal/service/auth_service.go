package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"reelstreak/internal/credentials"
	"reelstreak/internal/models"
	"reelstreak/internal/repository"
	"reelstreak/internal/security"
	"reelstreak/internal/validation"
)

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidAuthToken   = errors.New("invalid auth token")
)

// AuthService handles authentication business logic: local email/password
// accounts, browser sessions, and Bearer tokens minted by the hosted auth
// provider.
type AuthService struct {
	userRepo        *repository.UserRepository
	sessionDuration time.Duration
	jwtSecret       []byte
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repository.UserRepository, sessionDuration time.Duration, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		sessionDuration: sessionDuration,
		jwtSecret:       []byte(jwtSecret),
	}
}

// Register creates a new player account
func (s *AuthService) Register(email, password, displayName string) (*models.User, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}
	if displayName == "" {
		// Anonymous-feeling signups get a movie-themed handle
		generated, err := credentials.GenerateGuestName()
		if err != nil {
			return nil, fmt.Errorf("failed to generate display name: %w", err)
		}
		displayName = generated
	}
	if err := validation.ValidateDisplayName(displayName); err != nil {
		return nil, err
	}

	existingUser, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrEmailTaken
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.CreateUser(email, passwordHash, displayName)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and creates a session
func (s *AuthService) Login(email, password string) (*models.User, *models.Session, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || user.PasswordHash == "" {
		return nil, nil, ErrInvalidCredentials
	}
	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.createSession(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// LoginOAuth finds or creates the account for an OAuth identity and opens a
// session for it.
func (s *AuthService) LoginOAuth(provider, subject, email, displayName string) (*models.User, *models.Session, error) {
	user, _, err := s.LoginOAuthWithoutSession(provider, subject, email, displayName)
	if err != nil {
		return nil, nil, err
	}

	session, err := s.createSession(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

func (s *AuthService) createSession(userID int64) (*models.Session, error) {
	sessionID := security.GenerateSessionID()
	expiresAt := time.Now().Add(s.sessionDuration)
	session, err := s.userRepo.CreateSession(sessionID, userID, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// ValidateSession checks a session ID and returns the associated user
func (s *AuthService) ValidateSession(sessionID string) (*models.User, error) {
	session, err := s.userRepo.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.IsExpired() {
		_ = s.userRepo.DeleteSession(sessionID)
		return nil, ErrSessionExpired
	}

	user, err := s.userRepo.GetUserByID(session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrSessionNotFound
	}
	return user, nil
}

// Logout removes a session
func (s *AuthService) Logout(sessionID string) error {
	return s.userRepo.DeleteSession(sessionID)
}

// CleanupExpiredSessions removes sessions past their expiry
func (s *AuthService) CleanupExpiredSessions() error {
	return s.userRepo.DeleteExpiredSessions()
}

// ValidateProviderToken verifies a Bearer token issued by the hosted auth
// provider and returns (finding or creating) the matching local user. Tokens
// are HMAC-signed with a shared secret; the subject claim is the provider's
// stable user ID.
func (s *AuthService) ValidateProviderToken(tokenString string) (*models.User, error) {
	if len(s.jwtSecret) == 0 {
		return nil, ErrInvalidAuthToken
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidAuthToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidAuthToken
	}
	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, ErrInvalidAuthToken
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	user, _, err := s.LoginOAuthWithoutSession("provider", subject, email, name)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// LoginOAuthWithoutSession finds or creates an OAuth-backed user without
// opening a browser session. Bearer-token requests are stateless.
func (s *AuthService) LoginOAuthWithoutSession(provider, subject, email, displayName string) (*models.User, bool, error) {
	user, err := s.userRepo.GetUserByOAuth(provider, subject)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up oauth user: %w", err)
	}
	if user != nil {
		return user, false, nil
	}

	if displayName == "" {
		generated, err := credentials.GenerateGuestName()
		if err != nil {
			return nil, false, fmt.Errorf("failed to generate display name: %w", err)
		}
		displayName = generated
	}
	user, err = s.userRepo.CreateOAuthUser(email, displayName, provider, subject)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create oauth user: %w", err)
	}
	return user, true, nil
}
