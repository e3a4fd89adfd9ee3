package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"tasktracker/internal/auth"
	"tasktracker/internal/logger"
	"tasktracker/internal/model"
	"tasktracker/internal/repository"

	"go.uber.org/zap"
)

const (
	usernameMaxLength = 150
	passwordMinLength = 6
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

type Registration struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthService issues and refreshes tokens and registers accounts.
type AuthService struct {
	users  UserStore
	tokens *auth.TokenManager
}

func NewAuthService(users UserStore, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, r Registration) (*model.User, error) {
	username := strings.TrimSpace(r.Username)
	switch {
	case username == "":
		return nil, NewValidationError("username", "This field may not be blank.")
	case utf8.RuneCountInString(username) > usernameMaxLength:
		return nil, NewValidationError("username",
			fmt.Sprintf("Ensure this field has no more than %d characters.", usernameMaxLength))
	case !usernamePattern.MatchString(username):
		return nil, NewValidationError("username",
			"Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.")
	}
	if utf8.RuneCountInString(r.Password) < passwordMinLength {
		return nil, NewValidationError("password",
			fmt.Sprintf("Ensure this field has at least %d characters.", passwordMinLength))
	}

	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return nil, NewConflict("username", "A user with that username already exists.")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := auth.HashPassword(r.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &model.User{
		Username:       username,
		Email:          strings.ToLower(strings.TrimSpace(r.Email)),
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		HashedPassword: hash,
		IsActive:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, NewConflict("username", "A user with that username already exists.")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	logger.Info("Service: user registered", zap.String("user_uuid", user.UUID.String()))
	return user, nil
}

// Obtain exchanges credentials for an access/refresh pair.
func (s *AuthService) Obtain(ctx context.Context, username, password string) (auth.TokenPair, error) {
	denied := NewUnauthenticated("No active account found with the given credentials")

	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return auth.TokenPair{}, denied
	}
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("find user: %w", err)
	}
	if !user.IsActive || !auth.CheckPassword(user.HashedPassword, password) {
		return auth.TokenPair{}, denied
	}

	pair, err := s.tokens.GeneratePair(user.UUID)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("generate tokens: %w", err)
	}
	return pair, nil
}

// Refresh mints a new access token from a valid refresh token.
func (s *AuthService) Refresh(ctx context.Context, refresh string) (string, error) {
	denied := NewUnauthenticated("Token is invalid or expired")

	id, err := s.tokens.ParseToken(refresh, auth.RefreshToken)
	if err != nil {
		return "", denied
	}
	user, err := s.users.FindByUUID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", denied
	}
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if !user.IsActive {
		return "", denied
	}

	access, err := s.tokens.GenerateToken(user.UUID, auth.AccessToken)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return access, nil
}
