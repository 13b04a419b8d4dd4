package service

import (
	"errors"
	"fmt"

	"bloodlink/internal/models"
	"bloodlink/internal/password"
	"bloodlink/internal/repository"
	"bloodlink/internal/token"

	"go.uber.org/zap"
)

type AuthService interface {
	// Register creates a user account. The role is always "user"; nothing
	// the caller sends can escalate it. No token is issued here.
	Register(name, email, plaintext string) (*models.User, error)
	// Login checks credentials and issues a bearer token. Unknown email
	// and wrong password are indistinguishable to the caller.
	Login(email, plaintext string) (string, *models.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *token.Manager
	logger *zap.Logger
}

func NewAuthService(users repository.UserRepository, tokens *token.Manager, logger *zap.Logger) AuthService {
	return &authService{users: users, tokens: tokens, logger: logger}
}

func (s *authService) Register(name, email, plaintext string) (*models.User, error) {
	hash, err := password.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailExists
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", zap.Int64("user_id", user.ID))
	return user, nil
}

func (s *authService) Login(email, plaintext string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		s.logger.Error("Failed to look up user", zap.Error(err))
		return "", nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	if !password.Verify(user.PasswordHash, plaintext) {
		return "", nil, ErrInvalidCredentials
	}

	signed, expiresAt, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("role", user.Role),
		zap.Time("token_expires_at", expiresAt))
	return signed, user, nil
}
