package service

import (
	"context"
	"errors"
	"fmt"

	"todoapi/internal/models"
	"todoapi/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ( // Define custom errors
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)

type AuthService interface {
	Signup(ctx context.Context, username, password, role string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error) // Returns a signed JWT
}

type authService struct {
	repo       repository.UserRepository
	tokens     *TokenManager
	bcryptCost int
	logger     *zap.Logger
}

func NewAuthService(repo repository.UserRepository, tokens *TokenManager, bcryptCost int, logger *zap.Logger) AuthService {
	return &authService{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *authService) Signup(ctx context.Context, username, password, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	// Cooperative duplicate check before the insert. The unique index on
	// username catches the remaining race between concurrent signups.
	existing, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		s.logger.Error("Failed to look up user", zap.Error(err))
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, ErrUserAlreadyExists
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", zap.String("username", user.Username), zap.String("role", user.Role))
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		s.logger.Error("Failed to get user by username", zap.Error(err))
		return "", fmt.Errorf("failed to retrieve user: %w", err)
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		s.logger.Error("Failed to generate JWT token", zap.Error(err))
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("User logged in successfully.", zap.String("username", user.Username))
	return token, nil
}
