package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
	"toolshed-backend/internal/security"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, username, password string) (*domain.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, "", &domain.ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if password == "" {
		return nil, "", &domain.ValidationError{Field: "password", Reason: "must not be empty"}
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", &domain.DuplicateError{Field: "username", Value: username}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.Create(ctx, username, string(hash))
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateSessionToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	// Same failure for unknown user and wrong password.
	if user == nil {
		return nil, "", &domain.ValidationError{Field: "credentials", Reason: "invalid username or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", &domain.ValidationError{Field: "credentials", Reason: "invalid username or password"}
	}

	token, err := s.tokens.GenerateSessionToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
