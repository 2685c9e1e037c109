package service

import (
	"context"
	"errors"
	"fmt"

	"momentsCPT/internal/apperrors"
	"momentsCPT/internal/models"
	"momentsCPT/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	Logout(ctx context.Context, tokenString string) error
	Authenticate(ctx context.Context, tokenString string) (*models.Principal, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	existingUser, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err == nil && existingUser != nil {
		return nil, fmt.Errorf("пользователь %s %w", req.Username, apperrors.ErrAlreadyExists)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     role,
	}

	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login проверяет пароль и выдает токен. Текст ошибки одинаков для
// неизвестного имени и неверного пароля.
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrBadCredentials) {
			return nil, "", apperrors.ErrBadCredentials
		}
		return nil, "", fmt.Errorf("ошибка аутентификации: %w", err)
	}

	token, err := s.tokens.Issue(user.UserID, user.Username, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации токена: %w", err)
	}

	return user, token, nil
}

// Logout отзывает токен. Успех для любого синтаксически корректного токена,
// включая уже истекший.
func (s *authService) Logout(ctx context.Context, tokenString string) error {
	err := s.tokens.Revoke(ctx, tokenString)
	if err != nil && errors.Is(err, apperrors.ErrTokenExpired) {
		return nil
	}
	return err
}

func (s *authService) Authenticate(ctx context.Context, tokenString string) (*models.Principal, error) {
	return s.tokens.Verify(ctx, tokenString)
}
