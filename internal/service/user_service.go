package service

import (
	"context"

	"momentsCPT/internal/access"
	"momentsCPT/internal/apperrors"
	"momentsCPT/internal/models"
	"momentsCPT/internal/repository"
)

type UserService interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	UpdateUser(ctx context.Context, principal *models.Principal, req repository.UpdateUserRequest) error
	DeleteUser(ctx context.Context, principal *models.Principal, userID int64) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) UpdateUser(ctx context.Context, principal *models.Principal, req repository.UpdateUserRequest) error {
	// изменять запись может владелец или администратор
	if !access.CanMutate(principal, req.UserID) {
		return apperrors.ErrAccessDenied
	}

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return err
	}

	user.Email = req.Email

	return s.userRepo.UpdateUser(ctx, user)
}

func (s *userService) DeleteUser(ctx context.Context, principal *models.Principal, userID int64) error {
	if !access.CanMutate(principal, userID) {
		return apperrors.ErrAccessDenied
	}

	return s.userRepo.DeleteUser(ctx, userID)
}
