package service

import (
	"context"
	"fmt"

	"momentsCPT/internal/apperrors"
	"momentsCPT/internal/models"
	"momentsCPT/internal/repository"
)

type FollowService interface {
	Follow(ctx context.Context, followerID, followedID int64) (bool, error)
	Unfollow(ctx context.Context, followerID, followedID int64) (bool, error)
	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)
	ListFollowers(ctx context.Context, userID int64) ([]models.User, error)
	ListFollowing(ctx context.Context, userID int64) ([]models.User, error)
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow создает ребро подписки. false без ошибки - подписка уже была.
func (s *followService) Follow(ctx context.Context, followerID, followedID int64) (bool, error) {
	if followerID == followedID {
		return false, apperrors.ErrSelfFollow
	}

	if err := s.checkUsersExist(ctx, followerID, followedID); err != nil {
		return false, err
	}

	return s.followRepo.Follow(ctx, followerID, followedID)
}

// Unfollow удаляет ребро подписки. false без ошибки - подписки не было.
func (s *followService) Unfollow(ctx context.Context, followerID, followedID int64) (bool, error) {
	if followerID == followedID {
		return false, apperrors.ErrSelfUnfollow
	}

	if err := s.checkUsersExist(ctx, followerID, followedID); err != nil {
		return false, err
	}

	return s.followRepo.Unfollow(ctx, followerID, followedID)
}

func (s *followService) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	// само-ребра не хранятся
	if followerID == followedID {
		return false, nil
	}

	return s.followRepo.IsFollowing(ctx, followerID, followedID)
}

func (s *followService) ListFollowers(ctx context.Context, userID int64) ([]models.User, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}

	return s.followRepo.ListFollowers(ctx, userID)
}

func (s *followService) ListFollowing(ctx context.Context, userID int64) ([]models.User, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}

	return s.followRepo.ListFollowing(ctx, userID)
}

func (s *followService) checkUsersExist(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		if err := s.checkUserExists(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *followService) checkUserExists(ctx context.Context, userID int64) error {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("пользователь с ID %d %w", userID, apperrors.ErrNotFound)
	}
	return nil
}
