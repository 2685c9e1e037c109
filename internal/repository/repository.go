package repository

import (
	"context"
	"momentsCPT/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByID(ctx context.Context, userID int64) (bool, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, userID int64) error
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

type FollowRepository interface {
	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)
	Follow(ctx context.Context, followerID, followedID int64) (bool, error)
	Unfollow(ctx context.Context, followerID, followedID int64) (bool, error)
	ListFollowers(ctx context.Context, userID int64) ([]models.User, error)
	ListFollowing(ctx context.Context, userID int64) ([]models.User, error)
}

type MomentRepository interface {
	Create(ctx context.Context, moment *models.Moment) error
	GetByID(ctx context.Context, momentID int64) (*models.Moment, error)
	GetByAuthorID(ctx context.Context, authorID int64) ([]models.Moment, error)
	GetAll(ctx context.Context) ([]models.Moment, error)
	Update(ctx context.Context, moment *models.Moment) error
	Delete(ctx context.Context, momentID int64) error
	CheckIdempotencyKey(ctx context.Context, authorID int64, idempotencyKey string) (bool, error)
}

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *models.Attachment) error
	GetByID(ctx context.Context, attachmentID int64) (*models.Attachment, error)
	GetByMomentID(ctx context.Context, momentID int64) ([]models.Attachment, error)
	Delete(ctx context.Context, attachmentID int64) error
	DeleteByMomentID(ctx context.Context, momentID int64) error
}

type StatsRepository interface {
	CountUsers(ctx context.Context) (int, error)
	CountMoments(ctx context.Context) (int, error)
	CountFollows(ctx context.Context) (int, error)
}

type Repository struct {
	User       UserRepository
	Follow     FollowRepository
	Moment     MomentRepository
	Attachment AttachmentRepository
	Stats      StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:       NewUserRepository(db),
		Follow:     NewFollowRepository(db),
		Moment:     NewMomentRepository(db),
		Attachment: NewAttachmentRepository(db),
		Stats:      NewStatsRepository(db),
	}
}
