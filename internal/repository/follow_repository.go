package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"momentsCPT/internal/models"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// IsFollowing проверяет наличие ребра подписки.
// Само-ребра в графе не хранятся, для followerID == followedID всегда false.
func (r *followRepository) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followed_id = $2)`

	err := r.db.GetContext(ctx, &exists, query, followerID, followedID)
	if err != nil {
		return false, wrapDB("ошибка при проверке подписки", err)
	}

	return exists, nil
}

// Follow вставляет ребро подписки. Составной первичный ключ сериализует
// одновременные вставки одной и той же пары: проигравший гонку получает
// rowsAffected == 0, а не ошибку.
func (r *followRepository) Follow(ctx context.Context, followerID, followedID int64) (bool, error) {
	query := `
		INSERT INTO follows (follower_id, followed_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followed_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, followerID, followedID)
	if err != nil {
		return false, wrapDB("ошибка при создании подписки", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, wrapDB("ошибка при проверке вставленных строк", err)
	}

	return rowsAffected > 0, nil
}

func (r *followRepository) Unfollow(ctx context.Context, followerID, followedID int64) (bool, error) {
	query := `DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2`

	result, err := r.db.ExecContext(ctx, query, followerID, followedID)
	if err != nil {
		return false, wrapDB("ошибка при удалении подписки", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, wrapDB("ошибка при проверке удаленных строк", err)
	}

	return rowsAffected > 0, nil
}

func (r *followRepository) ListFollowers(ctx context.Context, userID int64) ([]models.User, error) {
	query := `
		SELECT u.* FROM users u
		JOIN follows f ON f.follower_id = u.user_id
		WHERE f.followed_id = $1
	`

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query, userID)
	if err != nil {
		return nil, wrapDB("ошибка при получении подписчиков", err)
	}

	return users, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, userID int64) ([]models.User, error) {
	query := `
		SELECT u.* FROM users u
		JOIN follows f ON f.followed_id = u.user_id
		WHERE f.follower_id = $1
	`

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query, userID)
	if err != nil {
		return nil, wrapDB("ошибка при получении подписок", err)
	}

	return users, nil
}
