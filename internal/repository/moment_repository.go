package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"momentsCPT/internal/apperrors"
	"momentsCPT/internal/models"
)

type momentRepository struct {
	db *sqlx.DB
}

type CreateMomentRequest struct {
	AuthorID       int64   `json:"author_id"`
	IdempotencyKey *string `json:"idempotency_key"`
	Text           string  `json:"text"`
	Visibility     string  `json:"visibility"`
}

type UpdateMomentRequest struct {
	MomentID   int64  `json:"moment_id"`
	Text       string `json:"text"`
	Visibility string `json:"visibility"`
}

func NewMomentRepository(db *sqlx.DB) MomentRepository {
	return &momentRepository{db: db}
}

func (r *momentRepository) Create(ctx context.Context, moment *models.Moment) error {
	query := `
        INSERT INTO moments
        (author_id, idempotency_key, text, visibility, created_at, updated_at)
        VALUES
        ($1, $2, $3, $4, $5, $6)
        RETURNING moment_id
    `

	now := time.Now()
	moment.CreatedAt = now
	moment.UpdatedAt = now

	err := r.db.GetContext(ctx, &moment.MomentID, query,
		moment.AuthorID, moment.IdempotencyKey, moment.Text, moment.Visibility,
		moment.CreatedAt, moment.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") &&
			strings.Contains(err.Error(), "idempotency") {
			return fmt.Errorf("idempotency key %w", apperrors.ErrAlreadyExists)
		}
		return wrapDB("ошибка при создании момента", err)
	}

	return nil
}

func (r *momentRepository) GetByID(ctx context.Context, momentID int64) (*models.Moment, error) {
	query := `
        SELECT * FROM moments
        WHERE moment_id = $1
    `

	var moment models.Moment
	err := r.db.GetContext(ctx, &moment, query, momentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("момент с ID %d %w", momentID, apperrors.ErrNotFound)
		}
		return nil, wrapDB("ошибка при получении момента", err)
	}

	return &moment, nil
}

func (r *momentRepository) GetByAuthorID(ctx context.Context, authorID int64) ([]models.Moment, error) {
	query := `
        SELECT * FROM moments
        WHERE author_id = $1
    `

	var moments []models.Moment
	err := r.db.SelectContext(ctx, &moments, query, authorID)
	if err != nil {
		return nil, wrapDB("ошибка при получении моментов пользователя", err)
	}

	return moments, nil
}

func (r *momentRepository) GetAll(ctx context.Context) ([]models.Moment, error) {
	query := `SELECT * FROM moments`

	var moments []models.Moment
	err := r.db.SelectContext(ctx, &moments, query)
	if err != nil {
		return nil, wrapDB("ошибка при получении моментов", err)
	}

	return moments, nil
}

func (r *momentRepository) Update(ctx context.Context, moment *models.Moment) error {
	query := `
		UPDATE moments SET
			text = :text,
			visibility = :visibility,
			updated_at = :updated_at
		WHERE moment_id = :moment_id AND author_id = :author_id
	`

	moment.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, moment)
	if err != nil {
		return wrapDB("ошибка при обновлении момента", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapDB("ошибка при проверке обновленных строк", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("момент с ID %d %w", moment.MomentID, apperrors.ErrNotFound)
	}

	return nil
}

func (r *momentRepository) Delete(ctx context.Context, momentID int64) error {
	query := `DELETE FROM moments WHERE moment_id = $1`

	result, err := r.db.ExecContext(ctx, query, momentID)
	if err != nil {
		return wrapDB("ошибка при удалении момента", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapDB("ошибка при проверке удаленных строк", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("момент с ID %d %w", momentID, apperrors.ErrNotFound)
	}

	return nil
}

func (r *momentRepository) CheckIdempotencyKey(ctx context.Context, authorID int64, idempotencyKey string) (bool, error) {
	if idempotencyKey == "" {
		return true, nil
	}

	query := `
		SELECT COUNT(*) FROM moments
		WHERE author_id = $1 AND idempotency_key = $2
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, authorID, idempotencyKey)
	if err != nil {
		return false, wrapDB("ошибка при проверке idempotency key", err)
	}

	return count == 0, nil
}
