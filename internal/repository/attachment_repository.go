package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"momentsCPT/internal/apperrors"
	"momentsCPT/internal/models"
)

type attachmentRepository struct {
	db *sqlx.DB
}

func NewAttachmentRepository(db *sqlx.DB) AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (r *attachmentRepository) Create(ctx context.Context, attachment *models.Attachment) error {
	query := `
		INSERT INTO attachments (moment_id, file_url)
		VALUES ($1, $2)
		RETURNING attachment_id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query, attachment.MomentID, attachment.FileURL).
		Scan(&attachment.AttachmentID, &attachment.CreatedAt)
	if err != nil {
		return wrapDB("ошибка при создании вложения", err)
	}

	return nil
}

func (r *attachmentRepository) GetByID(ctx context.Context, attachmentID int64) (*models.Attachment, error) {
	query := `SELECT * FROM attachments WHERE attachment_id = $1`

	var attachment models.Attachment
	err := r.db.GetContext(ctx, &attachment, query, attachmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("вложение с ID %d %w", attachmentID, apperrors.ErrNotFound)
		}
		return nil, wrapDB("ошибка при получении вложения", err)
	}

	return &attachment, nil
}

func (r *attachmentRepository) GetByMomentID(ctx context.Context, momentID int64) ([]models.Attachment, error) {
	query := `SELECT * FROM attachments WHERE moment_id = $1`

	var attachments []models.Attachment
	err := r.db.SelectContext(ctx, &attachments, query, momentID)
	if err != nil {
		return nil, wrapDB("ошибка при получении вложений момента", err)
	}

	return attachments, nil
}

func (r *attachmentRepository) Delete(ctx context.Context, attachmentID int64) error {
	query := `DELETE FROM attachments WHERE attachment_id = $1`

	result, err := r.db.ExecContext(ctx, query, attachmentID)
	if err != nil {
		return wrapDB("ошибка при удалении вложения", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapDB("ошибка при проверке удаленных строк", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("вложение с ID %d %w", attachmentID, apperrors.ErrNotFound)
	}

	return nil
}

func (r *attachmentRepository) DeleteByMomentID(ctx context.Context, momentID int64) error {
	query := `DELETE FROM attachments WHERE moment_id = $1`

	_, err := r.db.ExecContext(ctx, query, momentID)
	if err != nil {
		return wrapDB("ошибка при удалении вложений момента", err)
	}

	return nil
}
