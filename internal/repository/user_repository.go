package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	"momentsCPT/internal/apperrors"
	"momentsCPT/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	user.PasswordHash = string(hashedPassword)

	query := `
		INSERT INTO users (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id
	`

	err = r.db.GetContext(ctx, &user.UserID, query, user.Username, user.Email, user.PasswordHash, user.Role)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return fmt.Errorf("пользователь с таким именем или email %w", apperrors.ErrAlreadyExists)
		}
		return wrapDB("ошибка при создании пользователя", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с ID %d %w", userID, apperrors.ErrNotFound)
		}
		return nil, wrapDB("ошибка при получении пользователя", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE username = $1`

	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь %s %w", username, apperrors.ErrNotFound)
		}
		return nil, wrapDB("ошибка при получении пользователя по имени", err)
	}

	return &user, nil
}

func (r *userRepository) ExistsByID(ctx context.Context, userID int64) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1)`

	err := r.db.GetContext(ctx, &exists, query, userID)
	if err != nil {
		return false, wrapDB("ошибка при проверке пользователя", err)
	}

	return exists, nil
}

// VerifyPassword сравнивает пароль с хешем через bcrypt.
// Для несуществующего пользователя и для неверного пароля возвращается
// одна и та же ошибка - нельзя дать понять, что именно не совпало.
func (r *userRepository) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	user, err := r.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrBadCredentials
		}
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, apperrors.ErrBadCredentials
	}

	return user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET email = :email
		WHERE user_id = :user_id
	`

	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return wrapDB("ошибка при обновлении пользователя", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapDB("ошибка при проверке обновленных строк", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пользователь с ID %d %w", user.UserID, apperrors.ErrNotFound)
	}

	return nil
}

func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	query := `DELETE FROM users WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return wrapDB("ошибка при удалении пользователя", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapDB("ошибка при проверке удаленных строк", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пользователь с ID %d %w", userID, apperrors.ErrNotFound)
	}

	return nil
}
