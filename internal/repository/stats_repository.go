package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`, "пользователей")
}

func (r *statsRepository) CountMoments(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM moments`, "моментов")
}

func (r *statsRepository) CountFollows(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM follows`, "подписок")
}

func (r *statsRepository) count(ctx context.Context, query, subject string) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, wrapDB(fmt.Sprintf("ошибка при подсчёте %s", subject), err)
	}

	return count, nil
}
