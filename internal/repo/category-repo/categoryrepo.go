package categoryrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mealdesk/canteen/internal/domain"
	"github.com/mealdesk/canteen/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Category, error) {
	query := `
        SELECT id, name, price, is_locked, created_at, updated_at
        FROM categories
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var category domain.Category
	err := row.Scan(&category.ID, &category.Name, &category.Price,
		&category.IsLocked, &category.CreatedAt, &category.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find category", zap.Error(err))
		return nil, err
	}
	return &category, nil
}

func (r *Repository) FindAvailable(ctx context.Context) ([]domain.Category, error) {
	query := `
        SELECT id, name, price, is_locked, created_at, updated_at
        FROM categories
        WHERE is_locked = FALSE
        ORDER BY name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		err := rows.Scan(&category.ID, &category.Name, &category.Price,
			&category.IsLocked, &category.CreatedAt, &category.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan category row", zap.Error(err))
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}
