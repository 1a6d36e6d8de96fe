package timeslotrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/mealdesk/canteen/internal/domain"
	"github.com/mealdesk/canteen/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Clock columns come back as HH:MM:SS text so they compare as strings.
const slotColumns = "id, name, start_date, end_date, start_time::text, end_time::text, is_active, created_at, updated_at"

func (r *Repository) collect(rows pgx.Rows) ([]domain.TimeSlot, error) {
	defer rows.Close()

	var slots []domain.TimeSlot
	for rows.Next() {
		var slot domain.TimeSlot
		err := rows.Scan(&slot.ID, &slot.Name, &slot.StartDate, &slot.EndDate,
			&slot.StartTime, &slot.EndTime, &slot.IsActive, &slot.CreatedAt, &slot.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan time slot row", zap.Error(err))
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.TimeSlot, error) {
	query := `
        SELECT ` + slotColumns + `
        FROM time_slots
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get time slots", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) Save(ctx context.Context, slot *domain.TimeSlot) error {
	query := `
        INSERT INTO time_slots (name, start_date, end_date, start_time, end_time, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, slot.Name, slot.StartDate, slot.EndDate,
			slot.StartTime, slot.EndTime, slot.IsActive)
		if err := row.Scan(&slot.ID, &slot.CreatedAt, &slot.UpdatedAt); err != nil {
			zap.L().Error("can't save time slot", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// Update overwrites every mutable column. Returns the number of rows
// touched so callers can tell a missing slot from a successful write.
func (r *Repository) Update(ctx context.Context, slot *domain.TimeSlot) (int, error) {
	query := `
        UPDATE time_slots
        SET name = $1, start_date = $2, end_date = $3, start_time = $4, end_time = $5, is_active = $6, updated_at = now()
        WHERE id = $7
    `
	var updated int
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, slot.Name, slot.StartDate, slot.EndDate,
			slot.StartTime, slot.EndTime, slot.IsActive, slot.ID)
		if err != nil {
			zap.L().Error("can't update time slot", zap.Error(err))
			return err
		}
		updated = int(tag.RowsAffected())
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (int, error) {
	query := `
        DELETE FROM time_slots
        WHERE id = $1
    `
	var deleted int
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, id)
		if err != nil {
			zap.L().Error("can't delete time slot", zap.Error(err))
			return err
		}
		deleted = int(tag.RowsAffected())
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
