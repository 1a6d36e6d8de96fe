package billingrepo

import (
	"context"
	"errors"
	"time"

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

func (r *Repository) GetByUserAndDate(ctx context.Context, userID int, date time.Time) (*domain.BillingSnapshot, error) {
	query := `
        SELECT id, user_id, date, completed_amount, pending_amount, balance
        FROM billing_snapshots
        WHERE user_id = $1 AND date = $2
    `
	row := r.db.QueryRow(ctx, query, userID, date)
	var snapshot domain.BillingSnapshot
	err := row.Scan(&snapshot.ID, &snapshot.UserID, &snapshot.Date,
		&snapshot.CompletedAmount, &snapshot.PendingAmount, &snapshot.Balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get billing snapshot", zap.Error(err))
		return nil, err
	}
	return &snapshot, nil
}

func (r *Repository) Create(ctx context.Context, snapshot *domain.BillingSnapshot) error {
	query := `
        INSERT INTO billing_snapshots (user_id, date, completed_amount, pending_amount, balance)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, snapshot.UserID, snapshot.Date,
			snapshot.CompletedAmount, snapshot.PendingAmount, snapshot.Balance)
		if err := row.Scan(&snapshot.ID); err != nil {
			zap.L().Error("failed to create billing snapshot", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// Update rewrites an existing row's amounts. The payment path reads the row,
// accumulates into it and writes it back through here.
func (r *Repository) Update(ctx context.Context, snapshot *domain.BillingSnapshot) error {
	query := `
        UPDATE billing_snapshots
        SET completed_amount = $1, pending_amount = $2, balance = $3
        WHERE user_id = $4 AND date = $5
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, snapshot.CompletedAmount, snapshot.PendingAmount,
			snapshot.Balance, snapshot.UserID, snapshot.Date)
		if err != nil {
			zap.L().Error("failed to update billing snapshot", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// Upsert overwrites the (user, date) row with the given amounts, creating it
// if absent. Used by the deletion path, which replaces the snapshot with
// values recomputed from the remaining orders.
func (r *Repository) Upsert(ctx context.Context, snapshot *domain.BillingSnapshot) error {
	query := `
        INSERT INTO billing_snapshots (user_id, date, completed_amount, pending_amount, balance)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id, date) DO UPDATE
        SET completed_amount = EXCLUDED.completed_amount,
            pending_amount = EXCLUDED.pending_amount,
            balance = EXCLUDED.balance
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, snapshot.UserID, snapshot.Date,
			snapshot.CompletedAmount, snapshot.PendingAmount, snapshot.Balance)
		if err != nil {
			zap.L().Error("failed to upsert billing snapshot", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// FindPairsWithoutSnapshot lists (user, date) pairs that have orders but no
// billing snapshot yet, oldest date first.
func (r *Repository) FindPairsWithoutSnapshot(ctx context.Context, limit int) ([]domain.SnapshotKey, error) {
	query := `
        SELECT DISTINCT o.user_id, o.date
        FROM orders o
        LEFT JOIN billing_snapshots bs ON bs.user_id = o.user_id AND bs.date = o.date
        WHERE bs.id IS NULL
        ORDER BY o.date, o.user_id
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get pairs without snapshot", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var keys []domain.SnapshotKey
	for rows.Next() {
		var key domain.SnapshotKey
		if err := rows.Scan(&key.UserID, &key.Date); err != nil {
			zap.L().Error("can't scan snapshot key row", zap.Error(err))
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
