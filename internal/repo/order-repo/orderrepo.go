package orderrepo

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

const orderColumns = "id, user_id, category_id, date, price, status, created_at, updated_at, notes"

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(&order.ID, &order.UserID, &order.CategoryID, &order.Date, &order.Price,
		&order.Status, &order.CreatedAt, &order.UpdatedAt, &order.Notes)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Repository) collect(rows pgx.Rows) ([]domain.Order, error) {
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByUserCategoryDate(ctx context.Context, userID, categoryID int, date time.Time) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE user_id = $1 AND category_id = $2 AND date = $3
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, userID, categoryID, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order by user/category/date", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user orders", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

// FindByDateRange returns orders with date in [from, to], both bounds
// inclusive. A nil userID means every user.
func (r *Repository) FindByDateRange(ctx context.Context, userID *int, from, to time.Time) ([]domain.Order, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if userID != nil {
		query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE user_id = $1 AND date BETWEEN $2 AND $3
        ORDER BY date, id
    `
		rows, err = r.db.Query(ctx, query, *userID, from, to)
	} else {
		query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE date BETWEEN $1 AND $2
        ORDER BY date, id
    `
		rows, err = r.db.Query(ctx, query, from, to)
	}
	if err != nil {
		zap.L().Error("can't get orders by date range", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) FindByUserAndDate(ctx context.Context, userID int, date time.Time) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE user_id = $1 AND date = $2
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, userID, date)
	if err != nil {
		zap.L().Error("can't get orders for user and date", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

// FindPendingByUserID returns the user's settleable orders oldest first.
// The id tie-break keeps settlement deterministic for same-day orders.
func (r *Repository) FindPendingByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE user_id = $1 AND status IN ('pending', 'confirmed', 'preparing')
        ORDER BY date ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get pending orders", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) FindByIDsAndDate(ctx context.Context, ids []int, date time.Time) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = ANY($1) AND date = $2
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, ids, date)
	if err != nil {
		zap.L().Error("can't get orders by ids and date", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (user_id, category_id, date, price, status, notes)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, order.UserID, order.CategoryID, order.Date, order.Price, order.Status, order.Notes)
		if err := row.Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID int, status string) error {
	query := `
        UPDATE orders
        SET status = $1, updated_at = now()
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, status, orderID)
		if err != nil {
			zap.L().Error("failed to update order status", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) MarkCompleted(ctx context.Context, ids []int) (int, error) {
	query := `
        UPDATE orders
        SET status = 'completed', updated_at = now()
        WHERE id = ANY($1)
    `
	var affected int
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, ids)
		if err != nil {
			zap.L().Error("failed to mark orders completed", zap.Error(err))
			return err
		}
		affected = int(tag.RowsAffected())
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *Repository) MarkAllPendingCompleted(ctx context.Context, userID int) (int, error) {
	query := `
        UPDATE orders
        SET status = 'completed', updated_at = now()
        WHERE user_id = $1 AND status IN ('pending', 'confirmed', 'preparing')
    `
	var affected int
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, userID)
		if err != nil {
			zap.L().Error("failed to complete pending orders", zap.Error(err))
			return err
		}
		affected = int(tag.RowsAffected())
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *Repository) DeleteByIDs(ctx context.Context, ids []int) (int, error) {
	query := `
        DELETE FROM orders
        WHERE id = ANY($1)
    `
	var deleted int
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, ids)
		if err != nil {
			zap.L().Error("failed to delete orders", zap.Error(err))
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

func (r *Repository) FindLinesByDate(ctx context.Context, date time.Time) ([]domain.OrderLine, error) {
	query := `
        SELECT o.id, c.name, u.name, o.status, o.created_at
        FROM orders o
        JOIN categories c ON c.id = o.category_id
        JOIN users u ON u.id = o.user_id
        WHERE o.date = $1
        ORDER BY o.created_at
    `
	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		zap.L().Error("can't get order lines for date", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var line domain.OrderLine
		err := rows.Scan(&line.OrderID, &line.CategoryName, &line.UserName, &line.Status, &line.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan order line row", zap.Error(err))
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
