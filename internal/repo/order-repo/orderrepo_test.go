package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mealdesk/canteen/internal/domain"
	"github.com/mealdesk/canteen/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

var orderRows = []string{"id", "user_id", "category_id", "date", "price", "status", "created_at", "updated_at", "notes"}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Order
	}{
		{
			name: "Existing order",
			id:   17,
			mockSetup: func() {
				rows := pgxmock.NewRows(orderRows).
					AddRow(17, 1, 3, day("2024-01-15"), decimal.RequireFromString("120.50"), "pending", now, now, "")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, category_id, date, price, status, created_at, updated_at, notes FROM orders WHERE id = $1`)).
					WithArgs(17).
					WillReturnRows(rows)
			},
			result: &domain.Order{
				ID: 17, UserID: 1, CategoryID: 3, Date: day("2024-01-15"),
				Price: decimal.RequireFromString("120.50"), Status: "pending",
				CreatedAt: now, UpdatedAt: now,
			},
		},
		{
			name: "Missing order returns nil",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, category_id, date, price, status, created_at, updated_at, notes FROM orders WHERE id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   17,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, category_id, date, price, status, created_at, updated_at, notes FROM orders WHERE id = $1`)).
					WithArgs(17).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindPendingByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Settleable orders come back oldest first",
			mockSetup: func() {
				rows := pgxmock.NewRows(orderRows).
					AddRow(1, 7, 3, day("2024-01-13"), decimal.NewFromInt(100), "pending", now, now, "").
					AddRow(2, 7, 4, day("2024-01-14"), decimal.NewFromInt(150), "confirmed", now, now, "").
					AddRow(3, 7, 3, day("2024-01-15"), decimal.NewFromInt(200), "preparing", now, now, "")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, category_id, date, price, status, created_at, updated_at, notes FROM orders WHERE user_id = $1 AND status IN ('pending', 'confirmed', 'preparing') ORDER BY date ASC, id ASC`)).
					WithArgs(7).
					WillReturnRows(rows)
			},
			count: 3,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, category_id, date, price, status, created_at, updated_at, notes FROM orders WHERE user_id = $1 AND status IN ('pending', 'confirmed', 'preparing') ORDER BY date ASC, id ASC`)).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			orders, err := repo.FindPendingByUserID(context.Background(), 7)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, orders, tt.count)
				assert.Equal(t, 1, orders[0].ID)
			}
		})
	}
}

func TestRepository_FindByDateRange(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	from, to := day("2024-01-01"), day("2024-01-31")
	userID := 7

	t.Run("Scoped to one user", func(t *testing.T) {
		rows := pgxmock.NewRows(orderRows).
			AddRow(1, 7, 3, day("2024-01-15"), decimal.NewFromInt(100), "pending", now, now, "")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, category_id, date, price, status, created_at, updated_at, notes FROM orders WHERE user_id = $1 AND date BETWEEN $2 AND $3 ORDER BY date, id`)).
			WithArgs(7, from, to).
			WillReturnRows(rows)

		orders, err := repo.FindByDateRange(context.Background(), &userID, from, to)
		assert.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("All users", func(t *testing.T) {
		rows := pgxmock.NewRows(orderRows).
			AddRow(1, 7, 3, day("2024-01-15"), decimal.NewFromInt(100), "pending", now, now, "").
			AddRow(2, 8, 4, day("2024-01-16"), decimal.NewFromInt(150), "completed", now, now, "")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, category_id, date, price, status, created_at, updated_at, notes FROM orders WHERE date BETWEEN $1 AND $2 ORDER BY date, id`)).
			WithArgs(from, to).
			WillReturnRows(rows)

		orders, err := repo.FindByDateRange(context.Background(), nil, from, to)
		assert.NoError(t, err)
		assert.Len(t, orders, 2)
	})
}

func TestRepository_FindByIDsAndDate(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	date := day("2024-01-15")

	rows := pgxmock.NewRows(orderRows).
		AddRow(1, 7, 3, date, decimal.NewFromInt(100), "pending", now, now, "")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, category_id, date, price, status, created_at, updated_at, notes FROM orders WHERE id = ANY($1) AND date = $2 ORDER BY id`)).
		WithArgs([]int{1, 99}, date).
		WillReturnRows(rows)

	orders, err := repo.FindByIDsAndDate(context.Background(), []int{1, 99}, date)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		order     *domain.Order
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save order successfully",
			order: &domain.Order{
				UserID: 1, CategoryID: 3, Date: day("2024-01-15"),
				Price: decimal.RequireFromString("120.50"), Status: "pending",
			},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO orders (user_id, category_id, date, price, status, notes) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`)).
						WithArgs(1, 3, day("2024-01-15"), decimal.RequireFromString("120.50"), "pending", "").
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(17, now, now))
					return fn(ctx)
				})
			},
		},
		{
			name: "Database error",
			order: &domain.Order{
				UserID: 1, CategoryID: 3, Date: day("2024-01-15"),
				Price: decimal.RequireFromString("120.50"), Status: "pending",
			},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO orders (user_id, category_id, date, price, status, notes) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`)).
						WithArgs(1, 3, day("2024-01-15"), decimal.RequireFromString("120.50"), "pending", "").
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), tt.order)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 17, tt.order.ID)
			}
		})
	}
}

func TestRepository_MarkCompleted(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders SET status = 'completed', updated_at = now() WHERE id = ANY($1)`)).
			WithArgs([]int{1, 2}).
			WillReturnResult(pgxmock.NewResult("UPDATE", 2))
		return fn(ctx)
	})

	count, err := repo.MarkCompleted(context.Background(), []int{1, 2})
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRepository_MarkAllPendingCompleted(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders SET status = 'completed', updated_at = now() WHERE user_id = $1 AND status IN ('pending', 'confirmed', 'preparing')`)).
			WithArgs(7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 3))
		return fn(ctx)
	})

	count, err := repo.MarkAllPendingCompleted(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRepository_DeleteByIDs(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		deleted   int
	}{
		{
			name: "Delete matched rows",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM orders WHERE id = ANY($1)`)).
						WithArgs([]int{1, 2}).
						WillReturnResult(pgxmock.NewResult("DELETE", 2))
					return fn(ctx)
				})
			},
			deleted: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM orders WHERE id = ANY($1)`)).
						WithArgs([]int{1, 2}).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deleted, err := repo.DeleteByIDs(context.Background(), []int{1, 2})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.deleted, deleted)
			}
		})
	}
}

func TestRepository_FindLinesByDate(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	date := day("2024-01-15")

	rows := pgxmock.NewRows([]string{"id", "name", "name", "status", "created_at"}).
		AddRow(1, "Thali", "Asha", "pending", now).
		AddRow(2, "Snacks", "Ravi", "preparing", now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT o.id, c.name, u.name, o.status, o.created_at FROM orders o JOIN categories c ON c.id = o.category_id JOIN users u ON u.id = o.user_id WHERE o.date = $1 ORDER BY o.created_at`)).
		WithArgs(date).
		WillReturnRows(rows)

	lines, err := repo.FindLinesByDate(context.Background(), date)
	assert.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.Equal(t, "Thali", lines[0].CategoryName)
	assert.Equal(t, "Asha", lines[0].UserName)
}
