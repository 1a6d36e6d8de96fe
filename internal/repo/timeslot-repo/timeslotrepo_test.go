package timeslotrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
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

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Clock columns come back as text",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "start_date", "end_date", "start_time", "end_time", "is_active", "created_at", "updated_at"}).
					AddRow(2, "Lunch Menu", day("2024-01-01"), day("2024-01-31"), "09:00:00", "17:00:00", true, now, now)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, start_date, end_date, start_time::text, end_time::text, is_active, created_at, updated_at FROM time_slots ORDER BY created_at DESC`)).
					WillReturnRows(rows)
			},
			count: 1,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, start_date, end_date, start_time::text, end_time::text, is_active, created_at, updated_at FROM time_slots ORDER BY created_at DESC`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			slots, err := repo.FindAll(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, slots, tt.count)
				assert.Equal(t, "09:00:00", slots[0].StartTime)
				assert.Equal(t, "17:00:00", slots[0].EndTime)
			}
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()

	slot := &domain.TimeSlot{
		Name:      "Lunch Menu",
		StartDate: day("2024-01-01"),
		EndDate:   day("2024-01-31"),
		StartTime: "09:00:00",
		EndTime:   "17:00:00",
		IsActive:  true,
	}

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO time_slots (name, start_date, end_date, start_time, end_time, is_active) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`)).
			WithArgs("Lunch Menu", day("2024-01-01"), day("2024-01-31"), "09:00:00", "17:00:00", true).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(2, now, now))
		return fn(ctx)
	})

	err := repo.Save(context.Background(), slot)
	assert.NoError(t, err)
	assert.Equal(t, 2, slot.ID)
}

func TestRepository_Update(t *testing.T) {
	repo, mock, tx := NewMock(t)

	slot := &domain.TimeSlot{
		ID:        5,
		Name:      "Lunch Menu",
		StartDate: day("2024-01-01"),
		EndDate:   day("2024-01-31"),
		StartTime: "09:00:00",
		EndTime:   "17:00:00",
		IsActive:  true,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		updated   int
	}{
		{
			name: "Existing slot updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE time_slots SET name = $1, start_date = $2, end_date = $3, start_time = $4, end_time = $5, is_active = $6, updated_at = now() WHERE id = $7`)).
					WithArgs("Lunch Menu", day("2024-01-01"), day("2024-01-31"), "09:00:00", "17:00:00", true, 5).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			updated: 1,
		},
		{
			name: "Unknown id touches nothing",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE time_slots SET name = $1, start_date = $2, end_date = $3, start_time = $4, end_time = $5, is_active = $6, updated_at = now() WHERE id = $7`)).
					WithArgs("Lunch Menu", day("2024-01-01"), day("2024-01-31"), "09:00:00", "17:00:00", true, 5).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			updated: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE time_slots SET name = $1, start_date = $2, end_date = $3, start_time = $4, end_time = $5, is_active = $6, updated_at = now() WHERE id = $7`)).
					WithArgs("Lunch Menu", day("2024-01-01"), day("2024-01-31"), "09:00:00", "17:00:00", true, 5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
				tt.mockSetup()
				return fn(ctx)
			})

			updated, err := repo.Update(context.Background(), slot)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.updated, updated)
			}
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		deleted   int
	}{
		{
			name: "Existing slot deleted",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM time_slots WHERE id = $1`)).
					WithArgs(5).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			deleted: 1,
		},
		{
			name: "Unknown id touches nothing",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM time_slots WHERE id = $1`)).
					WithArgs(5).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			deleted: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM time_slots WHERE id = $1`)).
					WithArgs(5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
				tt.mockSetup()
				return fn(ctx)
			})

			deleted, err := repo.Delete(context.Background(), 5)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.deleted, deleted)
			}
		})
	}
}
