package orderservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mealdesk/canteen/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockCategoryRepo, *MockUserRepo, *MockMenuGate) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	categoryRepo := NewMockCategoryRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	menuGate := NewMockMenuGate(ctrl)
	service := New(repo, categoryRepo, userRepo, menuGate)
	defer ctrl.Finish()
	return service, repo, categoryRepo, userRepo, menuGate
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestAggregateOrders(t *testing.T) {
	tests := []struct {
		name              string
		orders            []domain.Order
		expectedTotal     string
		expectedCompleted string
		expectedPending   string
		expectedBalance   string
	}{
		{
			name:              "Empty order set",
			orders:            nil,
			expectedTotal:     "0",
			expectedCompleted: "0",
			expectedPending:   "0",
			expectedBalance:   "0",
		},
		{
			name: "Mixed statuses",
			orders: []domain.Order{
				{Price: decimal.NewFromInt(100), Status: StatusCompleted},
				{Price: decimal.NewFromInt(150), Status: StatusCompleted},
				{Price: decimal.NewFromInt(100), Status: StatusPending},
				{Price: decimal.NewFromInt(50), Status: StatusConfirmed},
				{Price: decimal.NewFromInt(50), Status: StatusPreparing},
			},
			expectedTotal:     "450",
			expectedCompleted: "250",
			expectedPending:   "200",
			expectedBalance:   "200",
		},
		{
			name: "Ready and cancelled count toward total but neither bucket",
			orders: []domain.Order{
				{Price: decimal.NewFromInt(100), Status: StatusCompleted},
				{Price: decimal.NewFromInt(80), Status: StatusReady},
				{Price: decimal.NewFromInt(60), Status: StatusCancelled},
			},
			expectedTotal:     "240",
			expectedCompleted: "100",
			expectedPending:   "0",
			expectedBalance:   "140",
		},
		{
			name: "Fractional prices",
			orders: []domain.Order{
				{Price: decimal.RequireFromString("120.50"), Status: StatusPending},
				{Price: decimal.RequireFromString("79.50"), Status: StatusCompleted},
			},
			expectedTotal:     "200",
			expectedCompleted: "79.5",
			expectedPending:   "120.5",
			expectedBalance:   "120.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := AggregateOrders(tt.orders)
			assert.Equal(t, tt.expectedTotal, totals.Total.String())
			assert.Equal(t, tt.expectedCompleted, totals.Completed.String())
			assert.Equal(t, tt.expectedPending, totals.Pending.String())
			assert.Equal(t, tt.expectedBalance, totals.Balance.String())
		})
	}
}

func TestCountDistinctDays(t *testing.T) {
	tests := []struct {
		name     string
		orders   []domain.Order
		expected int
	}{
		{
			name:     "No orders",
			orders:   nil,
			expected: 0,
		},
		{
			name: "Same day twice counts once",
			orders: []domain.Order{
				{Date: day("2024-01-15")},
				{Date: day("2024-01-15")},
				{Date: day("2024-01-16")},
			},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountDistinctDays(tt.orders))
		})
	}
}

func TestGetAggregates(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)
	from, to := day("2024-01-01"), day("2024-01-31")
	userID := 1

	tests := []struct {
		name          string
		userID        *int
		prepareMock   func()
		expected      *Aggregates
		expectedError error
	}{
		{
			name:   "Aggregates for one user",
			userID: &userID,
			prepareMock: func() {
				repo.EXPECT().FindByDateRange(gomock.Any(), &userID, from, to).Return([]domain.Order{
					{Date: day("2024-01-15"), Price: decimal.NewFromInt(100), Status: StatusPending},
					{Date: day("2024-01-16"), Price: decimal.NewFromInt(150), Status: StatusCompleted},
				}, nil)
			},
			expected: &Aggregates{
				Totals: Totals{
					Total:     decimal.NewFromInt(250),
					Completed: decimal.NewFromInt(150),
					Pending:   decimal.NewFromInt(100),
					Balance:   decimal.NewFromInt(100),
				},
				DistinctDays: 2,
			},
		},
		{
			name:   "Repository error",
			userID: nil,
			prepareMock: func() {
				repo.EXPECT().FindByDateRange(gomock.Any(), gomock.Nil(), from, to).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			got, err := service.GetAggregates(context.Background(), tt.userID, from, to)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected.DistinctDays, got.DistinctDays)
				assert.True(t, tt.expected.Total.Equal(got.Total))
				assert.True(t, tt.expected.Completed.Equal(got.Completed))
				assert.True(t, tt.expected.Pending.Equal(got.Pending))
				assert.True(t, tt.expected.Balance.Equal(got.Balance))
			}
		})
	}
}

func TestGetStaffSummary(t *testing.T) {
	service, repo, _, userRepo, _ := NewMock(t)
	from, to := day("2024-01-01"), day("2024-01-31")

	tests := []struct {
		name          string
		prepareMock   func()
		expectedRows  int
		expectedError error
	}{
		{
			name: "One row per staff member",
			prepareMock: func() {
				staff := []domain.User{
					{ID: 1, Name: "Asha", Role: "staff"},
					{ID: 2, Name: "Ravi", Role: "staff"},
				}
				userRepo.EXPECT().FindStaff(gomock.Any()).Return(staff, nil)
				id1, id2 := 1, 2
				repo.EXPECT().FindByDateRange(gomock.Any(), &id1, from, to).Return([]domain.Order{
					{Date: day("2024-01-15"), Price: decimal.NewFromInt(100), Status: StatusPending},
				}, nil)
				repo.EXPECT().FindByDateRange(gomock.Any(), &id2, from, to).Return(nil, nil)
			},
			expectedRows: 2,
		},
		{
			name: "Staff lookup fails",
			prepareMock: func() {
				userRepo.EXPECT().FindStaff(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rows, err := service.GetStaffSummary(context.Background(), from, to)
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, rows, tt.expectedRows)
			}
		})
	}
}

func TestPlaceOrder(t *testing.T) {
	service, repo, categoryRepo, _, menuGate := NewMock(t)
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	today := day("2024-01-15")

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Ordering window closed",
			prepareMock: func() {
				menuGate.EXPECT().OrderingAllowed(gomock.Any(), now).Return(false, nil)
			},
			expectedError: ErrOrderingClosed,
		},
		{
			name: "Category not found",
			prepareMock: func() {
				menuGate.EXPECT().OrderingAllowed(gomock.Any(), now).Return(true, nil)
				categoryRepo.EXPECT().FindByID(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: ErrCategoryNotFound,
		},
		{
			name: "Category locked",
			prepareMock: func() {
				menuGate.EXPECT().OrderingAllowed(gomock.Any(), now).Return(true, nil)
				categoryRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Category{
					ID: 3, IsLocked: true,
				}, nil)
			},
			expectedError: ErrCategoryLocked,
		},
		{
			name: "Duplicate order for the same day",
			prepareMock: func() {
				menuGate.EXPECT().OrderingAllowed(gomock.Any(), now).Return(true, nil)
				categoryRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Category{
					ID: 3, Price: decimal.NewFromInt(120),
				}, nil)
				menuGate.EXPECT().LocalDate(now).Return(today)
				repo.EXPECT().FindByUserCategoryDate(gomock.Any(), 1, 3, today).Return(&domain.Order{ID: 9}, nil)
			},
			expectedError: ErrDuplicateOrder,
		},
		{
			name: "Successful order",
			prepareMock: func() {
				menuGate.EXPECT().OrderingAllowed(gomock.Any(), now).Return(true, nil)
				categoryRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Category{
					ID: 3, Price: decimal.NewFromInt(120),
				}, nil)
				menuGate.EXPECT().LocalDate(now).Return(today)
				repo.EXPECT().FindByUserCategoryDate(gomock.Any(), 1, 3, today).Return(nil, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, order *domain.Order) error {
						assert.Equal(t, StatusPending, order.Status)
						assert.Equal(t, today, order.Date)
						assert.True(t, order.Price.Equal(decimal.NewFromInt(120)))
						order.ID = 17
						return nil
					})
			},
		},
		{
			name: "Window evaluation error",
			prepareMock: func() {
				menuGate.EXPECT().OrderingAllowed(gomock.Any(), now).Return(false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			order, err := service.PlaceOrder(context.Background(), 1, 3, now)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 17, order.ID)
			}
		})
	}
}

func TestGetKitchenBoard(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)
	date := day("2024-01-15")

	repo.EXPECT().FindLinesByDate(gomock.Any(), date).Return([]domain.OrderLine{
		{OrderID: 1, CategoryName: "Thali", UserName: "Asha", Status: StatusPending},
		{OrderID: 2, CategoryName: "Snacks", UserName: "Ravi", Status: StatusPending},
		{OrderID: 3, CategoryName: "Thali", UserName: "Maya", Status: StatusPreparing},
	}, nil)

	groups, total, err := service.GetKitchenBoard(context.Background(), date)
	assert.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, groups, 2)
	assert.Equal(t, "Thali", groups[0].Category)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, "Snacks", groups[1].Category)
	assert.Equal(t, 1, groups[1].Count)
}

func TestUpdateStatus(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		status        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Unknown status rejected",
			status:        "eaten",
			prepareMock:   func() {},
			expectedError: ErrInvalidStatus,
		},
		{
			name:   "Order not found",
			status: StatusPreparing,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 17).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:   "Any known status replaces any other",
			status: StatusPending,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 17).Return(&domain.Order{ID: 17, Status: StatusCompleted}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), 17, StatusPending).Return(nil)
			},
		},
		{
			name:   "Update fails",
			status: StatusReady,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 17).Return(&domain.Order{ID: 17, Status: StatusPending}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), 17, StatusReady).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.UpdateStatus(context.Background(), 17, tt.status)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMarkAllPendingCompleted(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)

	repo.EXPECT().MarkAllPendingCompleted(gomock.Any(), 1).Return(3, nil)
	count, err := service.MarkAllPendingCompleted(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	repo.EXPECT().MarkAllPendingCompleted(gomock.Any(), 1).Return(0, errors.New("db error"))
	_, err = service.MarkAllPendingCompleted(context.Background(), 1)
	assert.Error(t, err)
}

func TestGetOrders(t *testing.T) {
	service, repo, categoryRepo, _, _ := NewMock(t)
	date := day("2024-01-15")

	t.Run("Resolves category names once per category", func(t *testing.T) {
		repo.EXPECT().FindByUserAndDate(gomock.Any(), 1, date).Return([]domain.Order{
			{ID: 1, CategoryID: 3},
			{ID: 2, CategoryID: 3},
			{ID: 3, CategoryID: 4},
		}, nil)
		categoryRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Category{ID: 3, Name: "Thali"}, nil).Times(1)
		categoryRepo.EXPECT().FindByID(gomock.Any(), 4).Return(&domain.Category{ID: 4, Name: "Snacks"}, nil).Times(1)

		orders, err := service.GetOrders(context.Background(), 1, date)
		assert.NoError(t, err)
		assert.Len(t, orders, 3)
		assert.Equal(t, "Thali", orders[0].CategoryName)
		assert.Equal(t, "Thali", orders[1].CategoryName)
		assert.Equal(t, "Snacks", orders[2].CategoryName)
	})

	t.Run("Missing category resolves to an empty name", func(t *testing.T) {
		repo.EXPECT().FindByUserAndDate(gomock.Any(), 1, date).Return([]domain.Order{
			{ID: 4, CategoryID: 9},
		}, nil)
		categoryRepo.EXPECT().FindByID(gomock.Any(), 9).Return(nil, nil)

		orders, err := service.GetOrders(context.Background(), 1, date)
		assert.NoError(t, err)
		assert.Equal(t, "", orders[0].CategoryName)
	})

	t.Run("Repo error", func(t *testing.T) {
		repo.EXPECT().FindByUserAndDate(gomock.Any(), 1, date).Return(nil, errors.New("db error"))
		orders, err := service.GetOrders(context.Background(), 1, date)
		assert.Error(t, err)
		assert.Nil(t, orders)
	})
}
