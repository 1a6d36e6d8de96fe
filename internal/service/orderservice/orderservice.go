package orderservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mealdesk/canteen/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindByUserCategoryDate(ctx context.Context, userID, categoryID int, date time.Time) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	FindByDateRange(ctx context.Context, userID *int, from, to time.Time) ([]domain.Order, error)
	FindByUserAndDate(ctx context.Context, userID int, date time.Time) ([]domain.Order, error)
	FindLinesByDate(ctx context.Context, date time.Time) ([]domain.OrderLine, error)
	Save(ctx context.Context, order *domain.Order) error
	UpdateStatus(ctx context.Context, orderID int, status string) error
	MarkAllPendingCompleted(ctx context.Context, userID int) (int, error)
}

type CategoryRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Category, error)
}

type UserRepo interface {
	FindStaff(ctx context.Context) ([]domain.User, error)
}

// MenuGate answers whether ordering is currently open and what "today"
// means on the canteen's wall clock.
type MenuGate interface {
	OrderingAllowed(ctx context.Context, now time.Time) (bool, error)
	LocalDate(now time.Time) time.Time
}

type Service struct {
	repo         Repo
	categoryRepo CategoryRepo
	userRepo     UserRepo
	menuGate     MenuGate
}

func New(repo Repo, categoryRepo CategoryRepo, userRepo UserRepo, menuGate MenuGate) *Service {
	return &Service{
		repo:         repo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		menuGate:     menuGate,
	}
}

const (
	// StatusPending order placed, waiting for the kitchen;
	StatusPending string = "pending"
	// StatusConfirmed kitchen accepted the order;
	StatusConfirmed string = "confirmed"
	// StatusPreparing kitchen is cooking;
	StatusPreparing string = "preparing"
	// StatusReady order is ready for pickup;
	StatusReady string = "ready"
	// StatusCompleted order is paid and closed;
	StatusCompleted string = "completed"
	// StatusCancelled order was called off.
	StatusCancelled string = "cancelled"
)

var knownStatuses = map[string]struct{}{
	StatusPending:   {},
	StatusConfirmed: {},
	StatusPreparing: {},
	StatusReady:     {},
	StatusCompleted: {},
	StatusCancelled: {},
}

var (
	ErrOrderingClosed   = errors.New("ordering is closed right now")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryLocked   = errors.New("category is locked")
	ErrDuplicateOrder   = errors.New("category already ordered for this date")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidStatus    = errors.New("invalid order status")
)

// Totals is the ledger rollup over a set of orders. Pending covers
// pending/confirmed/preparing. Ready and cancelled orders sit outside both
// Completed and Pending; the billing has always been computed that way, so
// the exclusion is kept even though it looks like an oversight.
type Totals struct {
	Total     decimal.Decimal
	Completed decimal.Decimal
	Pending   decimal.Decimal
	Balance   decimal.Decimal
}

// AggregateOrders computes the ledger totals for a set of orders.
// Balance = Total - Completed: everything not yet settled or written off.
func AggregateOrders(orders []domain.Order) Totals {
	t := Totals{
		Total:     decimal.Zero,
		Completed: decimal.Zero,
		Pending:   decimal.Zero,
	}
	for _, order := range orders {
		t.Total = t.Total.Add(order.Price)
		switch order.Status {
		case StatusCompleted:
			t.Completed = t.Completed.Add(order.Price)
		case StatusPending, StatusConfirmed, StatusPreparing:
			t.Pending = t.Pending.Add(order.Price)
		}
	}
	t.Balance = t.Total.Sub(t.Completed)
	return t
}

// CountDistinctDays returns the number of distinct calendar dates in the
// order set. An activity metric, not a financial one.
func CountDistinctDays(orders []domain.Order) int {
	days := make(map[string]struct{}, len(orders))
	for _, order := range orders {
		days[order.Date.Format("2006-01-02")] = struct{}{}
	}
	return len(days)
}

// Aggregates is Totals plus the distinct-day count for a scope.
type Aggregates struct {
	Totals
	DistinctDays int
}

// GetAggregates rolls up orders for one user (or all users when userID is
// nil) over [from, to] inclusive.
func (s *Service) GetAggregates(ctx context.Context, userID *int, from, to time.Time) (*Aggregates, error) {
	orders, err := s.repo.FindByDateRange(ctx, userID, from, to)
	if err != nil {
		zap.L().Error("failed to get orders for aggregation", zap.Error(err))
		return nil, err
	}
	return &Aggregates{
		Totals:       AggregateOrders(orders),
		DistinctDays: CountDistinctDays(orders),
	}, nil
}

// StaffSummaryRow is one staff member's rollup for manager reports.
type StaffSummaryRow struct {
	User domain.User
	Aggregates
}

func (s *Service) GetStaffSummary(ctx context.Context, from, to time.Time) ([]StaffSummaryRow, error) {
	staff, err := s.userRepo.FindStaff(ctx)
	if err != nil {
		zap.L().Error("failed to get staff list", zap.Error(err))
		return nil, err
	}

	rows := make([]StaffSummaryRow, 0, len(staff))
	for _, user := range staff {
		user := user
		orders, err := s.repo.FindByDateRange(ctx, &user.ID, from, to)
		if err != nil {
			zap.L().Error("failed to get staff orders", zap.Int("user_id", user.ID), zap.Error(err))
			return nil, err
		}
		rows = append(rows, StaffSummaryRow{
			User: user,
			Aggregates: Aggregates{
				Totals:       AggregateOrders(orders),
				DistinctDays: CountDistinctDays(orders),
			},
		})
	}
	return rows, nil
}

// PlaceOrder accepts one category order for the current local date. The
// price is copied from the category and is immutable afterwards.
func (s *Service) PlaceOrder(ctx context.Context, userID, categoryID int, now time.Time) (*domain.Order, error) {
	allowed, err := s.menuGate.OrderingAllowed(ctx, now)
	if err != nil {
		zap.L().Error("failed to evaluate ordering window", zap.Error(err))
		return nil, err
	}
	if !allowed {
		return nil, ErrOrderingClosed
	}

	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	if category.IsLocked {
		return nil, ErrCategoryLocked
	}

	today := s.menuGate.LocalDate(now)
	existing, err := s.repo.FindByUserCategoryDate(ctx, userID, categoryID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("duplicate order rejected",
			zap.Int("user_id", userID), zap.Int("category_id", categoryID))
		return nil, ErrDuplicateOrder
	}

	order := &domain.Order{
		UserID:     userID,
		CategoryID: categoryID,
		Date:       today,
		Price:      category.Price,
		Status:     StatusPending,
	}
	if err := s.repo.Save(ctx, order); err != nil {
		zap.L().Error("can't save order: ", zap.Error(err))
		return nil, err
	}
	return order, nil
}

// LocalDate is the canteen-clock calendar date for an instant.
func (s *Service) LocalDate(now time.Time) time.Time {
	return s.menuGate.LocalDate(now)
}

// UserOrder is an order with its category name resolved for display.
type UserOrder struct {
	domain.Order
	CategoryName string
}

func (s *Service) GetOrders(ctx context.Context, userID int, date time.Time) ([]UserOrder, error) {
	orders, err := s.repo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}

	names := make(map[int]string)
	result := make([]UserOrder, len(orders))
	for i, order := range orders {
		name, ok := names[order.CategoryID]
		if !ok {
			category, err := s.categoryRepo.FindByID(ctx, order.CategoryID)
			if err != nil {
				zap.L().Error("failed to resolve category", zap.Int("category_id", order.CategoryID), zap.Error(err))
				return nil, err
			}
			if category != nil {
				name = category.Name
			}
			names[order.CategoryID] = name
		}
		result[i] = UserOrder{Order: order, CategoryName: name}
	}
	return result, nil
}

// CategoryOrders is the kitchen board: one category's orders for a day.
type CategoryOrders struct {
	Category string
	Count    int
	Orders   []domain.OrderLine
}

// GetKitchenBoard groups a day's orders per category, preserving the
// category order of first appearance.
func (s *Service) GetKitchenBoard(ctx context.Context, date time.Time) ([]CategoryOrders, int, error) {
	lines, err := s.repo.FindLinesByDate(ctx, date)
	if err != nil {
		zap.L().Error("failed to get kitchen orders", zap.Error(err))
		return nil, 0, err
	}

	index := make(map[string]int)
	groups := make([]CategoryOrders, 0)
	for _, line := range lines {
		i, ok := index[line.CategoryName]
		if !ok {
			i = len(groups)
			index[line.CategoryName] = i
			groups = append(groups, CategoryOrders{Category: line.CategoryName})
		}
		groups[i].Count++
		groups[i].Orders = append(groups[i].Orders, line)
	}
	return groups, len(lines), nil
}

// UpdateStatus overwrites an order's status. Any known status may replace
// any other; the portal has never constrained the transition graph.
func (s *Service) UpdateStatus(ctx context.Context, orderID int, status string) error {
	if _, ok := knownStatuses[status]; !ok {
		return ErrInvalidStatus
	}

	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		zap.L().Error("failed to update order status", zap.Error(err))
		return err
	}
	return nil
}

// MarkAllPendingCompleted bulk-completes every settleable order of the user
// and returns how many it touched. It does not touch billing snapshots; only
// the payment and deletion paths reconcile those.
func (s *Service) MarkAllPendingCompleted(ctx context.Context, userID int) (int, error) {
	count, err := s.repo.MarkAllPendingCompleted(ctx, userID)
	if err != nil {
		zap.L().Error("failed to complete pending orders", zap.Error(err))
		return 0, err
	}
	return count, nil
}
