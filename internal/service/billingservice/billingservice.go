package billingservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mealdesk/canteen/internal/domain"
	"github.com/mealdesk/canteen/internal/pg"
	"github.com/mealdesk/canteen/internal/service/orderservice"
	"go.uber.org/zap"
)

type OrderRepo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	FindByUserAndDate(ctx context.Context, userID int, date time.Time) ([]domain.Order, error)
	FindPendingByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	FindByIDsAndDate(ctx context.Context, ids []int, date time.Time) ([]domain.Order, error)
	MarkCompleted(ctx context.Context, ids []int) (int, error)
	MarkAllPendingCompleted(ctx context.Context, userID int) (int, error)
	DeleteByIDs(ctx context.Context, ids []int) (int, error)
}

type BillingRepo interface {
	GetByUserAndDate(ctx context.Context, userID int, date time.Time) (*domain.BillingSnapshot, error)
	Create(ctx context.Context, snapshot *domain.BillingSnapshot) error
	Update(ctx context.Context, snapshot *domain.BillingSnapshot) error
	Upsert(ctx context.Context, snapshot *domain.BillingSnapshot) error
	FindPairsWithoutSnapshot(ctx context.Context, limit int) ([]domain.SnapshotKey, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Service struct {
	orderRepo   OrderRepo
	billingRepo BillingRepo
	userRepo    UserRepo
	txManager   pg.TXManager

	mu        sync.Mutex
	userLocks map[int]*sync.Mutex
}

func New(orderRepo OrderRepo, billingRepo BillingRepo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		orderRepo:   orderRepo,
		billingRepo: billingRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		userLocks:   map[int]*sync.Mutex{},
	}
}

var (
	ErrInvalidAmount    = errors.New("payment amount must be greater than 0")
	ErrUserNotFound     = errors.New("user not found")
	ErrNoOrdersSelected = errors.New("no orders selected")
	ErrDateRequired     = errors.New("date is required")
	ErrNoOrdersFound    = errors.New("no orders found for the given date")
)

// BalanceExceededError rejects a payment larger than the user's outstanding
// balance and reports that balance to the caller.
type BalanceExceededError struct {
	Balance decimal.Decimal
}

func (e *BalanceExceededError) Error() string {
	return fmt.Sprintf("payment amount cannot exceed balance (%s)", e.Balance.StringFixed(2))
}

// userLock serializes payment processing per user. Two concurrent payments
// would otherwise both read the same stale balance and double-spend it.
func (s *Service) userLock(userID int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}

// PaymentResult reports a settlement pass.
type PaymentResult struct {
	OrdersCompleted  int
	RemainingBalance decimal.Decimal
}

// ApplyPayment settles amount against the user's outstanding orders, oldest
// date first (order id breaks same-day ties). An order is completed only
// when the remaining payment fully covers its price; the walk stops at the
// first order that does not fit. The (user, today) billing snapshot is then
// created or accumulated into.
//
// The snapshot accumulation is not idempotent: re-applying the same payment
// on the same day double-counts completed_amount even though the order rows
// only settle once. Known sharp edge, kept for compatibility with the
// historical reports.
func (s *Service) ApplyPayment(ctx context.Context, userID int, amount decimal.Decimal, today time.Time) (*PaymentResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	var result *PaymentResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		// Balance covers all of the user's orders, not just today's.
		orders, err := s.orderRepo.FindByUserID(ctx, userID)
		if err != nil {
			return err
		}
		currentBalance := orderservice.AggregateOrders(orders).Balance

		if amount.GreaterThan(currentBalance) {
			return &BalanceExceededError{Balance: currentBalance}
		}

		pending, err := s.orderRepo.FindPendingByUserID(ctx, userID)
		if err != nil {
			return err
		}

		remaining := amount
		var toComplete []int
		for _, order := range pending {
			if remaining.LessThan(order.Price) {
				break
			}
			toComplete = append(toComplete, order.ID)
			remaining = remaining.Sub(order.Price)
		}

		completed := 0
		if len(toComplete) > 0 {
			completed, err = s.orderRepo.MarkCompleted(ctx, toComplete)
			if err != nil {
				return err
			}
		}

		if err := s.reconcileSnapshot(ctx, userID, today, amount, currentBalance); err != nil {
			return err
		}

		result = &PaymentResult{
			OrdersCompleted:  completed,
			RemainingBalance: currentBalance.Sub(amount),
		}
		return nil
	})
	if err != nil {
		var exceeded *BalanceExceededError
		if !errors.As(err, &exceeded) {
			zap.L().Error("payment failed",
				zap.Int("user_id", userID), zap.String("amount", amount.String()), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("payment processed",
		zap.Int("user_id", userID),
		zap.String("amount", amount.StringFixed(2)),
		zap.Int("orders_completed", result.OrdersCompleted))
	return result, nil
}

// reconcileSnapshot upserts the (user, today) snapshot after a payment. A
// fresh row records the payment directly; an existing row accumulates it.
func (s *Service) reconcileSnapshot(ctx context.Context, userID int, today time.Time, amount, currentBalance decimal.Decimal) error {
	snapshot, err := s.billingRepo.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return err
	}

	if snapshot == nil {
		return s.billingRepo.Create(ctx, &domain.BillingSnapshot{
			UserID:          userID,
			Date:            today,
			CompletedAmount: amount,
			PendingAmount:   currentBalance.Sub(amount),
			Balance:         currentBalance.Sub(amount),
		})
	}

	// The payment lands in completed_amount and is then subtracted again
	// when pending is recomputed from the accumulated total. Historical
	// reports were built on this arithmetic, so it stays.
	snapshot.CompletedAmount = snapshot.CompletedAmount.Add(amount)
	snapshot.PendingAmount = currentBalance.Sub(snapshot.CompletedAmount.Add(amount))
	snapshot.Balance = snapshot.PendingAmount
	return s.billingRepo.Update(ctx, snapshot)
}

// MarkAllCompleted bulk-completes every settleable order of the user. It
// bypasses balance math entirely and leaves billing snapshots alone.
func (s *Service) MarkAllCompleted(ctx context.Context, userID int) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if _, err := s.orderRepo.MarkAllPendingCompleted(ctx, userID); err != nil {
		zap.L().Error("failed to complete all orders", zap.Int("user_id", userID), zap.Error(err))
		return "", err
	}
	return fmt.Sprintf("All orders marked as completed for %s", user.Name), nil
}

// DeleteOrders removes orders scoped to the given date and rewrites the
// billing snapshot of every affected user from the remaining orders. Ids
// belonging to other dates are silently skipped. Unlike the payment path the
// snapshot here is a full overwrite, not an accumulation; the two paths have
// never agreed and unifying them needs a product decision.
func (s *Service) DeleteOrders(ctx context.Context, orderIDs []int, date time.Time) (int, error) {
	if len(orderIDs) == 0 {
		return 0, ErrNoOrdersSelected
	}
	if date.IsZero() {
		return 0, ErrDateRequired
	}

	var deleted int
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		matched, err := s.orderRepo.FindByIDsAndDate(ctx, orderIDs, date)
		if err != nil {
			return err
		}
		if len(matched) == 0 {
			return ErrNoOrdersFound
		}

		affectedUsers := make([]int, 0)
		seen := make(map[int]struct{})
		matchedIDs := make([]int, 0, len(matched))
		for _, order := range matched {
			matchedIDs = append(matchedIDs, order.ID)
			if _, ok := seen[order.UserID]; !ok {
				seen[order.UserID] = struct{}{}
				affectedUsers = append(affectedUsers, order.UserID)
			}
		}

		deleted, err = s.orderRepo.DeleteByIDs(ctx, matchedIDs)
		if err != nil {
			return err
		}

		for _, userID := range affectedUsers {
			remaining, err := s.orderRepo.FindByUserAndDate(ctx, userID, date)
			if err != nil {
				return err
			}
			totals := orderservice.AggregateOrders(remaining)
			err = s.billingRepo.Upsert(ctx, &domain.BillingSnapshot{
				UserID:          userID,
				Date:            date,
				CompletedAmount: totals.Completed,
				PendingAmount:   totals.Total.Sub(totals.Completed),
				Balance:         totals.Total.Sub(totals.Completed),
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNoOrdersFound) {
			zap.L().Error("order deletion failed", zap.Error(err))
		}
		return 0, err
	}

	zap.L().Info("orders deleted", zap.Int("count", deleted), zap.String("date", date.Format("2006-01-02")))
	return deleted, nil
}
