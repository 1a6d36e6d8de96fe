package reconciler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mealdesk/canteen/internal/config"
	"github.com/mealdesk/canteen/internal/domain"
	"github.com/mealdesk/canteen/internal/service/billingservice"
	"github.com/mealdesk/canteen/internal/service/orderservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service backfills billing snapshots for (user, date) pairs that have
// orders but no snapshot row yet, so report queries never hit empty days.
// It only ever inserts: rows written by the payment path accumulate payment
// amounts and must not be recomputed from order totals.
type Service struct {
	orderRepo      billingservice.OrderRepo
	billingRepo    billingservice.BillingRepo
	limit          int
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

var inflight sync.Map

func New(cfg *config.Config, orderRepo billingservice.OrderRepo, billingRepo billingservice.BillingRepo) *Service {
	return &Service{
		orderRepo:      orderRepo,
		billingRepo:    billingRepo,
		limit:          cfg.SnapshotBatchSize,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Duration(cfg.SnapshotInterval) * time.Second,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Snapshot builder started")
	s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping snapshot builder")
			return
		case <-ticker.C:
			s.buildSnapshots(ctx)
		}
	}
}

func (s *Service) buildSnapshots(ctx context.Context) {
	keys, err := s.billingRepo.FindPairsWithoutSnapshot(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch pairs without snapshots", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, key := range keys {
		key := key
		id := fmt.Sprintf("%d/%s", key.UserID, key.Date.Format("2006-01-02"))

		if _, loaded := inflight.LoadOrStore(id, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inflight.Delete(id)
				return s.buildSnapshot(ctx, key)
			})
			if err != nil {
				inflight.Delete(id)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error building snapshots", zap.Error(err))
	}
}

func (s *Service) buildSnapshot(ctx context.Context, key domain.SnapshotKey) error {
	orders, err := s.orderRepo.FindByUserAndDate(ctx, key.UserID, key.Date)
	if err != nil {
		return fmt.Errorf("failed to load orders for user %d: %w", key.UserID, err)
	}
	if len(orders) == 0 {
		return nil
	}

	totals := orderservice.AggregateOrders(orders)
	snapshot := &domain.BillingSnapshot{
		UserID:          key.UserID,
		Date:            key.Date,
		CompletedAmount: totals.Completed,
		PendingAmount:   totals.Total.Sub(totals.Completed),
		Balance:         totals.Total.Sub(totals.Completed),
	}
	if err := s.billingRepo.Create(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to create snapshot for user %d on %s: %w",
			key.UserID, key.Date.Format("2006-01-02"), err)
	}

	zap.L().Debug("snapshot backfilled",
		zap.Int("user_id", key.UserID), zap.String("date", key.Date.Format("2006-01-02")))
	return nil
}
