package service

import (
	"github.com/mealdesk/canteen/internal/config"
	"github.com/mealdesk/canteen/internal/pg"
	"github.com/mealdesk/canteen/internal/repo"
	billingservice "github.com/mealdesk/canteen/internal/service/billingservice"
	menuservice "github.com/mealdesk/canteen/internal/service/menuservice"
	orderservice "github.com/mealdesk/canteen/internal/service/orderservice"
)

type Services struct {
	OrderService   *orderservice.Service
	BillingService *billingservice.Service
	MenuService    *menuservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) (*Services, error) {
	menuService, err := menuservice.New(repo.TimeSlotRepo, repo.CategoryRepo, cfg.TimeZone)
	if err != nil {
		return nil, err
	}
	orderService := orderservice.New(repo.OrderRepo, repo.CategoryRepo, repo.UserRepo, menuService)
	billingService := billingservice.New(repo.OrderRepo, repo.BillingRepo, repo.UserRepo, txManager)

	return &Services{
		OrderService:   orderService,
		BillingService: billingService,
		MenuService:    menuService,
	}, nil
}
