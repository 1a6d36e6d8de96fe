package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/mealdesk/canteen/docs"
	billinghandlers "github.com/mealdesk/canteen/internal/handlers/billing"
	menuhandlers "github.com/mealdesk/canteen/internal/handlers/menu"
	ordershandlers "github.com/mealdesk/canteen/internal/handlers/orders"
	"github.com/mealdesk/canteen/internal/service"
	"github.com/mealdesk/canteen/pkg/auth"
	httpSwagger "github.com/swaggo/http-swagger"
)

type OrderHandler interface {
	PlaceOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetKitchenBoard(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type BillingHandler interface {
	GetAggregates(w http.ResponseWriter, r *http.Request)
	ProcessPayment(w http.ResponseWriter, r *http.Request)
	DeleteOrders(w http.ResponseWriter, r *http.Request)
	GetStaffSummary(w http.ResponseWriter, r *http.Request)
}

type MenuHandler interface {
	OrderingAllowed(w http.ResponseWriter, r *http.Request)
	ListTimeSlots(w http.ResponseWriter, r *http.Request)
	CreateTimeSlot(w http.ResponseWriter, r *http.Request)
	UpdateTimeSlot(w http.ResponseWriter, r *http.Request)
	DeleteTimeSlot(w http.ResponseWriter, r *http.Request)
	GetCategories(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	OrderHandler   OrderHandler
	BillingHandler BillingHandler
	MenuHandler    MenuHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		OrderHandler:   ordershandlers.New(s.OrderService),
		BillingHandler: billinghandlers.New(s.OrderService, s.BillingService),
		MenuHandler:    menuhandlers.New(s.MenuService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Route("/menu", func(r chi.Router) {
			r.Get("/ordering-allowed", h.MenuHandler.OrderingAllowed)
			r.Get("/categories", h.MenuHandler.GetCategories)
			r.Get("/timeslots", h.MenuHandler.ListTimeSlots)
			r.With(auth.RequireRole(auth.RoleManager)).Post("/timeslots", h.MenuHandler.CreateTimeSlot)
			r.With(auth.RequireRole(auth.RoleManager)).Put("/timeslots/{id}", h.MenuHandler.UpdateTimeSlot)
			r.With(auth.RequireRole(auth.RoleManager)).Delete("/timeslots/{id}", h.MenuHandler.DeleteTimeSlot)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleStaff))
			r.Post("/", h.OrderHandler.PlaceOrder)
			r.Get("/", h.OrderHandler.GetOrders)
		})

		r.Route("/kitchen", func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleKitchen))
			r.Get("/orders", h.OrderHandler.GetKitchenBoard)
			r.Post("/orders/status", h.OrderHandler.UpdateStatus)
		})

		r.Route("/billing", func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleManager))
			r.Get("/aggregates", h.BillingHandler.GetAggregates)
			r.Post("/payment", h.BillingHandler.ProcessPayment)
			r.Post("/orders/delete", h.BillingHandler.DeleteOrders)
			r.Get("/staff-summary", h.BillingHandler.GetStaffSummary)
		})
	})

	return r
}
