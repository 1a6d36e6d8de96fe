package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/mealdesk/canteen/docs"
	"github.com/mealdesk/canteen/internal/config"
	"github.com/mealdesk/canteen/internal/pg"
	"github.com/mealdesk/canteen/internal/repo"
	"github.com/mealdesk/canteen/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	txManager := pg.NewMockTXManager(ctrl)
	repos := repo.New(mockDB, txManager)
	services, err := service.New(&config.Config{TimeZone: "Asia/Kolkata"}, repos, txManager)
	assert.NoError(t, err)

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockBillingHandler := NewMockBillingHandler(ctrl)
	mockMenuHandler := NewMockMenuHandler(ctrl)

	mockOrderHandler.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().GetOrders(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().GetKitchenBoard(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockBillingHandler.EXPECT().GetAggregates(gomock.Any(), gomock.Any()).AnyTimes()
	mockBillingHandler.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).AnyTimes()
	mockBillingHandler.EXPECT().DeleteOrders(gomock.Any(), gomock.Any()).AnyTimes()
	mockBillingHandler.EXPECT().GetStaffSummary(gomock.Any(), gomock.Any()).AnyTimes()
	mockMenuHandler.EXPECT().OrderingAllowed(gomock.Any(), gomock.Any()).AnyTimes()
	mockMenuHandler.EXPECT().ListTimeSlots(gomock.Any(), gomock.Any()).AnyTimes()
	mockMenuHandler.EXPECT().CreateTimeSlot(gomock.Any(), gomock.Any()).AnyTimes()
	mockMenuHandler.EXPECT().UpdateTimeSlot(gomock.Any(), gomock.Any()).AnyTimes()
	mockMenuHandler.EXPECT().DeleteTimeSlot(gomock.Any(), gomock.Any()).AnyTimes()
	mockMenuHandler.EXPECT().GetCategories(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		OrderHandler:   mockOrderHandler,
		BillingHandler: mockBillingHandler,
		MenuHandler:    mockMenuHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/api/menu/ordering-allowed", http.StatusUnauthorized},
		{"GET", "/api/menu/categories", http.StatusUnauthorized},
		{"GET", "/api/menu/timeslots", http.StatusUnauthorized},
		{"POST", "/api/menu/timeslots", http.StatusUnauthorized},
		{"PUT", "/api/menu/timeslots/5", http.StatusUnauthorized},
		{"DELETE", "/api/menu/timeslots/5", http.StatusUnauthorized},
		{"POST", "/api/orders", http.StatusUnauthorized},
		{"GET", "/api/orders", http.StatusUnauthorized},
		{"GET", "/api/kitchen/orders", http.StatusUnauthorized},
		{"POST", "/api/kitchen/orders/status", http.StatusUnauthorized},
		{"GET", "/api/billing/aggregates", http.StatusUnauthorized},
		{"POST", "/api/billing/payment", http.StatusUnauthorized},
		{"POST", "/api/billing/orders/delete", http.StatusUnauthorized},
		{"GET", "/api/billing/staff-summary", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
