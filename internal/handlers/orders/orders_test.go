package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mealdesk/canteen/internal/domain"
	"github.com/mealdesk/canteen/internal/dto"
	orderservice "github.com/mealdesk/canteen/internal/service/orderservice"
	"github.com/mealdesk/canteen/pkg/auth"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authed(r *http.Request, userID int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestPlaceOrderHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Order placed",
			body: `{"category_id":3}`,
			prepareMock: func() {
				service.EXPECT().
					PlaceOrder(gomock.Any(), 1, 3, gomock.Any()).
					Return(&domain.Order{ID: 17, Status: "pending"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{"category_id":}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Ordering window closed",
			body: `{"category_id":3}`,
			prepareMock: func() {
				service.EXPECT().
					PlaceOrder(gomock.Any(), 1, 3, gomock.Any()).
					Return(nil, orderservice.ErrOrderingClosed)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Category not found",
			body: `{"category_id":99}`,
			prepareMock: func() {
				service.EXPECT().
					PlaceOrder(gomock.Any(), 1, 99, gomock.Any()).
					Return(nil, orderservice.ErrCategoryNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Category locked",
			body: `{"category_id":3}`,
			prepareMock: func() {
				service.EXPECT().
					PlaceOrder(gomock.Any(), 1, 3, gomock.Any()).
					Return(nil, orderservice.ErrCategoryLocked)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Duplicate order",
			body: `{"category_id":3}`,
			prepareMock: func() {
				service.EXPECT().
					PlaceOrder(gomock.Any(), 1, 3, gomock.Any()).
					Return(nil, orderservice.ErrDuplicateOrder)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal error",
			body: `{"category_id":3}`,
			prepareMock: func() {
				service.EXPECT().
					PlaceOrder(gomock.Any(), 1, 3, gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authed(httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(tt.body)), 1)
			w := httptest.NewRecorder()
			handler.PlaceOrder(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.PlaceOrderResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 17, body.OrderID)
			}
		})
	}
}

func TestGetOrdersHandler(t *testing.T) {
	handler, service := NewMock(t)
	today := day("2024-01-15")

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Orders for today",
			prepareMock: func() {
				service.EXPECT().LocalDate(gomock.Any()).Return(today)
				service.EXPECT().GetOrders(gomock.Any(), 1, today).Return([]orderservice.UserOrder{
					{
						Order:        domain.Order{ID: 17, Date: today, Price: decimal.RequireFromString("120.50"), Status: "pending", CreatedAt: time.Now()},
						CategoryName: "Thali",
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No orders today",
			prepareMock: func() {
				service.EXPECT().LocalDate(gomock.Any()).Return(today)
				service.EXPECT().GetOrders(gomock.Any(), 1, today).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().LocalDate(gomock.Any()).Return(today)
				service.EXPECT().GetOrders(gomock.Any(), 1, today).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authed(httptest.NewRequest(http.MethodGet, "/api/orders", nil), 1)
			w := httptest.NewRecorder()
			handler.GetOrders(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetKitchenBoardHandler(t *testing.T) {
	handler, service := NewMock(t)
	today := day("2024-01-15")

	service.EXPECT().LocalDate(gomock.Any()).Return(today)
	service.EXPECT().GetKitchenBoard(gomock.Any(), today).Return([]orderservice.CategoryOrders{
		{
			Category: "Thali",
			Count:    2,
			Orders: []domain.OrderLine{
				{OrderID: 1, CategoryName: "Thali", UserName: "Asha", Status: "pending", CreatedAt: time.Now()},
				{OrderID: 3, CategoryName: "Thali", UserName: "Maya", Status: "preparing", CreatedAt: time.Now()},
			},
		},
	}, 2, nil)

	r := authed(httptest.NewRequest(http.MethodGet, "/api/kitchen/orders", nil), 2)
	w := httptest.NewRecorder()
	handler.GetKitchenBoard(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.KitchenBoardResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, 2, body.TotalOrders)
	assert.Len(t, body.Categories, 1)
	assert.Equal(t, "Thali", body.Categories[0].Category)
}

func TestUpdateStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Status updated",
			body: `{"order_id":17,"status":"preparing"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), 17, "preparing").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown status",
			body: `{"order_id":17,"status":"eaten"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), 17, "eaten").Return(orderservice.ErrInvalidStatus)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Order not found",
			body: `{"order_id":99,"status":"ready"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), 99, "ready").Return(orderservice.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid request body",
			body:         `{"order_id":}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authed(httptest.NewRequest(http.MethodPost, "/api/kitchen/orders/status", bytes.NewBufferString(tt.body)), 2)
			w := httptest.NewRecorder()
			handler.UpdateStatus(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
