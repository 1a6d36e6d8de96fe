package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mealdesk/canteen/internal/domain"
	"github.com/mealdesk/canteen/internal/dto"
	orderservice "github.com/mealdesk/canteen/internal/service/orderservice"
	"github.com/mealdesk/canteen/pkg/auth"
	"github.com/mealdesk/canteen/pkg/utils"
)

type Service interface {
	PlaceOrder(ctx context.Context, userID, categoryID int, now time.Time) (*domain.Order, error)
	GetOrders(ctx context.Context, userID int, date time.Time) ([]orderservice.UserOrder, error)
	GetKitchenBoard(ctx context.Context, date time.Time) ([]orderservice.CategoryOrders, int, error)
	UpdateStatus(ctx context.Context, orderID int, status string) error
	LocalDate(now time.Time) time.Time
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// PlaceOrder godoc
//
//	@Summary		Place a meal order
//	@Description	Order one category for today. Rejected outside the configured ordering windows and for categories already ordered today.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PlaceOrderRequestDTO	true	"Category to order"
//	@Success		201		{object}	dto.PlaceOrderResponseDTO	"Order placed"
//	@Failure		400		{object}	utils.Response				"Duplicate order or bad payload"
//	@Failure		403		{object}	utils.Response				"Ordering window closed"
//	@Failure		404		{object}	utils.Response				"Category not found"
//	@Failure		409		{object}	utils.Response				"Category locked"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PlaceOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderService.PlaceOrder(r.Context(), userID, req.CategoryID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderingClosed):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, orderservice.ErrCategoryNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, orderservice.ErrCategoryLocked):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, orderservice.ErrDuplicateOrder):
			utils.RespondWithError(w, http.StatusBadRequest, "You have already ordered this category today")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PlaceOrderResponseDTO{
		OrderID: order.ID,
		Message: "Order placed successfully!",
	})
}

// GetOrders godoc
//
//	@Summary		Get own orders for today
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Success		204	{object}	utils.Response	"No orders today"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	today := h.orderService.LocalDate(time.Now())
	orders, err := h.orderService.GetOrders(r.Context(), userID, today)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No orders today")
		return
	}

	response := make([]dto.OrderResponseDTO, len(orders))
	for i, order := range orders {
		response[i] = dto.OrderResponseDTO{
			ID:        order.ID,
			Category:  order.CategoryName,
			Price:     order.Price.InexactFloat64(),
			Status:    order.Status,
			Date:      order.Date.Format("2006-01-02"),
			CreatedAt: order.CreatedAt.Format(time.RFC3339),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetKitchenBoard godoc
//
//	@Summary		Today's orders grouped by category
//	@Description	The kitchen view: every order placed today, grouped per category with counts.
//	@Tags			Kitchen
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.KitchenBoardResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/kitchen/orders [get]
func (h *OrderHandler) GetKitchenBoard(w http.ResponseWriter, r *http.Request) {
	today := h.orderService.LocalDate(time.Now())
	groups, total, err := h.orderService.GetKitchenBoard(r.Context(), today)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.KitchenBoardResponseDTO{
		Categories:  make([]dto.KitchenCategoryDTO, len(groups)),
		TotalOrders: total,
	}
	for i, group := range groups {
		category := dto.KitchenCategoryDTO{
			Category: group.Category,
			Count:    group.Count,
			Orders:   make([]dto.KitchenOrderDTO, len(group.Orders)),
		}
		for j, line := range group.Orders {
			category.Orders[j] = dto.KitchenOrderDTO{
				ID:        line.OrderID,
				User:      line.UserName,
				Status:    line.Status,
				CreatedAt: line.CreatedAt.Format(time.RFC3339),
			}
		}
		response.Categories[i] = category
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateStatus godoc
//
//	@Summary		Update an order's status
//	@Tags			Kitchen
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateStatusRequestDTO	true	"Order id and new status"
//	@Success		200		{object}	utils.Response				"Status updated"
//	@Failure		400		{object}	utils.Response				"Invalid status"
//	@Failure		404		{object}	utils.Response				"Order not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/kitchen/orders/status [post]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.orderService.UpdateStatus(r.Context(), req.OrderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Order status updated to " + req.Status})
}
