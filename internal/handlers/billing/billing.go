package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mealdesk/canteen/internal/dto"
	billingservice "github.com/mealdesk/canteen/internal/service/billingservice"
	orderservice "github.com/mealdesk/canteen/internal/service/orderservice"
	"github.com/mealdesk/canteen/pkg/utils"
	"github.com/mealdesk/canteen/pkg/validate"
)

// LedgerService reads order aggregates.
type LedgerService interface {
	GetAggregates(ctx context.Context, userID *int, from, to time.Time) (*orderservice.Aggregates, error)
	GetStaffSummary(ctx context.Context, from, to time.Time) ([]orderservice.StaffSummaryRow, error)
	LocalDate(now time.Time) time.Time
}

// Service mutates orders and billing snapshots.
type Service interface {
	ApplyPayment(ctx context.Context, userID int, amount decimal.Decimal, today time.Time) (*billingservice.PaymentResult, error)
	MarkAllCompleted(ctx context.Context, userID int) (string, error)
	DeleteOrders(ctx context.Context, orderIDs []int, date time.Time) (int, error)
}

type BillingHandler struct {
	ledgerService  LedgerService
	billingService Service
}

func New(ledgerService LedgerService, billingService Service) *BillingHandler {
	return &BillingHandler{
		ledgerService:  ledgerService,
		billingService: billingService,
	}
}

// dateRange resolves the from/to query params, defaulting to month-to-date
// on the canteen clock.
func (h *BillingHandler) dateRange(r *http.Request) (time.Time, time.Time, error) {
	today := h.ledgerService.LocalDate(time.Now())
	from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := today

	if s := r.URL.Query().Get("from"); s != "" {
		parsed, err := validate.ParseDate(s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if s := r.URL.Query().Get("to"); s != "" {
		parsed, err := validate.ParseDate(s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}
	return from, to, nil
}

// GetAggregates godoc
//
//	@Summary		Order aggregates for a user or all users
//	@Description	Total, completed, pending, balance and distinct order days over an inclusive date range. Month-to-date when no range given.
//	@Tags			Billing
//	@Security		BearerAuth
//	@Produce		json
//	@Param			user_id	query		int		false	"Scope to one user"
//	@Param			from	query		string	false	"Range start (YYYY-MM-DD)"
//	@Param			to		query		string	false	"Range end (YYYY-MM-DD)"
//	@Success		200		{object}	dto.AggregatesResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed date or user id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/aggregates [get]
func (h *BillingHandler) GetAggregates(w http.ResponseWriter, r *http.Request) {
	from, to, err := h.dateRange(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var userID *int
	if s := r.URL.Query().Get("user_id"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid user_id")
			return
		}
		userID = &id
	}

	aggregates, err := h.ledgerService.GetAggregates(r.Context(), userID, from, to)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AggregatesResponseDTO{
		Total:        aggregates.Total.InexactFloat64(),
		Completed:    aggregates.Completed.InexactFloat64(),
		Pending:      aggregates.Pending.InexactFloat64(),
		Balance:      aggregates.Balance.InexactFloat64(),
		DistinctDays: aggregates.DistinctDays,
	})
}

// ProcessPayment godoc
//
//	@Summary		Apply a payment or complete all orders
//	@Description	Settles the amount against the user's outstanding orders oldest first, or with mark_all_completed set, bulk-completes everything without touching the snapshot.
//	@Tags			Billing
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentRequestDTO	true	"Payment payload"
//	@Success		200		{object}	dto.PaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Non-positive amount or amount above balance"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/payment [post]
func (h *BillingHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.MarkAllCompleted {
		message, err := h.billingService.MarkAllCompleted(r.Context(), req.UserID)
		if err != nil {
			if errors.Is(err, billingservice.ErrUserNotFound) {
				utils.RespondWithError(w, http.StatusNotFound, err.Error())
				return
			}
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, dto.MarkAllCompletedResponseDTO{Message: message})
		return
	}

	amount := decimal.NewFromFloat(req.PaymentAmount)
	today := h.ledgerService.LocalDate(time.Now())
	result, err := h.billingService.ApplyPayment(r.Context(), req.UserID, amount, today)
	if err != nil {
		var exceeded *billingservice.BalanceExceededError
		switch {
		case errors.Is(err, billingservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &exceeded):
			utils.RespondWithError(w, http.StatusBadRequest, exceeded.Error())
		case errors.Is(err, billingservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentResponseDTO{
		Message:          fmt.Sprintf("Payment of %s processed successfully", amount.StringFixed(2)),
		OrdersCompleted:  result.OrdersCompleted,
		RemainingBalance: result.RemainingBalance.InexactFloat64(),
	})
}

// DeleteOrders godoc
//
//	@Summary		Delete orders for a date and rebuild snapshots
//	@Description	Deletes the selected orders scoped to the given date, then rewrites each affected user's billing snapshot from the remaining orders.
//	@Tags			Billing
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DeleteOrdersRequestDTO	true	"Order ids and date"
//	@Success		200		{object}	dto.DeleteOrdersResponseDTO
//	@Failure		400		{object}	utils.Response	"No orders selected or missing date"
//	@Failure		404		{object}	utils.Response	"No orders matched"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/orders/delete [post]
func (h *BillingHandler) DeleteOrders(w http.ResponseWriter, r *http.Request) {
	var req dto.DeleteOrdersRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := validate.ParseDate(req.Date)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		date = parsed
	}

	deleted, err := h.billingService.DeleteOrders(r.Context(), req.OrderIDs, date)
	if err != nil {
		switch {
		case errors.Is(err, billingservice.ErrNoOrdersSelected),
			errors.Is(err, billingservice.ErrDateRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, billingservice.ErrNoOrdersFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DeleteOrdersResponseDTO{DeletedCount: deleted})
}

// GetStaffSummary godoc
//
//	@Summary		Per-staff billing rollup
//	@Tags			Billing
//	@Security		BearerAuth
//	@Produce		json
//	@Param			from	query		string	false	"Range start (YYYY-MM-DD)"
//	@Param			to		query		string	false	"Range end (YYYY-MM-DD)"
//	@Success		200		{array}		dto.StaffSummaryRowDTO
//	@Failure		400		{object}	utils.Response	"Malformed date"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/staff-summary [get]
func (h *BillingHandler) GetStaffSummary(w http.ResponseWriter, r *http.Request) {
	from, to, err := h.dateRange(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.ledgerService.GetStaffSummary(r.Context(), from, to)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.StaffSummaryRowDTO, len(rows))
	for i, row := range rows {
		response[i] = dto.StaffSummaryRowDTO{
			UserID:      row.User.ID,
			Name:        row.User.Name,
			Email:       row.User.Email,
			Phone:       row.User.Phone,
			TotalDays:   row.DistinctDays,
			TotalAmount: row.Total.InexactFloat64(),
			Completed:   row.Completed.InexactFloat64(),
			Pending:     row.Pending.InexactFloat64(),
			Balance:     row.Balance.InexactFloat64(),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
