package menu

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mealdesk/canteen/internal/domain"
	"github.com/mealdesk/canteen/internal/dto"
	menuservice "github.com/mealdesk/canteen/internal/service/menuservice"
	"github.com/mealdesk/canteen/pkg/utils"
	"github.com/mealdesk/canteen/pkg/validate"
)

type Service interface {
	OrderingAllowed(ctx context.Context, now time.Time) (bool, error)
	ListTimeSlots(ctx context.Context) ([]domain.TimeSlot, error)
	CreateTimeSlot(ctx context.Context, slot *domain.TimeSlot) error
	UpdateTimeSlot(ctx context.Context, slot *domain.TimeSlot) error
	DeleteTimeSlot(ctx context.Context, id int) error
	GetCategories(ctx context.Context) ([]domain.Category, error)
}

type MenuHandler struct {
	menuService Service
}

func New(menuService Service) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
	}
}

// OrderingAllowed godoc
//
//	@Summary		Whether ordering is currently open
//	@Description	True when at least one active time slot covers the current canteen-clock date and time.
//	@Tags			Menu
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.OrderingAllowedResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/menu/ordering-allowed [get]
func (h *MenuHandler) OrderingAllowed(w http.ResponseWriter, r *http.Request) {
	allowed, err := h.menuService.OrderingAllowed(r.Context(), time.Now())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OrderingAllowedResponseDTO{Allowed: allowed})
}

// ListTimeSlots godoc
//
//	@Summary		List availability time slots
//	@Tags			Menu
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TimeSlotResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/menu/timeslots [get]
func (h *MenuHandler) ListTimeSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.menuService.ListTimeSlots(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TimeSlotResponseDTO, len(slots))
	for i, slot := range slots {
		response[i] = dto.TimeSlotResponseDTO{
			ID:        slot.ID,
			Name:      slot.Name,
			StartDate: slot.StartDate.Format(validate.DateLayout),
			EndDate:   slot.EndDate.Format(validate.DateLayout),
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			IsActive:  slot.IsActive,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateTimeSlot godoc
//
//	@Summary		Create an availability time slot
//	@Tags			Menu
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TimeSlotRequestDTO	true	"Slot definition"
//	@Success		201		{object}	dto.TimeSlotResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed dates or inverted range"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/menu/timeslots [post]
func (h *MenuHandler) CreateTimeSlot(w http.ResponseWriter, r *http.Request) {
	slot, err := parseSlotRequest(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.menuService.CreateTimeSlot(r.Context(), slot); err != nil {
		if errors.Is(err, menuservice.ErrInvalidSlotRange) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.TimeSlotResponseDTO{
		ID:        slot.ID,
		Name:      slot.Name,
		StartDate: slot.StartDate.Format(validate.DateLayout),
		EndDate:   slot.EndDate.Format(validate.DateLayout),
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		IsActive:  slot.IsActive,
	})
}

// parseSlotRequest decodes the slot payload shared by create and update.
func parseSlotRequest(r *http.Request) (*domain.TimeSlot, error) {
	var req dto.TimeSlotRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.New("invalid request body")
	}

	startDate, err := validate.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := validate.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	startTime, err := validate.ParseClock(req.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := validate.ParseClock(req.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.TimeSlot{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: startTime,
		EndTime:   endTime,
		IsActive:  req.IsActive,
	}, nil
}

// UpdateTimeSlot godoc
//
//	@Summary		Overwrite an availability time slot
//	@Tags			Menu
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Slot id"
//	@Param			request	body		dto.TimeSlotRequestDTO	true	"Slot definition"
//	@Success		200		{object}	dto.TimeSlotResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed dates or inverted range"
//	@Failure		404		{object}	utils.Response	"Time slot not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/menu/timeslots/{id} [put]
func (h *MenuHandler) UpdateTimeSlot(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid time slot id")
		return
	}

	slot, err := parseSlotRequest(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	slot.ID = id

	if err := h.menuService.UpdateTimeSlot(r.Context(), slot); err != nil {
		switch {
		case errors.Is(err, menuservice.ErrInvalidSlotRange):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, menuservice.ErrTimeSlotNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TimeSlotResponseDTO{
		ID:        slot.ID,
		Name:      slot.Name,
		StartDate: slot.StartDate.Format(validate.DateLayout),
		EndDate:   slot.EndDate.Format(validate.DateLayout),
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		IsActive:  slot.IsActive,
	})
}

// DeleteTimeSlot godoc
//
//	@Summary		Delete an availability time slot
//	@Tags			Menu
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Slot id"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid slot id"
//	@Failure		404	{object}	utils.Response	"Time slot not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/menu/timeslots/{id} [delete]
func (h *MenuHandler) DeleteTimeSlot(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid time slot id")
		return
	}

	if err := h.menuService.DeleteTimeSlot(r.Context(), id); err != nil {
		if errors.Is(err, menuservice.ErrTimeSlotNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Time slot deleted"})
}

// GetCategories godoc
//
//	@Summary		List orderable categories
//	@Tags			Menu
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CategoryResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/menu/categories [get]
func (h *MenuHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.menuService.GetCategories(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CategoryResponseDTO, len(categories))
	for i, category := range categories {
		response[i] = dto.CategoryResponseDTO{
			ID:    category.ID,
			Name:  category.Name,
			Price: category.Price.InexactFloat64(),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
