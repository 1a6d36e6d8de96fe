package menuservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mealdesk/canteen/internal/domain"
	"go.uber.org/zap"
)

type TimeSlotRepo interface {
	FindAll(ctx context.Context) ([]domain.TimeSlot, error)
	Save(ctx context.Context, slot *domain.TimeSlot) error
	Update(ctx context.Context, slot *domain.TimeSlot) (int, error)
	Delete(ctx context.Context, id int) (int, error)
}

type CategoryRepo interface {
	FindAvailable(ctx context.Context) ([]domain.Category, error)
}

// Service evaluates ordering availability windows. All evaluation happens on
// the canteen's wall clock (config TIME_ZONE, Asia/Kolkata by default), never
// on the server's ambient local time.
type Service struct {
	timeSlotRepo TimeSlotRepo
	categoryRepo CategoryRepo
	location     *time.Location
}

var (
	ErrInvalidSlotRange = errors.New("slot end must not precede its start")
	ErrTimeSlotNotFound = errors.New("time slot not found")
)

func New(timeSlotRepo TimeSlotRepo, categoryRepo CategoryRepo, timeZone string) (*Service, error) {
	location, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", timeZone, err)
	}
	return &Service{
		timeSlotRepo: timeSlotRepo,
		categoryRepo: categoryRepo,
		location:     location,
	}, nil
}

const clockLayout = "15:04:05"

// LocalDate decomposes an instant into its calendar date on the canteen
// clock, as a midnight-UTC date value matching the DATE column encoding.
func (s *Service) LocalDate(now time.Time) time.Time {
	local := now.In(s.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// SlotOpen reports whether a single slot covers the given instant. All four
// bounds are inclusive: a slot ending at 17:00 still admits 17:00:00 sharp.
func (s *Service) SlotOpen(slot domain.TimeSlot, now time.Time) bool {
	if !slot.IsActive {
		return false
	}

	localDate := s.LocalDate(now)
	if localDate.Before(dateOnly(slot.StartDate)) || localDate.After(dateOnly(slot.EndDate)) {
		return false
	}

	clock := now.In(s.location).Format(clockLayout)
	return slot.StartTime <= clock && clock <= slot.EndTime
}

// SlotOpenOnDate ignores the time-of-day bounds; used for browsing menus on
// future dates.
func (s *Service) SlotOpenOnDate(slot domain.TimeSlot, date time.Time) bool {
	if !slot.IsActive {
		return false
	}
	d := dateOnly(date)
	return !d.Before(dateOnly(slot.StartDate)) && !d.After(dateOnly(slot.EndDate))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// OrderingAllowed reports whether at least one configured slot admits the
// given instant. Every slot is checked against all four bounds; with no
// slots configured ordering is never open.
func (s *Service) OrderingAllowed(ctx context.Context, now time.Time) (bool, error) {
	slots, err := s.timeSlotRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to load time slots", zap.Error(err))
		return false, err
	}

	allowed := false
	for _, slot := range slots {
		if s.SlotOpen(slot, now) {
			allowed = true
		}
	}
	return allowed, nil
}

func (s *Service) ListTimeSlots(ctx context.Context) ([]domain.TimeSlot, error) {
	slots, err := s.timeSlotRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to list time slots", zap.Error(err))
		return nil, err
	}
	return slots, nil
}

func (s *Service) CreateTimeSlot(ctx context.Context, slot *domain.TimeSlot) error {
	if dateOnly(slot.EndDate).Before(dateOnly(slot.StartDate)) || slot.EndTime < slot.StartTime {
		return ErrInvalidSlotRange
	}
	if err := s.timeSlotRepo.Save(ctx, slot); err != nil {
		zap.L().Error("failed to create time slot", zap.Error(err))
		return err
	}
	return nil
}

// UpdateTimeSlot overwrites every field of an existing slot.
func (s *Service) UpdateTimeSlot(ctx context.Context, slot *domain.TimeSlot) error {
	if dateOnly(slot.EndDate).Before(dateOnly(slot.StartDate)) || slot.EndTime < slot.StartTime {
		return ErrInvalidSlotRange
	}
	updated, err := s.timeSlotRepo.Update(ctx, slot)
	if err != nil {
		zap.L().Error("failed to update time slot", zap.Error(err))
		return err
	}
	if updated == 0 {
		return ErrTimeSlotNotFound
	}
	return nil
}

func (s *Service) DeleteTimeSlot(ctx context.Context, id int) error {
	deleted, err := s.timeSlotRepo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("failed to delete time slot", zap.Error(err))
		return err
	}
	if deleted == 0 {
		return ErrTimeSlotNotFound
	}
	return nil
}

func (s *Service) GetCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindAvailable(ctx)
	if err != nil {
		zap.L().Error("failed to get categories", zap.Error(err))
		return nil, err
	}
	return categories, nil
}
