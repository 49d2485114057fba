package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/talentdesk/interview-scheduler/internal/model"
)

// WindowRepository persists a company's recurring windows.
type WindowRepository interface {
	Create(ctx context.Context, w *model.AvailabilityWindow) error
	Update(ctx context.Context, w *model.AvailabilityWindow) error
	Delete(ctx context.Context, id, companyID int64) error
	ListByCompany(ctx context.Context, companyID int64) ([]model.AvailabilityWindow, error)
}

// WindowInput is the administration payload for adding or editing a
// window. Times are wall-clock "HH:MM" values without a date component.
type WindowInput struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    *bool  `json:"active,omitempty"`
}

// ScheduleService is the staff-facing administration of availability
// windows. Deleting or editing a window never touches interviews that
// were already booked out of it.
type ScheduleService struct {
	windows WindowRepository
	logger  *zap.Logger
}

func NewScheduleService(windows WindowRepository, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{windows: windows, logger: logger}
}

// AddWindow validates and inserts a new recurring window.
func (s *ScheduleService) AddWindow(ctx context.Context, companyID int64, in WindowInput) (*model.AvailabilityWindow, error) {
	w, err := buildWindow(companyID, in)
	if err != nil {
		return nil, err
	}

	if err := s.windows.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("add window: %w", err)
	}

	s.logger.Info("Availability window added",
		zap.Int64("company_id", companyID),
		zap.Int64("window_id", w.ID),
		zap.String("day", w.DayOfWeek),
		zap.Stringer("start", w.StartTime),
		zap.Stringer("end", w.EndTime),
	)

	return w, nil
}

// EditWindow validates and updates a window in place. Returns
// model.ErrNotFound when the id does not belong to the company.
func (s *ScheduleService) EditWindow(ctx context.Context, windowID, companyID int64, in WindowInput) (*model.AvailabilityWindow, error) {
	w, err := buildWindow(companyID, in)
	if err != nil {
		return nil, err
	}
	w.ID = windowID

	if err := s.windows.Update(ctx, w); err != nil {
		return nil, err
	}

	s.logger.Info("Availability window updated",
		zap.Int64("company_id", companyID),
		zap.Int64("window_id", windowID),
	)

	return w, nil
}

// DeleteWindow removes a window. A missing row reports model.ErrNotFound
// so the caller can surface a no-op warning rather than a failure.
func (s *ScheduleService) DeleteWindow(ctx context.Context, windowID, companyID int64) error {
	if err := s.windows.Delete(ctx, windowID, companyID); err != nil {
		return err
	}

	s.logger.Info("Availability window deleted",
		zap.Int64("company_id", companyID),
		zap.Int64("window_id", windowID),
	)

	return nil
}

// ListWindows returns the company's windows ordered Monday..Sunday then
// by start time.
func (s *ScheduleService) ListWindows(ctx context.Context, companyID int64) ([]model.AvailabilityWindow, error) {
	return s.windows.ListByCompany(ctx, companyID)
}

func buildWindow(companyID int64, in WindowInput) (*model.AvailabilityWindow, error) {
	if in.DayOfWeek == "" {
		return nil, model.NewValidationError("day_of_week", "required")
	}
	if _, ok := model.DayIndex(in.DayOfWeek); !ok {
		return nil, model.NewValidationError("day_of_week", "must be a weekday name, Monday..Sunday")
	}
	if in.StartTime == "" {
		return nil, model.NewValidationError("start_time", "required")
	}
	if in.EndTime == "" {
		return nil, model.NewValidationError("end_time", "required")
	}

	start, err := model.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return nil, model.NewValidationError("start_time", "must be HH:MM")
	}
	end, err := model.ParseTimeOfDay(in.EndTime)
	if err != nil {
		return nil, model.NewValidationError("end_time", "must be HH:MM")
	}
	if !start.Before(end) {
		return nil, model.NewValidationError("end_time", "must be after start_time")
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	return &model.AvailabilityWindow{
		CompanyID: companyID,
		DayOfWeek: in.DayOfWeek,
		StartTime: start,
		EndTime:   end,
		Active:    active,
	}, nil
}
