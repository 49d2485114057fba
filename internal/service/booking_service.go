package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/talentdesk/interview-scheduler/internal/model"
)

// BookingCommitter performs the atomic read-then-write that converts a
// shortlisted application into a scheduled interview. Implementations
// must guarantee that two racers for the same company and start time
// yield exactly one interview row.
type BookingCommitter interface {
	Book(ctx context.Context, applicationID, companyID int64, startAt time.Time) (*model.Interview, error)
}

// BookingService re-validates and commits a candidate's chosen slot.
// Nothing from the listing step is trusted; time has passed and other
// candidates may have acted.
type BookingService struct {
	store  BookingCommitter
	logger *zap.Logger
	now    func() time.Time
}

func NewBookingService(store BookingCommitter, logger *zap.Logger) *BookingService {
	return &BookingService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Book schedules applicationID at startAt for companyID.
//
// Recoverable outcomes: model.ErrSlotTaken when another booking won the
// race (the caller should re-list), model.ErrNotEligible when the
// application is not Shortlisted or the slot belongs to a different
// company, model.ErrNotFound for an unknown application, and a
// ValidationError for a slot that has already started.
func (s *BookingService) Book(ctx context.Context, applicationID, companyID int64, startAt time.Time) (*model.Interview, error) {
	if !startAt.After(s.now()) {
		return nil, model.NewValidationError("slot", "start time must be in the future")
	}

	interview, err := s.store.Book(ctx, applicationID, companyID, startAt)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrSlotTaken):
			s.logger.Info("Booking lost slot race",
				zap.Int64("application_id", applicationID),
				zap.Int64("company_id", companyID),
				zap.Time("slot", startAt),
			)
		case errors.Is(err, model.ErrNotEligible), errors.Is(err, model.ErrNotFound):
			s.logger.Warn("Booking rejected",
				zap.Int64("application_id", applicationID),
				zap.Error(err),
			)
		default:
			s.logger.Error("Booking failed",
				zap.Int64("application_id", applicationID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	s.logger.Info("Interview booked",
		zap.Int64("interview_id", interview.ID),
		zap.Int64("application_id", applicationID),
		zap.Int64("company_id", companyID),
		zap.Time("scheduled_at", interview.ScheduledAt),
		zap.String("reference", interview.Reference.String()),
	)

	return interview, nil
}
