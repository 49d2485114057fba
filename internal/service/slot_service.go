package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/talentdesk/interview-scheduler/internal/model"
)

// WindowSource supplies the active windows the generator projects.
type WindowSource interface {
	ListActiveByCompany(ctx context.Context, companyID int64) ([]model.AvailabilityWindow, error)
}

// BookedSource supplies the start times already taken by interviews.
type BookedSource interface {
	ListBookedTimes(ctx context.Context, companyID int64, from time.Time) ([]time.Time, error)
}

// SlotService derives the candidate-facing slot listing. Slots are
// re-derived on every call; the booking step re-validates, so a few
// seconds of staleness here is acceptable.
type SlotService struct {
	windows     WindowSource
	booked      BookedSource
	tokens      *SlotTokenIssuer
	horizonDays int
	logger      *zap.Logger
}

func NewSlotService(
	windows WindowSource,
	booked BookedSource,
	tokens *SlotTokenIssuer,
	horizonDays int,
	logger *zap.Logger,
) *SlotService {
	return &SlotService{
		windows:     windows,
		booked:      booked,
		tokens:      tokens,
		horizonDays: horizonDays,
		logger:      logger,
	}
}

// HorizonDays reports how far ahead listings project.
func (s *SlotService) HorizonDays() int {
	return s.horizonDays
}

// ListOpenSlots returns the bookable slots for a company, grouped by
// day, each carrying a signed token for the booking step. A company
// with no active windows yields an empty listing, not an error.
func (s *SlotService) ListOpenSlots(ctx context.Context, companyID int64, now time.Time) ([]model.DaySlots, error) {
	windows, err := s.windows.ListActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("load availability windows: %w", err)
	}

	// Past bookings can never collide with future slots, so the lookup
	// starts at midnight today.
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	booked, err := s.booked.ListBookedTimes(ctx, companyID, today)
	if err != nil {
		return nil, fmt.Errorf("load booked times: %w", err)
	}

	days := GenerateSlots(windows, booked, now, s.horizonDays)

	total := 0
	for di := range days {
		for si := range days[di].Slots {
			token, err := s.tokens.Issue(companyID, days[di].Slots[si].StartAt)
			if err != nil {
				return nil, fmt.Errorf("issue slot token: %w", err)
			}
			days[di].Slots[si].Token = token
		}
		total += len(days[di].Slots)
	}

	s.logger.Debug("Generated slot listing",
		zap.Int64("company_id", companyID),
		zap.Int("days", len(days)),
		zap.Int("slots", total),
	)

	return days, nil
}
