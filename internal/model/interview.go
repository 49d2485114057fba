package model

import (
	"time"

	"github.com/google/uuid"
)

type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "Scheduled"
	InterviewStatusCompleted InterviewStatus = "Completed"
	InterviewStatusCanceled  InterviewStatus = "Canceled"
)

// Interview is the persisted record of a booked slot. Exactly one row
// exists per booked application; its scheduled_at is what excludes the
// slot from future listings.
type Interview struct {
	ID            int64           `json:"id"`
	ApplicationID int64           `json:"application_id"`
	CompanyID     int64           `json:"company_id"`
	ScheduledAt   time.Time       `json:"scheduled_at"`
	Status        InterviewStatus `json:"status"`
	Reference     uuid.UUID       `json:"reference"`
	CreatedAt     time.Time       `json:"created_at"`
}
