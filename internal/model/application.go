package model

import "time"

type ApplicationStatus string

const (
	ApplicationStatusApplied            ApplicationStatus = "Applied"
	ApplicationStatusShortlisted        ApplicationStatus = "Shortlisted"
	ApplicationStatusInterviewScheduled ApplicationStatus = "InterviewScheduled"
	ApplicationStatusRejected           ApplicationStatus = "Rejected"
	ApplicationStatusHired              ApplicationStatus = "Hired"
)

// Application is a candidate's application to a job offer. Only
// Shortlisted applications may enter the booking flow.
type Application struct {
	ID          int64             `json:"id"`
	CandidateID int64             `json:"candidate_id"`
	OfferID     int64             `json:"offer_id"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"applied_at"`

	// CompanyID is resolved through the offer join, not stored on the row.
	CompanyID int64 `json:"company_id,omitempty"`
}
