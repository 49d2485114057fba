package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentdesk/interview-scheduler/internal/model"
)

// pgUniqueViolation is the SQLSTATE raised when the interviews unique
// index rejects a second booking for the same company and start time.
const pgUniqueViolation = "23505"

// BookingStore commits bookings. The eligibility check, the interview
// insert and the application status transition run in one transaction:
// either all of it becomes visible or none of it does.
type BookingStore struct {
	pool *pgxpool.Pool
}

func NewBookingStore(pool *pgxpool.Pool) *BookingStore {
	return &BookingStore{pool: pool}
}

// Book atomically converts a shortlisted application into a scheduled
// interview at startAt.
//
// Returns model.ErrNotFound when the application does not exist,
// model.ErrNotEligible when it is not Shortlisted or belongs to another
// company, and model.ErrSlotTaken when a concurrent booking won the
// start time. The application row is locked for the duration of the
// transaction, so its status cannot change underneath the check.
func (s *BookingStore) Book(ctx context.Context, applicationID, companyID int64, startAt time.Time) (*model.Interview, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	appQuery := `
		SELECT a.id, a.candidate_id, a.offer_id, a.status, a.applied_at, o.company_id
		FROM job_applications a
		JOIN job_offers o ON o.id = a.offer_id
		WHERE a.id = $1
		FOR UPDATE OF a
	`

	var app model.Application
	err = tx.QueryRow(ctx, appQuery, applicationID).Scan(
		&app.ID,
		&app.CandidateID,
		&app.OfferID,
		&app.Status,
		&app.AppliedAt,
		&app.CompanyID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load application: %w", err)
	}

	if app.Status != model.ApplicationStatusShortlisted {
		return nil, model.ErrNotEligible
	}
	if app.CompanyID != companyID {
		return nil, model.ErrNotEligible
	}

	interview := &model.Interview{
		ApplicationID: applicationID,
		CompanyID:     companyID,
		ScheduledAt:   startAt,
		Status:        model.InterviewStatusScheduled,
		Reference:     uuid.New(),
	}

	insertQuery := `
		INSERT INTO interviews (application_id, company_id, scheduled_at, status, reference)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err = tx.QueryRow(
		ctx, insertQuery,
		interview.ApplicationID,
		interview.CompanyID,
		interview.ScheduledAt,
		interview.Status,
		interview.Reference,
	).Scan(&interview.ID, &interview.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, model.ErrSlotTaken
		}
		return nil, fmt.Errorf("insert interview: %w", err)
	}

	updateQuery := `UPDATE job_applications SET status = $2 WHERE id = $1`
	if _, err := tx.Exec(ctx, updateQuery, applicationID, model.ApplicationStatusInterviewScheduled); err != nil {
		return nil, fmt.Errorf("update application status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return interview, nil
}
