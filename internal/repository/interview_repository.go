package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentdesk/interview-scheduler/internal/model"
)

// InterviewRepository reads persisted interview bookings.
type InterviewRepository struct {
	pool *pgxpool.Pool
}

func NewInterviewRepository(pool *pgxpool.Pool) *InterviewRepository {
	return &InterviewRepository{pool: pool}
}

// ListBookedTimes returns the scheduled start times of a company's
// interviews from the given instant onward. Past bookings are excluded
// to bound the query; the generator never needs them.
func (r *InterviewRepository) ListBookedTimes(ctx context.Context, companyID int64, from time.Time) ([]time.Time, error) {
	query := `
		SELECT scheduled_at
		FROM interviews
		WHERE company_id = $1 AND scheduled_at >= $2
	`

	rows, err := r.pool.Query(ctx, query, companyID, from)
	if err != nil {
		return nil, fmt.Errorf("list booked times: %w", err)
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan booked time: %w", err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list booked times: %w", err)
	}

	return times, nil
}

// ListUpcomingByCompany returns a company's interviews from the given
// instant onward in chronological order, for the staff overview screen.
func (r *InterviewRepository) ListUpcomingByCompany(ctx context.Context, companyID int64, from time.Time) ([]model.Interview, error) {
	query := `
		SELECT id, application_id, company_id, scheduled_at, status, reference, created_at
		FROM interviews
		WHERE company_id = $1 AND scheduled_at >= $2
		ORDER BY scheduled_at
	`

	rows, err := r.pool.Query(ctx, query, companyID, from)
	if err != nil {
		return nil, fmt.Errorf("list upcoming interviews: %w", err)
	}
	defer rows.Close()

	var interviews []model.Interview
	for rows.Next() {
		var iv model.Interview
		err := rows.Scan(
			&iv.ID,
			&iv.ApplicationID,
			&iv.CompanyID,
			&iv.ScheduledAt,
			&iv.Status,
			&iv.Reference,
			&iv.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan interview: %w", err)
		}
		interviews = append(interviews, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list upcoming interviews: %w", err)
	}

	return interviews, nil
}
