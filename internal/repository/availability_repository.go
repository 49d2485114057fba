package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentdesk/interview-scheduler/internal/model"
)

// AvailabilityRepository manages a company's recurring interview windows.
type AvailabilityRepository struct {
	pool *pgxpool.Pool
}

func NewAvailabilityRepository(pool *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{pool: pool}
}

// Windows sort Monday..Sunday then by start time, mirroring the
// administration screens.
const windowOrderClause = `
	ORDER BY array_position(
		ARRAY['Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday']::text[],
		day_of_week
	), start_time`

// Create inserts a new availability window.
func (r *AvailabilityRepository) Create(ctx context.Context, w *model.AvailabilityWindow) error {
	query := `
		INSERT INTO availability_windows (company_id, day_of_week, start_time, end_time, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		w.CompanyID,
		w.DayOfWeek,
		timeOfDayParam(w.StartTime),
		timeOfDayParam(w.EndTime),
		w.Active,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create availability window: %w", err)
	}

	return nil
}

// Update edits a window in place, scoped to the owning company.
func (r *AvailabilityRepository) Update(ctx context.Context, w *model.AvailabilityWindow) error {
	query := `
		UPDATE availability_windows
		SET day_of_week = $3, start_time = $4, end_time = $5, active = $6, updated_at = now()
		WHERE id = $1 AND company_id = $2
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		w.ID,
		w.CompanyID,
		w.DayOfWeek,
		timeOfDayParam(w.StartTime),
		timeOfDayParam(w.EndTime),
		w.Active,
	).Scan(&w.CreatedAt, &w.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update availability window: %w", err)
	}

	return nil
}

// Delete removes a window, scoped to the owning company. Reports
// model.ErrNotFound when no row matched so callers can surface a no-op
// signal instead of a failure.
func (r *AvailabilityRepository) Delete(ctx context.Context, id, companyID int64) error {
	query := `DELETE FROM availability_windows WHERE id = $1 AND company_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("delete availability window: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

// ListByCompany returns all windows of a company in schedule order.
func (r *AvailabilityRepository) ListByCompany(ctx context.Context, companyID int64) ([]model.AvailabilityWindow, error) {
	query := `
		SELECT id, company_id, day_of_week, start_time, end_time, active, created_at, updated_at
		FROM availability_windows
		WHERE company_id = $1` + windowOrderClause

	return r.queryWindows(ctx, query, companyID)
}

// ListActiveByCompany returns only the windows the slot generator reads.
func (r *AvailabilityRepository) ListActiveByCompany(ctx context.Context, companyID int64) ([]model.AvailabilityWindow, error) {
	query := `
		SELECT id, company_id, day_of_week, start_time, end_time, active, created_at, updated_at
		FROM availability_windows
		WHERE company_id = $1 AND active = true` + windowOrderClause

	return r.queryWindows(ctx, query, companyID)
}

func (r *AvailabilityRepository) queryWindows(ctx context.Context, query string, args ...any) ([]model.AvailabilityWindow, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list availability windows: %w", err)
	}
	defer rows.Close()

	var windows []model.AvailabilityWindow
	for rows.Next() {
		var (
			w          model.AvailabilityWindow
			start, end pgtype.Time
		)
		err := rows.Scan(
			&w.ID,
			&w.CompanyID,
			&w.DayOfWeek,
			&start,
			&end,
			&w.Active,
			&w.CreatedAt,
			&w.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan availability window: %w", err)
		}
		w.StartTime = timeOfDayFromPg(start)
		w.EndTime = timeOfDayFromPg(end)
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list availability windows: %w", err)
	}

	return windows, nil
}

func timeOfDayParam(t model.TimeOfDay) pgtype.Time {
	return pgtype.Time{
		Microseconds: int64(t.Minutes()) * 60 * 1_000_000,
		Valid:        true,
	}
}

func timeOfDayFromPg(t pgtype.Time) model.TimeOfDay {
	minutes := int(t.Microseconds / (60 * 1_000_000))
	return model.TimeOfDay{Hour: minutes / 60, Minute: minutes % 60}
}
