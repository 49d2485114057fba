package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentdesk/interview-scheduler/internal/model"
)

// CompanyRepository resolves companies for the scheduling endpoints.
type CompanyRepository struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

// GetByID returns a company or model.ErrNotFound.
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*model.Company, error) {
	query := `SELECT id, name, created_at FROM companies WHERE id = $1`

	var company model.Company
	err := r.pool.QueryRow(ctx, query, id).Scan(&company.ID, &company.Name, &company.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get company by id: %w", err)
	}

	return &company, nil
}
