package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board-service/internal/domain"
)

// ApplicationFilter captures applicant-scoped search parameters.
type ApplicationFilter struct {
	ApplicantID string
	Status      *domain.ApplicationStatus
	Limit       int
	Offset      int
}

// ApplicationRepository encapsulates application persistence.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	Update(ctx context.Context, app *domain.Application) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	GetByApplicantAndJob(ctx context.Context, applicantID, jobID string) (*domain.Application, error)
	ListByJob(ctx context.Context, jobID string, limit, offset int) ([]domain.Application, error)
	Search(ctx context.Context, filter ApplicationFilter) ([]domain.Application, error)
	CountByJob(ctx context.Context, jobID string) (int, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository instantiates repository.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	const query = `
        INSERT INTO applications (applicant_id, job_id, resume_link, cover_letter, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, applied_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		app.ApplicantID,
		app.JobID,
		app.ResumeLink,
		app.CoverLetter,
		app.Status,
	).Scan(&app.ID, &app.AppliedAt, &app.UpdatedAt)
}

func (r *applicationRepository) Update(ctx context.Context, app *domain.Application) error {
	const query = `
        UPDATE applications SET resume_link=$1, cover_letter=$2, status=$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		app.ResumeLink,
		app.CoverLetter,
		app.Status,
		app.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	const query = `
        SELECT id, applicant_id, job_id, resume_link, cover_letter, status, applied_at, updated_at
        FROM applications WHERE id=$1`

	var app domain.Application
	if err := scanApplication(r.pool.QueryRow(ctx, query, id), &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// GetByApplicantAndJob returns (nil, nil) when no application exists for the
// pair, so callers can distinguish "absent" from an actual failure.
func (r *applicationRepository) GetByApplicantAndJob(ctx context.Context, applicantID, jobID string) (*domain.Application, error) {
	const query = `
        SELECT id, applicant_id, job_id, resume_link, cover_letter, status, applied_at, updated_at
        FROM applications WHERE applicant_id=$1 AND job_id=$2`

	var app domain.Application
	if err := scanApplication(r.pool.QueryRow(ctx, query, applicantID, jobID), &app); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID string, limit, offset int) ([]domain.Application, error) {
	const query = `
        SELECT id, applicant_id, job_id, resume_link, cover_letter, status, applied_at, updated_at
        FROM applications WHERE job_id=$1 ORDER BY applied_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, jobID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *applicationRepository) Search(ctx context.Context, filter ApplicationFilter) ([]domain.Application, error) {
	base := `SELECT id, applicant_id, job_id, resume_link, cover_letter, status, applied_at, updated_at
             FROM applications`
	clauses := []string{"applicant_id=$1"}
	args := []any{filter.ApplicantID}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY applied_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *applicationRepository) CountByJob(ctx context.Context, jobID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE job_id=$1`, jobID).Scan(&count)
	return count, err
}

func scanApplication(row pgx.Row, app *domain.Application) error {
	return row.Scan(
		&app.ID,
		&app.ApplicantID,
		&app.JobID,
		&app.ResumeLink,
		&app.CoverLetter,
		&app.Status,
		&app.AppliedAt,
		&app.UpdatedAt,
	)
}

func collectApplications(rows pgx.Rows) ([]domain.Application, error) {
	var result []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := scanApplication(rows, &app); err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}
