package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board-service/internal/domain"
)

// JobFilter captures search parameters. Substring filters are matched
// case-insensitively; all present filters are combined as a conjunction.
type JobFilter struct {
	Title       *string
	Location    *string
	CompanyName *string
	Status      *domain.JobStatus
	Limit       int
	Offset      int
}

// JobRepository encapsulates job persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	ListByCreator(ctx context.Context, creatorID string, limit, offset int) ([]domain.Job, error)
	Search(ctx context.Context, filter JobFilter) ([]domain.Job, error)
	CountByCreator(ctx context.Context, creatorID string) (int, error)
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository instantiates repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (title, description, location, status, created_by)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		job.Title,
		job.Description,
		job.Location,
		job.Status,
		job.CreatedBy,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	const query = `
        UPDATE jobs SET title=$1, description=$2, location=$3, status=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		job.Title,
		job.Description,
		job.Location,
		job.Status,
		job.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	const query = `
        SELECT id, title, description, location, status, created_by, created_at, updated_at
        FROM jobs WHERE id=$1`

	var job domain.Job
	if err := scanJob(r.pool.QueryRow(ctx, query, id), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) ListByCreator(ctx context.Context, creatorID string, limit, offset int) ([]domain.Job, error) {
	const query = `
        SELECT id, title, description, location, status, created_by, created_at, updated_at
        FROM jobs WHERE created_by=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, creatorID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *jobRepository) Search(ctx context.Context, filter JobFilter) ([]domain.Job, error) {
	base := `SELECT j.id, j.title, j.description, j.location, j.status, j.created_by, j.created_at, j.updated_at
             FROM jobs j JOIN users u ON j.created_by = u.id`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Title != nil && strings.TrimSpace(*filter.Title) != "" {
		args = append(args, "%"+strings.TrimSpace(*filter.Title)+"%")
		clauses = append(clauses, fmt.Sprintf("j.title ILIKE $%d", len(args)))
	}
	if filter.Location != nil && strings.TrimSpace(*filter.Location) != "" {
		args = append(args, "%"+strings.TrimSpace(*filter.Location)+"%")
		clauses = append(clauses, fmt.Sprintf("j.location ILIKE $%d", len(args)))
	}
	if filter.CompanyName != nil && strings.TrimSpace(*filter.CompanyName) != "" {
		args = append(args, "%"+strings.TrimSpace(*filter.CompanyName)+"%")
		clauses = append(clauses, fmt.Sprintf("u.full_name ILIKE $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("j.status=$%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY j.created_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *jobRepository) CountByCreator(ctx context.Context, creatorID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE created_by=$1`, creatorID).Scan(&count)
	return count, err
}

func scanJob(row pgx.Row, job *domain.Job) error {
	return row.Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.Location,
		&job.Status,
		&job.CreatedBy,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
}

func collectJobs(rows pgx.Rows) ([]domain.Job, error) {
	var result []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, err
		}
		result = append(result, job)
	}
	return result, rows.Err()
}
