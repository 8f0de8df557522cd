package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board-service/internal/auth"
	"github.com/spec-kit/job-board-service/internal/domain"
	"github.com/spec-kit/job-board-service/internal/events"
	"github.com/spec-kit/job-board-service/internal/repository"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// JobService coordinates the job posting workflow.
type JobService struct {
	jobs       repository.JobRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// JobDependencies bundles collaborators for the job service.
type JobDependencies struct {
	JobRepo    repository.JobRepository
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// JobCreateInput describes job creation payload.
type JobCreateInput struct {
	Title       string
	Description string
	Location    *string
}

// JobUpdateInput describes a partial update; nil fields are left untouched.
type JobUpdateInput struct {
	Title       *string
	Description *string
	Location    *string
	Status      *domain.JobStatus
}

// JobSearchFilter describes public search parameters.
type JobSearchFilter struct {
	Title       *string
	Location    *string
	CompanyName *string
	Status      *domain.JobStatus
	Page        Page
}

// NewJobService constructs the service.
func NewJobService(deps JobDependencies) *JobService {
	return &JobService{
		jobs:       deps.JobRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create creates a job in Draft status for a company account.
func (s *JobService) Create(ctx context.Context, input JobCreateInput, creatorID string) (*domain.Job, error) {
	creator, err := s.users.GetByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(fmt.Sprintf("User with ID %s not found", creatorID))
		}
		return nil, err
	}

	caller := auth.Caller{ID: creatorID, Role: creator.Role}
	if !auth.CanPerform(caller, auth.ActionCreateJob, nil) {
		return nil, apperrors.NewAuthorizationError("Only companies can create jobs")
	}

	job, err := domain.NewJob(input.Title, input.Description, input.Location, creatorID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventJobCreated,
		EntityID: job.ID,
		ActorID:  creatorID,
		Payload: events.JobCreatedPayload{
			Title:    job.Title,
			Status:   job.Status,
			Location: job.Location,
		},
	})
	return job, nil
}

// Update applies a partial update, validating any status change against the
// forward-only transition table.
func (s *JobService) Update(ctx context.Context, jobID string, patch JobUpdateInput, callerID string) (*domain.Job, error) {
	job, err := s.getJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if job.CreatedBy != callerID {
		return nil, apperrors.NewAuthorizationError("Unauthorized access")
	}

	user, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewAuthorizationError("Only companies can update jobs")
		}
		return nil, err
	}
	caller := auth.Caller{ID: callerID, Role: user.Role}
	if !auth.CanPerform(caller, auth.ActionUpdateJob, job) {
		return nil, apperrors.NewAuthorizationError("Only companies can update jobs")
	}

	if patch.Title != nil {
		if err := job.SetTitle(*patch.Title); err != nil {
			return nil, apperrors.NewValidationError(err.Error(), nil)
		}
	}
	if patch.Description != nil {
		if err := job.SetDescription(*patch.Description); err != nil {
			return nil, apperrors.NewValidationError(err.Error(), nil)
		}
	}
	if patch.Location != nil {
		job.SetLocation(patch.Location)
	}

	oldStatus := job.Status
	if patch.Status != nil {
		if err := job.UpdateStatus(*patch.Status); err != nil {
			return nil, apperrors.NewValidationError(err.Error(), nil)
		}
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	if patch.Status != nil && oldStatus != job.Status {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventJobStatusChanged,
			EntityID: job.ID,
			ActorID:  callerID,
			Payload: events.JobStatusChangedPayload{
				OldStatus: oldStatus,
				NewStatus: job.Status,
			},
		})
	}
	return job, nil
}

// Delete removes a job owned by the caller. Cascade to applications happens
// in the persistence layer.
func (s *JobService) Delete(ctx context.Context, jobID, callerID string) error {
	job, err := s.getJob(ctx, jobID)
	if err != nil {
		return err
	}
	if !auth.CanPerform(auth.Caller{ID: callerID}, auth.ActionDeleteJob, job) {
		return apperrors.NewAuthorizationError("Unauthorized access")
	}
	return s.jobs.Delete(ctx, jobID)
}

// Search returns jobs matching the conjunction of the present filters. Zero
// matches yield an empty list, never an error.
func (s *JobService) Search(ctx context.Context, filter JobSearchFilter) ([]domain.Job, error) {
	limit, offset := filter.Page.Normalize()
	jobs, err := s.jobs.Search(ctx, repository.JobFilter{
		Title:       filter.Title,
		Location:    filter.Location,
		CompanyName: filter.CompanyName,
		Status:      filter.Status,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}

// GetByCreator returns a page of jobs owned by the creator.
func (s *JobService) GetByCreator(ctx context.Context, creatorID string, page Page) ([]domain.Job, error) {
	limit, offset := page.Normalize()
	jobs, err := s.jobs.ListByCreator(ctx, creatorID, limit, offset)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}

// GetByID fetches a single job.
func (s *JobService) GetByID(ctx context.Context, jobID string) (*domain.Job, error) {
	return s.getJob(ctx, jobID)
}

// CountByCreator counts jobs owned by the creator.
func (s *JobService) CountByCreator(ctx context.Context, creatorID string) (int, error) {
	return s.jobs.CountByCreator(ctx, creatorID)
}

func (s *JobService) getJob(ctx context.Context, jobID string) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(fmt.Sprintf("Job with ID %s not found", jobID))
		}
		return nil, err
	}
	return job, nil
}

func (s *JobService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
