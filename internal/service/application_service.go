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

// ApplicationService coordinates the application workflow.
type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	users        repository.UserRepository
	dispatcher   events.Dispatcher
}

// ApplicationDependencies bundles collaborators for the application service.
type ApplicationDependencies struct {
	ApplicationRepo repository.ApplicationRepository
	JobRepo         repository.JobRepository
	UserRepo        repository.UserRepository
	Dispatcher      events.Dispatcher
}

// ApplicationCreateInput describes application submission payload.
type ApplicationCreateInput struct {
	JobID       string
	ResumeLink  string
	CoverLetter *string
}

// ApplicationSearchFilter describes applicant-scoped search parameters. Only
// the first status of the list is applied, matching the public API contract.
type ApplicationSearchFilter struct {
	Statuses []domain.ApplicationStatus
	Page     Page
}

// NewApplicationService constructs the service.
func NewApplicationService(deps ApplicationDependencies) *ApplicationService {
	return &ApplicationService{
		applications: deps.ApplicationRepo,
		jobs:         deps.JobRepo,
		users:        deps.UserRepo,
		dispatcher:   deps.Dispatcher,
	}
}

// Create submits an application for an open job. The duplicate pre-check is a
// fast path; the unique index on (applicant_id, job_id) is the authoritative
// guard against a concurrent double-submit.
func (s *ApplicationService) Create(ctx context.Context, input ApplicationCreateInput, applicantID string) (*domain.Application, error) {
	applicant, err := s.users.GetByID(ctx, applicantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(fmt.Sprintf("User with ID %s not found", applicantID))
		}
		return nil, err
	}

	caller := auth.Caller{ID: applicantID, Role: applicant.Role}
	if !auth.CanPerform(caller, auth.ActionApply, nil) {
		return nil, apperrors.NewAuthorizationError("Only applicants can apply for jobs")
	}

	job, err := s.jobs.GetByID(ctx, input.JobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(fmt.Sprintf("Job with ID %s not found", input.JobID))
		}
		return nil, err
	}
	if !job.IsOpen() {
		return nil, apperrors.NewValidationError("Cannot apply to a job that is not open", nil)
	}

	existing, err := s.applications.GetByApplicantAndJob(ctx, applicantID, input.JobID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflict("You have already applied to this job")
	}

	app, err := domain.NewApplication(applicantID, input.JobID, input.ResumeLink, input.CoverLetter)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}

	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventApplicationSubmitted,
		EntityID: app.ID,
		ActorID:  applicantID,
		Payload: events.ApplicationSubmittedPayload{
			JobID:       app.JobID,
			ApplicantID: app.ApplicantID,
		},
	})
	return app, nil
}

// UpdateStatus sets the adjudication status. Only the owner of the referenced
// job may adjudicate; applications carry no transition table, so any valid
// status value is accepted.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID string, newStatus domain.ApplicationStatus, callerID string) (*domain.Application, error) {
	app, err := s.getApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(fmt.Sprintf("Job with ID %s not found", app.JobID))
		}
		return nil, err
	}

	if !auth.CanPerform(auth.Caller{ID: callerID}, auth.ActionAdjudicate, job) {
		return nil, apperrors.NewAuthorizationError("Unauthorized access")
	}

	if !newStatus.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Invalid application status %s", newStatus), nil)
	}

	oldStatus := app.Status
	app.UpdateStatus(newStatus)
	if err := s.applications.Update(ctx, app); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventApplicationStatusChanged,
		EntityID: app.ID,
		ActorID:  callerID,
		Payload: events.ApplicationStatusChangedPayload{
			JobID:       app.JobID,
			ApplicantID: app.ApplicantID,
			OldStatus:   oldStatus,
			NewStatus:   newStatus,
		},
	})
	return app, nil
}

// GetByJob returns a page of applications for a job owned by the caller.
func (s *ApplicationService) GetByJob(ctx context.Context, jobID, callerID string, page Page) ([]domain.Application, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(fmt.Sprintf("Job with ID %s not found", jobID))
		}
		return nil, err
	}
	if !auth.CanPerform(auth.Caller{ID: callerID}, auth.ActionViewApplications, job) {
		return nil, apperrors.NewAuthorizationError("Unauthorized access")
	}

	limit, offset := page.Normalize()
	apps, err := s.applications.ListByJob(ctx, jobID, limit, offset)
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	return apps, nil
}

// Search returns the caller's own applications, optionally filtered by the
// first status of the provided list.
func (s *ApplicationService) Search(ctx context.Context, filter ApplicationSearchFilter, callerID string) ([]domain.Application, error) {
	user, err := s.users.GetByID(ctx, callerID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if user == nil || !auth.CanPerform(auth.Caller{ID: callerID, Role: user.Role}, auth.ActionSearchApplications, nil) {
		return nil, apperrors.NewAuthorizationError("Only applicants can search their applications")
	}

	var status *domain.ApplicationStatus
	if len(filter.Statuses) > 0 {
		status = &filter.Statuses[0]
	}

	limit, offset := filter.Page.Normalize()
	apps, err := s.applications.Search(ctx, repository.ApplicationFilter{
		ApplicantID: callerID,
		Status:      status,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	return apps, nil
}

// GetByID fetches a single application.
func (s *ApplicationService) GetByID(ctx context.Context, applicationID string) (*domain.Application, error) {
	return s.getApplication(ctx, applicationID)
}

// CountByJob counts applications for a job. Internal use; no authorization.
func (s *ApplicationService) CountByJob(ctx context.Context, jobID string) (int, error) {
	return s.applications.CountByJob(ctx, jobID)
}

func (s *ApplicationService) getApplication(ctx context.Context, applicationID string) (*domain.Application, error) {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(fmt.Sprintf("Application with ID %s not found", applicationID))
		}
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) publishEvent(ctx context.Context, event events.Event) {
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
