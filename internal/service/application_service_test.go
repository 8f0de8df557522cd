package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-board-service/internal/domain"
	"github.com/spec-kit/job-board-service/internal/events"
)

type applicationServiceFixture struct {
	users        *fakeUserRepo
	jobs         *fakeJobRepo
	applications *fakeApplicationRepo
	jobService   *JobService
	service      *ApplicationService
}

func newApplicationServiceFixture(t *testing.T) *applicationServiceFixture {
	t.Helper()
	users := newFakeUserRepo()
	jobs := newFakeJobRepo(users)
	applications := newFakeApplicationRepo()
	dispatcher := events.NewInMemoryDispatcher()

	return &applicationServiceFixture{
		users:        users,
		jobs:         jobs,
		applications: applications,
		jobService: NewJobService(JobDependencies{
			JobRepo:    jobs,
			UserRepo:   users,
			Dispatcher: dispatcher,
		}),
		service: NewApplicationService(ApplicationDependencies{
			ApplicationRepo: applications,
			JobRepo:         jobs,
			UserRepo:        users,
			Dispatcher:      dispatcher,
		}),
	}
}

func (f *applicationServiceFixture) addUser(t *testing.T, id string, role domain.UserRole) {
	t.Helper()
	require.NoError(t, f.users.Create(context.Background(), &domain.User{
		ID:         id,
		FullName:   "Test User",
		Email:      id + "@example.com",
		Role:       role,
		IsActive:   true,
		IsVerified: true,
	}))
}

func (f *applicationServiceFixture) addOpenJob(t *testing.T, creatorID string) *domain.Job {
	t.Helper()
	job, err := f.jobService.Create(context.Background(), validJobInput(), creatorID)
	require.NoError(t, err)
	open := domain.JobStatusOpen
	job, err = f.jobService.Update(context.Background(), job.ID, JobUpdateInput{Status: &open}, creatorID)
	require.NoError(t, err)
	return job
}

func validApplicationInput(jobID string) ApplicationCreateInput {
	return ApplicationCreateInput{
		JobID:      jobID,
		ResumeLink: "https://cv.example.com/a.pdf",
	}
}

func TestApplicationCreateStartsInApplied(t *testing.T) {
	f := newApplicationServiceFixture(t)
	f.addUser(t, "c1", domain.RoleCompany)
	f.addUser(t, "a1", domain.RoleApplicant)
	job := f.addOpenJob(t, "c1")

	app, err := f.service.Create(context.Background(), validApplicationInput(job.ID), "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
	assert.Equal(t, "a1", app.ApplicantID)
	assert.Equal(t, job.ID, app.JobID)

	fetched, err := f.service.GetByID(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.ResumeLink, fetched.ResumeLink)
	assert.Equal(t, app.Status, fetched.Status)
}

func TestApplicationUpdateStatusUnknownApplication(t *testing.T) {
	f := newApplicationServiceFixture(t)
	f.addUser(t, "c1", domain.RoleCompany)

	_, err := f.service.UpdateStatus(context.Background(), "missing", domain.ApplicationStatusReviewed, "c1")
	domainErr := assertDomainError(t, err, "NOT_FOUND", http.StatusNotFound)
	assert.Equal(t, "Application with ID missing not found", domainErr.Message)
}

func TestApplicationCreateRejectsCompany(t *testing.T) {
	f := newApplicationServiceFixture(t)
	f.addUser(t, "c1", domain.RoleCompany)
	job := f.addOpenJob(t, "c1")

	_, err := f.service.Create(context.Background(), validApplicationInput(job.ID), "c1")
	domainErr := assertDomainError(t, err, "AUTHORIZATION_FAILED", http.StatusForbidden)
	assert.Equal(t, "Only applicants can apply for jobs", domainErr.Message)
}

func TestApplicationCreateRejectsNotOpenJob(t *testing.T) {
	f := newApplicationServiceFixture(t)
	f.addUser(t, "c1", domain.RoleCompany)
	f.addUser(t, "a1", domain.RoleApplicant)
	draft, err := f.jobService.Create(context.Background(), validJobInput(), "c1")
	require.NoError(t, err)

	_, err = f.service.Create(context.Background(), validApplicationInput(draft.ID), "a1")
	domainErr := assertDomainError(t, err, "VALIDATION_FAILED", http.StatusBadRequest)
	assert.Equal(t, "Cannot apply to a job that is not open", domainErr.Message)
}

func TestApplicationCreateRejectsDuplicate(t *testing.T) {
	f := newApplicationServiceFixture(t)
	f.addUser(t, "c1", domain.RoleCompany)
	f.addUser(t, "a1", domain.RoleApplicant)
	job := f.addOpenJob(t, "c1")

	_, err := f.service.Create(context.Background(), validApplicationInput(job.ID), "a1")
	require.NoError(t, err)

	_, err = f.service.Create(context.Background(), validApplicationInput(job.ID), "a1")
	domainErr := assertDomainError(t, err, "CONFLICT", http.StatusConflict)
	assert.Equal(t, "You have already applied to this job", domainErr.Message)
}

func TestApplicationCreateUnknownJob(t *testing.T) {
	f := newApplicationServiceFixture(t)
	f.addUser(t, "a1", domain.RoleApplicant)

	_, err := f.service.Create(context.Background(), validApplicationInput("missing"), "a1")
	domainErr := assertDomainError(t, err, "NOT_FOUND", http.StatusNotFound)
	assert.Equal(t, "Job with ID missing not found", domainErr.Message)
}

func TestApplicationCreateValidatesResumeLink(t *testing.T) {
	f := newApplicationServiceFixture(t)
	f.addUser(t, "c1", domain.RoleCompany)
	f.addUser(t, "a1", domain.RoleApplicant)
	job := f.addOpenJob(t, "c1")

	_, err := f.service.Create(context.Background(), ApplicationCreateInput{
		JobID:      job.ID,
		ResumeLink: "not-a-url",
	}, "a1")
	domainErr := assertDomainError(t, err, "VALIDATION_FAILED", http.StatusBadRequest)
	assert.Equal(t, "Resume link must be a valid URL", domainErr.Message)
}

func TestApplicationUpdateStatusOwnerOnly(t *testing.T) {
	f := newApplicationServiceFixture(t)
	f.addUser(t, "c1", domain.RoleCompany)
	f.addUser(t, "c2", domain.RoleCompany)
	f.addUser(t, "a1", domain.RoleApplicant)
	job := f.addOpenJob(t, "c1")

	app, err := f.service.Create(context.Background(), validApplicationInput(job.ID), "a1")
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(context.Background(), app.ID, domain.ApplicationStatusReviewed, "c2")
	domainErr := assertDomainError(t, err, "AUTHORIZATION_FAILED", http.StatusForbidden)
	assert.Equal(t, "Unauthorized access", domainErr.Message)

	_, err = f.service.UpdateStatus(context.Background(), app.ID, domain.ApplicationStatusReviewed, "a1")
	assertDomainError(t, err, "AUTHORIZATION_FAILED", http.StatusForbidden)

	updated, err := f.service.UpdateStatus(context.Background(), app.ID, domain.ApplicationStatusReviewed, "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusReviewed, updated.Status)
}

func TestApplicationUpdateStatusRejectsUnknownValue(t *testing.T) {
	f := newApplicationServiceFixture(t)
	f.addUser(t, "c1", domain.RoleCompany)
	f.addUser(t, "a1", domain.RoleApplicant)
	job := f.addOpenJob(t, "c1")

	app, err := f.service.Create(context.Background(), validApplicationInput(job.ID), "a1")
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(context.Background(), app.ID, domain.ApplicationStatus("Pending"), "c1")
	domainErr := assertDomainError(t, err, "VALIDATION_FAILED", http.StatusBadRequest)
	assert.Equal(t, "Invalid application status Pending", domainErr.Message)
}

func TestApplicationUpdateStatusMovesFreely(t *testing.T) {
	f := newApplicationServiceFixture(t)
	f.addUser(t, "c1", domain.RoleCompany)
	f.addUser(t, "a1", domain.RoleApplicant)
	job := f.addOpenJob(t, "c1")

	app, err := f.service.Create(context.Background(), validApplicationInput(job.ID), "a1")
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(context.Background(), app.ID, domain.ApplicationStatusHired, "c1")
	require.NoError(t, err)
	updated, err := f.service.UpdateStatus(context.Background(), app.ID, domain.ApplicationStatusApplied, "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusApplied, updated.Status)
}

func TestApplicationGetByJobOwnerOnly(t *testing.T) {
	f := newApplicationServiceFixture(t)
	f.addUser(t, "c1", domain.RoleCompany)
	f.addUser(t, "a1", domain.RoleApplicant)
	job := f.addOpenJob(t, "c1")

	_, err := f.service.Create(context.Background(), validApplicationInput(job.ID), "a1")
	require.NoError(t, err)

	_, err = f.service.GetByJob(context.Background(), job.ID, "a1", Page{Number: 1, Size: 10})
	assertDomainError(t, err, "AUTHORIZATION_FAILED", http.StatusForbidden)

	apps, err := f.service.GetByJob(context.Background(), job.ID, "c1", Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestApplicationSearchApplicantOnly(t *testing.T) {
	f := newApplicationServiceFixture(t)
	f.addUser(t, "c1", domain.RoleCompany)
	f.addUser(t, "a1", domain.RoleApplicant)
	job := f.addOpenJob(t, "c1")

	_, err := f.service.Create(context.Background(), validApplicationInput(job.ID), "a1")
	require.NoError(t, err)

	_, err = f.service.Search(context.Background(), ApplicationSearchFilter{}, "c1")
	domainErr := assertDomainError(t, err, "AUTHORIZATION_FAILED", http.StatusForbidden)
	assert.Equal(t, "Only applicants can search their applications", domainErr.Message)

	apps, err := f.service.Search(context.Background(), ApplicationSearchFilter{}, "a1")
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	apps, err = f.service.Search(context.Background(), ApplicationSearchFilter{
		Statuses: []domain.ApplicationStatus{domain.ApplicationStatusHired},
	}, "a1")
	require.NoError(t, err)
	assert.Empty(t, apps)
}

// Walks a posting from draft to closed with one applicant in flight.
func TestHiringFlowEndToEnd(t *testing.T) {
	f := newApplicationServiceFixture(t)
	f.addUser(t, "c1", domain.RoleCompany)
	f.addUser(t, "a1", domain.RoleApplicant)
	ctx := context.Background()

	job, err := f.jobService.Create(ctx, JobCreateInput{
		Title:       "Platform Engineer",
		Description: "Own the deployment pipeline and runtime platform.",
	}, "c1")
	require.NoError(t, err)
	require.Equal(t, domain.JobStatusDraft, job.Status)

	_, err = f.service.Create(ctx, validApplicationInput(job.ID), "a1")
	assertDomainError(t, err, "VALIDATION_FAILED", http.StatusBadRequest)

	open := domain.JobStatusOpen
	job, err = f.jobService.Update(ctx, job.ID, JobUpdateInput{Status: &open}, "c1")
	require.NoError(t, err)

	app, err := f.service.Create(ctx, validApplicationInput(job.ID), "a1")
	require.NoError(t, err)

	_, err = f.service.Create(ctx, validApplicationInput(job.ID), "a1")
	assertDomainError(t, err, "CONFLICT", http.StatusConflict)

	app, err = f.service.UpdateStatus(ctx, app.ID, domain.ApplicationStatusInterview, "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusInterview, app.Status)

	closed := domain.JobStatusClosed
	job, err = f.jobService.Update(ctx, job.ID, JobUpdateInput{Status: &closed}, "c1")
	require.NoError(t, err)

	_, err = f.jobService.Update(ctx, job.ID, JobUpdateInput{Status: &open}, "c1")
	domainErr := assertDomainError(t, err, "VALIDATION_FAILED", http.StatusBadRequest)
	assert.Equal(t, "Invalid status transition from Closed to Open", domainErr.Message)

	apps, err := f.service.GetByJob(ctx, job.ID, "c1", Page{Number: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, domain.ApplicationStatusInterview, apps[0].Status)
}
