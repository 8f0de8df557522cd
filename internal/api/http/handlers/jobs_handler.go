package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board-service/internal/api/dto"
	"github.com/spec-kit/job-board-service/internal/auth"
	"github.com/spec-kit/job-board-service/internal/domain"
	"github.com/spec-kit/job-board-service/internal/service"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// JobsHandler exposes job posting endpoints.
type JobsHandler struct {
	jobs         *service.JobService
	applications *service.ApplicationService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService, applicationService *service.ApplicationService) *JobsHandler {
	return &JobsHandler{jobs: jobService, applications: applicationService}
}

// Create handles POST /jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationError("authentication required")
	}
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	job, err := h.jobs.Create(c.UserContext(), service.JobCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	}, principal.ID())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.OK("Job created successfully", dto.NewJobResponse(job)))
}

// Update handles PUT /jobs/:id.
func (h *JobsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationError("authentication required")
	}
	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	job, err := h.jobs.Update(c.UserContext(), c.Params("id"), service.JobUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Status:      req.Status,
	}, principal.ID())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Job updated successfully", dto.NewJobResponse(job)))
}

// Delete handles DELETE /jobs/:id.
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationError("authentication required")
	}
	if err := h.jobs.Delete(c.UserContext(), c.Params("id"), principal.ID()); err != nil {
		return err
	}
	return c.JSON(dto.OK("Job deleted successfully", nil))
}

// Get handles GET /jobs/:id.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	job, err := h.jobs.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Job retrieved successfully", dto.NewJobResponse(job)))
}

// Search handles GET /jobs/search. Zero matches is a success with an
// empty list, not an error.
func (h *JobsHandler) Search(c *fiber.Ctx) error {
	filter := service.JobSearchFilter{
		Title:       optionalQuery(c, "title"),
		Location:    optionalQuery(c, "location"),
		CompanyName: optionalQuery(c, "company_name"),
		Page:        pageFromQuery(c),
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.JobStatus(raw)
		filter.Status = &status
	}

	jobs, err := h.jobs.Search(c.UserContext(), filter)
	if err != nil {
		return err
	}
	page := filter.Page.Clamped()
	return c.JSON(dto.Paginated("Jobs retrieved successfully",
		dto.NewJobResponses(jobs), page.Number, page.Size, len(jobs)))
}

// Mine handles GET /jobs/my-jobs, the creator's own postings.
func (h *JobsHandler) Mine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationError("authentication required")
	}
	page := pageFromQuery(c)

	jobs, err := h.jobs.GetByCreator(c.UserContext(), principal.ID(), page)
	if err != nil {
		return err
	}
	total, err := h.jobs.CountByCreator(c.UserContext(), principal.ID())
	if err != nil {
		return err
	}
	clamped := page.Clamped()
	return c.JSON(dto.Paginated("Jobs retrieved successfully",
		dto.NewJobResponses(jobs), clamped.Number, clamped.Size, total))
}

// Applications handles GET /jobs/:id/applications, owner only.
func (h *JobsHandler) Applications(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationError("authentication required")
	}
	jobID := c.Params("id")
	page := pageFromQuery(c)

	apps, err := h.applications.GetByJob(c.UserContext(), jobID, principal.ID(), page)
	if err != nil {
		return err
	}
	total, err := h.applications.CountByJob(c.UserContext(), jobID)
	if err != nil {
		return err
	}
	clamped := page.Clamped()
	return c.JSON(dto.Paginated("Applications retrieved successfully",
		dto.NewApplicationResponses(apps), clamped.Number, clamped.Size, total))
}
