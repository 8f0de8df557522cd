package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board-service/internal/api/dto"
	"github.com/spec-kit/job-board-service/internal/auth"
	"github.com/spec-kit/job-board-service/internal/domain"
	"github.com/spec-kit/job-board-service/internal/service"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// ApplicationsHandler exposes job application endpoints.
type ApplicationsHandler struct {
	applications *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applicationService *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{applications: applicationService}
}

// Create handles POST /applications.
func (h *ApplicationsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationError("authentication required")
	}
	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.JobID == "" {
		return apperrors.NewValidationError("job_id required", nil)
	}

	app, err := h.applications.Create(c.UserContext(), service.ApplicationCreateInput{
		JobID:       req.JobID,
		ResumeLink:  req.ResumeLink,
		CoverLetter: req.CoverLetter,
	}, principal.ID())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.OK(
		"Application submitted successfully", dto.NewApplicationResponse(app)))
}

// UpdateStatus handles PATCH /applications/:id/status, job owner only.
func (h *ApplicationsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationError("authentication required")
	}
	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	app, err := h.applications.UpdateStatus(c.UserContext(), c.Params("id"), req.Status, principal.ID())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Application status updated successfully", dto.NewApplicationResponse(app)))
}

// Mine handles GET /applications/my-applications, the applicant's own
// submissions, optionally filtered by a comma separated status list.
func (h *ApplicationsHandler) Mine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationError("authentication required")
	}
	filter := service.ApplicationSearchFilter{Page: pageFromQuery(c)}
	if raw := c.Query("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				filter.Statuses = append(filter.Statuses, domain.ApplicationStatus(part))
			}
		}
	}

	apps, err := h.applications.Search(c.UserContext(), filter, principal.ID())
	if err != nil {
		return err
	}
	page := filter.Page.Clamped()
	return c.JSON(dto.Paginated("Applications retrieved successfully",
		dto.NewApplicationResponses(apps), page.Number, page.Size, len(apps)))
}

// Get handles GET /applications/:id.
func (h *ApplicationsHandler) Get(c *fiber.Ctx) error {
	app, err := h.applications.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Application retrieved successfully", dto.NewApplicationResponse(app)))
}
