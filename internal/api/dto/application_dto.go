package dto

import (
	"time"

	"github.com/spec-kit/job-board-service/internal/domain"
)

// CreateApplicationRequest payload.
type CreateApplicationRequest struct {
	JobID       string  `json:"job_id"`
	ResumeLink  string  `json:"resume_link"`
	CoverLetter *string `json:"cover_letter"`
}

// UpdateApplicationStatusRequest payload.
type UpdateApplicationStatusRequest struct {
	Status domain.ApplicationStatus `json:"status"`
}

// ApplicationResponse shape for application objects.
type ApplicationResponse struct {
	ID          string                   `json:"id"`
	ApplicantID string                   `json:"applicant_id"`
	JobID       string                   `json:"job_id"`
	ResumeLink  string                   `json:"resume_link"`
	CoverLetter *string                  `json:"cover_letter"`
	Status      domain.ApplicationStatus `json:"status"`
	AppliedAt   time.Time                `json:"applied_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// NewApplicationResponse maps the domain entity.
func NewApplicationResponse(app *domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          app.ID,
		ApplicantID: app.ApplicantID,
		JobID:       app.JobID,
		ResumeLink:  app.ResumeLink,
		CoverLetter: app.CoverLetter,
		Status:      app.Status,
		AppliedAt:   app.AppliedAt,
		UpdatedAt:   app.UpdatedAt,
	}
}

// NewApplicationResponses maps a slice of domain entities.
func NewApplicationResponses(apps []domain.Application) []ApplicationResponse {
	items := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		items = append(items, NewApplicationResponse(&apps[i]))
	}
	return items
}
