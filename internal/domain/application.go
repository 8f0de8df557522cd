package domain

import (
	"strings"
	"time"
)

// ApplicationStatus enumerates adjudication states for applications.
type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "Applied"
	ApplicationStatusReviewed  ApplicationStatus = "Reviewed"
	ApplicationStatusInterview ApplicationStatus = "Interview"
	ApplicationStatusRejected  ApplicationStatus = "Rejected"
	ApplicationStatusHired     ApplicationStatus = "Hired"
)

// IsValid reports whether the status is a known value.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusReviewed, ApplicationStatusInterview,
		ApplicationStatusRejected, ApplicationStatusHired:
		return true
	}
	return false
}

// Application links an applicant to a job posting.
type Application struct {
	ID          string
	ApplicantID string
	JobID       string
	ResumeLink  string
	CoverLetter *string
	Status      ApplicationStatus
	AppliedAt   time.Time
	UpdatedAt   time.Time
}

// NewApplication builds an application in Applied status, enforcing field
// invariants on the resume link and cover letter.
func NewApplication(applicantID, jobID, resumeLink string, coverLetter *string) (*Application, error) {
	app := &Application{
		ApplicantID: applicantID,
		JobID:       jobID,
		Status:      ApplicationStatusApplied,
	}
	if err := app.SetResumeLink(resumeLink); err != nil {
		return nil, err
	}
	if err := app.SetCoverLetter(coverLetter); err != nil {
		return nil, err
	}
	return app, nil
}

// SetResumeLink validates the resume link is an absolute http/https URL.
func (a *Application) SetResumeLink(link string) error {
	link = strings.TrimSpace(link)
	if link == "" {
		return ErrResumeLinkEmpty
	}
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return ErrResumeLinkURL
	}
	a.ResumeLink = link
	return nil
}

// SetCoverLetter validates the optional cover letter (max 200 chars).
func (a *Application) SetCoverLetter(letter *string) error {
	if letter == nil {
		a.CoverLetter = nil
		return nil
	}
	trimmed := strings.TrimSpace(*letter)
	if trimmed == "" {
		a.CoverLetter = nil
		return nil
	}
	if len(trimmed) > 200 {
		return ErrCoverLetterLong
	}
	a.CoverLetter = &trimmed
	return nil
}

// UpdateStatus overwrites the adjudication status. Applications carry no
// transition table: the job owner may move between any two statuses.
func (a *Application) UpdateStatus(next ApplicationStatus) {
	a.Status = next
	a.UpdatedAt = time.Now().UTC()
}

// IsActive reports whether the application is still in flight.
func (a *Application) IsActive() bool {
	return a.Status != ApplicationStatusRejected && a.Status != ApplicationStatusHired
}
