package events

import (
	"time"

	"github.com/spec-kit/job-board-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered           EventType = "user_registered"
	EventJobCreated               EventType = "job_created"
	EventJobStatusChanged         EventType = "job_status_changed"
	EventApplicationSubmitted     EventType = "application_submitted"
	EventApplicationStatusChanged EventType = "application_status_changed"
	EventProductCreated           EventType = "product_created"
	EventProductUpdated           EventType = "product_updated"
	EventProductDeleted           EventType = "product_deleted"
)

// Event represents a domain event emitted by services. EntityID identifies
// the aggregate the event concerns; ActorID the user who caused it.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email             string          `json:"email"`
	Role              domain.UserRole `json:"role"`
	VerificationToken string          `json:"verification_token"`
}

// JobCreatedPayload payload.
type JobCreatedPayload struct {
	Title    string           `json:"title"`
	Status   domain.JobStatus `json:"status"`
	Location *string          `json:"location,omitempty"`
}

// JobStatusChangedPayload payload.
type JobStatusChangedPayload struct {
	OldStatus domain.JobStatus `json:"old_status"`
	NewStatus domain.JobStatus `json:"new_status"`
}

// ApplicationSubmittedPayload payload.
type ApplicationSubmittedPayload struct {
	JobID       string `json:"job_id"`
	ApplicantID string `json:"applicant_id"`
}

// ApplicationStatusChangedPayload payload.
type ApplicationStatusChangedPayload struct {
	JobID       string                   `json:"job_id"`
	ApplicantID string                   `json:"applicant_id"`
	OldStatus   domain.ApplicationStatus `json:"old_status"`
	NewStatus   domain.ApplicationStatus `json:"new_status"`
}

// ProductPayload payload for catalog events.
type ProductPayload struct {
	SKU string `json:"sku"`
}
