package auth

import "github.com/spec-kit/job-board-service/internal/domain"

// Action enumerates the guarded operations of the job and application
// workflows.
type Action string

const (
	ActionCreateJob          Action = "job:create"
	ActionUpdateJob          Action = "job:update"
	ActionDeleteJob          Action = "job:delete"
	ActionViewApplications   Action = "job:view_applications"
	ActionApply              Action = "application:create"
	ActionAdjudicate         Action = "application:update_status"
	ActionSearchApplications Action = "application:search"
)

// Caller carries the identity facts policy decisions are made from.
type Caller struct {
	ID   string
	Role domain.UserRole
}

// CanPerform evaluates whether the caller may run the action against the
// resource. Decisions compose only role equality and ownership equality; the
// job argument is the posting the action targets (nil where no posting is
// involved).
func CanPerform(caller Caller, action Action, job *domain.Job) bool {
	switch action {
	case ActionCreateJob:
		return caller.Role == domain.RoleCompany
	case ActionUpdateJob:
		return caller.Role == domain.RoleCompany && ownsJob(caller, job)
	case ActionDeleteJob:
		return ownsJob(caller, job)
	case ActionViewApplications, ActionAdjudicate:
		return ownsJob(caller, job)
	case ActionApply:
		return caller.Role == domain.RoleApplicant
	case ActionSearchApplications:
		return caller.Role == domain.RoleApplicant
	}
	return false
}

func ownsJob(caller Caller, job *domain.Job) bool {
	return job != nil && job.CreatedBy == caller.ID
}
