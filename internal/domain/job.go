package domain

import (
	"fmt"
	"strings"
	"time"
)

// JobStatus enumerates lifecycle states for job postings.
type JobStatus string

const (
	JobStatusDraft  JobStatus = "Draft"
	JobStatusOpen   JobStatus = "Open"
	JobStatusClosed JobStatus = "Closed"
)

// IsValid reports whether the status is a known value.
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusDraft, JobStatusOpen, JobStatusClosed:
		return true
	}
	return false
}

// jobTransitions is the forward-only transition table. Anything not listed,
// including same-state moves, is rejected.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusDraft:  {JobStatusOpen},
	JobStatusOpen:   {JobStatusClosed},
	JobStatusClosed: {},
}

// CanTransitionJobStatus reports whether the (current, next) pair is legal.
func CanTransitionJobStatus(current, next JobStatus) bool {
	for _, candidate := range jobTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// Job is the aggregate for postings created by company accounts.
type Job struct {
	ID          string
	Title       string
	Description string
	Location    *string
	Status      JobStatus
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewJob builds a job in Draft status, enforcing field invariants.
func NewJob(title, description string, location *string, createdBy string) (*Job, error) {
	job := &Job{
		Status:    JobStatusDraft,
		CreatedBy: createdBy,
	}
	if err := job.SetTitle(title); err != nil {
		return nil, err
	}
	if err := job.SetDescription(description); err != nil {
		return nil, err
	}
	job.SetLocation(location)
	return job, nil
}

// SetTitle validates and applies the title (1-100 chars after trimming).
func (j *Job) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if len(title) < 1 {
		return ErrTitleEmpty
	}
	if len(title) > 100 {
		return ErrTitleTooLong
	}
	j.Title = title
	return nil
}

// SetDescription validates and applies the description (20-2000 chars after trimming).
func (j *Job) SetDescription(description string) error {
	description = strings.TrimSpace(description)
	if len(description) < 20 {
		return ErrDescTooShort
	}
	if len(description) > 2000 {
		return ErrDescTooLong
	}
	j.Description = description
	return nil
}

// SetLocation applies an optional location. Blank values clear it.
func (j *Job) SetLocation(location *string) {
	if location == nil {
		j.Location = nil
		return
	}
	trimmed := strings.TrimSpace(*location)
	if trimmed == "" {
		j.Location = nil
		return
	}
	j.Location = &trimmed
}

// UpdateStatus moves the job along the forward-only lifecycle.
func (j *Job) UpdateStatus(next JobStatus) error {
	if !CanTransitionJobStatus(j.Status, next) {
		return fmt.Errorf("Invalid status transition from %s to %s", j.Status, next)
	}
	j.Status = next
	j.UpdatedAt = time.Now().UTC()
	return nil
}

// IsOpen reports whether the job accepts new applications.
func (j *Job) IsOpen() bool {
	return j.Status == JobStatusOpen
}
