package domain

import (
	"fmt"
	"strings"
	"time"
)

// TaskStatus identifies where a task sits in its lifecycle.
type TaskStatus string

const (
	TaskStatusNew        TaskStatus = "NEW"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
	TaskStatusCanceled   TaskStatus = "CANCELED"
)

// IsValid checks if the status is one of the allowed values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusNew, TaskStatusInProgress, TaskStatusDone, TaskStatusCanceled:
		return true
	default:
		return false
	}
}

// TaskStatuses returns the closed set of status values. No transition rules
// are attached to them; legality of a status change is not this model's
// concern.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusNew, TaskStatusInProgress, TaskStatusDone, TaskStatusCanceled}
}

// Task is the canonical business representation of a task. Values are
// treated as immutable once they come out of NewTask: an update is a fresh
// NewTask call over a modified copy, never a mutation of an existing value.
// Timestamps are absolute instants held in UTC.
type Task struct {
	ID          string
	Title       string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Status      TaskStatus
	AuthorID    string
	AssigneeIDs []string
	Priority    *int
	PlannedTime *int
	ActualTime  *int
}

// NewTask validates the given field set and returns the canonical task
// value. The assignee list is copied and a nil list is normalized to an
// empty one, so the returned task never aliases caller data and never
// carries a nil slice.
func NewTask(task Task) (Task, error) {
	ids := make([]string, len(task.AssigneeIDs))
	copy(ids, task.AssigneeIDs)
	task.AssigneeIDs = ids

	if err := task.Validate(); err != nil {
		return Task{}, err
	}

	return task, nil
}

// Validate checks every construction invariant and reports the first
// violation.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrBlankTitle
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if t.Priority != nil && *t.Priority <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPriority, *t.Priority)
	}
	if t.PlannedTime != nil && *t.PlannedTime < 0 {
		return fmt.Errorf("%w: %d", ErrNegativePlannedTime, *t.PlannedTime)
	}
	if t.ActualTime != nil && *t.ActualTime < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeActualTime, *t.ActualTime)
	}
	return nil
}

// WithStatus returns a copy of the task carrying the given status. The copy
// goes back through NewTask, so every invariant is re-checked. UpdatedAt is
// left for the caller to refresh; it is never touched automatically.
func (t Task) WithStatus(status TaskStatus) (Task, error) {
	t.Status = status
	return NewTask(t)
}
