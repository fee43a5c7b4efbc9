package dto

import "time"

// TaskStatus is the wire spelling of a task status as fixed by the OpenAPI
// contract.
type TaskStatus string

const (
	TaskStatusNew        TaskStatus = "new"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusCanceled   TaskStatus = "canceled"
)

// IsValid checks if the status is one of the values the contract allows.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusNew, TaskStatusInProgress, TaskStatusDone, TaskStatusCanceled:
		return true
	default:
		return false
	}
}

// TaskStatuses returns the closed set of wire status values.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusNew, TaskStatusInProgress, TaskStatusDone, TaskStatusCanceled}
}

// Task is the wire representation of a task. Field names, nullability and
// the status spelling track the externally versioned schema: assigneeIds is
// absent rather than empty when a task has no assignees, and timestamps are
// offset-qualified local times rendered at +00:00.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Status      TaskStatus `json:"status"`
	AuthorID    string     `json:"authorId"`
	AssigneeIDs []string   `json:"assigneeIds,omitempty"`
	Priority    *int       `json:"priority,omitempty"`
	PlannedTime *int       `json:"plannedTime,omitempty"`
	ActualTime  *int       `json:"actualTime,omitempty"`
}
