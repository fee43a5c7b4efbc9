package dto

import (
	"errors"
	"fmt"

	"github.com/taskslate/taskslate/internal/domain"
	"github.com/taskslate/taskslate/internal/timeconv"
)

// ErrUnmappedStatus reports a status value with no counterpart in the other
// representation. Both enumerations are closed, so hitting this means the
// wire contract and the domain model have drifted apart; it is a bug signal,
// not a runtime condition to handle.
var ErrUnmappedStatus = errors.New("unmapped task status")

// ToTaskStatus translates a domain status to its wire spelling.
func ToTaskStatus(status domain.TaskStatus) (TaskStatus, error) {
	switch status {
	case domain.TaskStatusNew:
		return TaskStatusNew, nil
	case domain.TaskStatusInProgress:
		return TaskStatusInProgress, nil
	case domain.TaskStatusDone:
		return TaskStatusDone, nil
	case domain.TaskStatusCanceled:
		return TaskStatusCanceled, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnmappedStatus, status)
	}
}

// ToDomainStatus translates a wire status to its domain spelling.
func ToDomainStatus(status TaskStatus) (domain.TaskStatus, error) {
	switch status {
	case TaskStatusNew:
		return domain.TaskStatusNew, nil
	case TaskStatusInProgress:
		return domain.TaskStatusInProgress, nil
	case TaskStatusDone:
		return domain.TaskStatusDone, nil
	case TaskStatusCanceled:
		return domain.TaskStatusCanceled, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnmappedStatus, status)
	}
}

// ToTask converts a validated domain task to its wire representation.
// Scalars copy unchanged, timestamps are rendered at a fixed UTC offset and
// an empty assignee list becomes an absent field: empty and absent are the
// same thing on the wire, and outbound values always use absent.
func ToTask(task domain.Task) (Task, error) {
	status, err := ToTaskStatus(task.Status)
	if err != nil {
		return Task{}, err
	}

	var assigneeIDs []string
	if len(task.AssigneeIDs) > 0 {
		assigneeIDs = make([]string, len(task.AssigneeIDs))
		copy(assigneeIDs, task.AssigneeIDs)
	}

	return Task{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		CreatedAt:   timeconv.InstantToOffset(task.CreatedAt),
		UpdatedAt:   timeconv.InstantToOffset(task.UpdatedAt),
		Status:      status,
		AuthorID:    task.AuthorID,
		AssigneeIDs: assigneeIDs,
		Priority:    task.Priority,
		PlannedTime: task.PlannedTime,
		ActualTime:  task.ActualTime,
	}, nil
}

// ToDomain converts a wire task to a validated domain task. The offset
// carried by wire timestamps is collapsed into the instant it denotes and
// then discarded, and an absent assignee list becomes an empty one.
// Validation failures surface from domain construction, never from the
// mapping itself.
func ToDomain(task Task) (domain.Task, error) {
	status, err := ToDomainStatus(task.Status)
	if err != nil {
		return domain.Task{}, err
	}

	return domain.NewTask(domain.Task{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		CreatedAt:   timeconv.OffsetToInstant(task.CreatedAt),
		UpdatedAt:   timeconv.OffsetToInstant(task.UpdatedAt),
		Status:      status,
		AuthorID:    task.AuthorID,
		AssigneeIDs: task.AssigneeIDs,
		Priority:    task.Priority,
		PlannedTime: task.PlannedTime,
		ActualTime:  task.ActualTime,
	})
}
