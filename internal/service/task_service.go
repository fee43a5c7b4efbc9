package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/taskslate/taskslate/internal/domain"
	"github.com/taskslate/taskslate/internal/repository"
)

// TaskService coordinates task operations. It owns the fields the server
// assigns on behalf of clients: task identity and both timestamps.
type TaskService struct {
	taskRepo *repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTaskParams carries the client-supplied fields of a new task.
type CreateTaskParams struct {
	Title       string
	Description *string
	AuthorID    string
	AssigneeIDs []string
	Priority    *int
	PlannedTime *int
	ActualTime  *int
}

// CreateTask builds a task from client-supplied fields, assigns identity and
// timestamps, and persists it. Every created task starts in status NEW.
func (s *TaskService) CreateTask(ctx context.Context, params CreateTaskParams) (domain.Task, error) {
	now := time.Now().UTC()

	task, err := domain.NewTask(domain.Task{
		ID:          uuid.NewString(),
		Title:       params.Title,
		Description: params.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Status:      domain.TaskStatusNew,
		AuthorID:    params.AuthorID,
		AssigneeIDs: params.AssigneeIDs,
		Priority:    params.Priority,
		PlannedTime: params.PlannedTime,
		ActualTime:  params.ActualTime,
	})
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return domain.Task{}, err
	}

	slog.Info("task created",
		"task_id", task.ID,
		"author_id", task.AuthorID,
	)

	return task, nil
}

// GetTask retrieves a single task by ID.
func (s *TaskService) GetTask(ctx context.Context, taskID string) (domain.Task, error) {
	return s.taskRepo.GetByID(ctx, taskID)
}

// ListTasks retrieves all tasks ordered by creation time.
func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepo.List(ctx)
}

// ReplaceTask overwrites the client-owned fields of an existing task. The
// identity, author and creation timestamp persist from the stored task no
// matter what the incoming value carries; the update timestamp is refreshed.
func (s *TaskService) ReplaceTask(ctx context.Context, taskID string, incoming domain.Task) (domain.Task, error) {
	existing, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	incoming.ID = existing.ID
	incoming.AuthorID = existing.AuthorID
	incoming.CreatedAt = existing.CreatedAt
	incoming.UpdatedAt = time.Now().UTC()

	task, err := domain.NewTask(incoming)
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return domain.Task{}, err
	}

	slog.Info("task replaced",
		"task_id", task.ID,
		"status", task.Status,
	)

	return task, nil
}

// TransitionStatus moves a task to a new status, refreshing its update timestamp.
func (s *TaskService) TransitionStatus(ctx context.Context, taskID string, status domain.TaskStatus) (domain.Task, error) {
	existing, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	oldStatus := existing.Status
	existing.UpdatedAt = time.Now().UTC()

	task, err := existing.WithStatus(status)
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return domain.Task{}, err
	}

	slog.Info("task status changed",
		"task_id", task.ID,
		"old_status", oldStatus,
		"new_status", task.Status,
	)

	return task, nil
}

// DeleteTask removes a task by ID.
func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return err
	}

	slog.Info("task deleted", "task_id", taskID)

	return nil
}
