package service_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/taskslate/taskslate/internal/database"
	"github.com/taskslate/taskslate/internal/domain"
	"github.com/taskslate/taskslate/internal/repository"
	"github.com/taskslate/taskslate/internal/service"
)

// TaskServiceTestSuite is the test suite for TaskService.
type TaskServiceTestSuite struct {
	suite.Suite
	pool        *pgxpool.Pool
	taskService *service.TaskService
	taskRepo    *repository.TaskRepository
}

// SetupSuite runs once before all tests.
func (s *TaskServiceTestSuite) SetupSuite() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		s.T().Skip("DATABASE_URL not set; skipping database-backed tests")
	}

	ctx := context.Background()

	db, err := database.New(ctx, databaseURL)
	s.Require().NoError(err, "failed to connect to database")

	s.pool = db.Pool()

	err = database.RunMigrations(ctx, s.pool)
	s.Require().NoError(err, "failed to run migrations")

	s.taskRepo = repository.NewTaskRepository(s.pool)
	s.taskService = service.NewTaskService(s.taskRepo)
}

// SetupTest runs before each test.
func (s *TaskServiceTestSuite) SetupTest() {
	ctx := context.Background()

	_, err := s.pool.Exec(ctx, "TRUNCATE tasks")
	s.Require().NoError(err, "failed to truncate tasks")
}

// TearDownSuite runs once after all tests.
func (s *TaskServiceTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// TestCreateTask_Defaults tests server-assigned fields on a minimal create.
func (s *TaskServiceTestSuite) TestCreateTask_Defaults() {
	ctx := context.Background()

	task, err := s.taskService.CreateTask(ctx, service.CreateTaskParams{
		Title:    "Write release notes",
		AuthorID: "author-1",
	})
	s.Require().NoError(err)

	_, err = uuid.Parse(task.ID)
	s.NoError(err, "task id should be a UUID")
	s.Equal(domain.TaskStatusNew, task.Status)
	s.Equal(task.CreatedAt, task.UpdatedAt)
	s.NotNil(task.AssigneeIDs)
	s.Empty(task.AssigneeIDs)
	s.Nil(task.Description)
	s.Nil(task.Priority)

	stored, err := s.taskRepo.GetByID(ctx, task.ID)
	s.Require().NoError(err)
	s.Equal(task.ID, stored.ID)
	s.Equal(task.Title, stored.Title)
	s.Equal(task.AuthorID, stored.AuthorID)
	s.Equal(domain.TaskStatusNew, stored.Status)
	s.WithinDuration(task.CreatedAt, stored.CreatedAt, time.Millisecond)
	s.WithinDuration(task.UpdatedAt, stored.UpdatedAt, time.Millisecond)
}

// TestCreateTask_FullFields tests that every optional field makes it to storage.
func (s *TaskServiceTestSuite) TestCreateTask_FullFields() {
	ctx := context.Background()

	description := "Collect highlights from the changelog"
	priority := 2
	planned := 3600
	actual := 1800

	task, err := s.taskService.CreateTask(ctx, service.CreateTaskParams{
		Title:       "Write release notes",
		Description: &description,
		AuthorID:    "author-1",
		AssigneeIDs: []string{"user-7", "user-9"},
		Priority:    &priority,
		PlannedTime: &planned,
		ActualTime:  &actual,
	})
	s.Require().NoError(err)

	stored, err := s.taskRepo.GetByID(ctx, task.ID)
	s.Require().NoError(err)
	s.Require().NotNil(stored.Description)
	s.Equal(description, *stored.Description)
	s.Equal([]string{"user-7", "user-9"}, stored.AssigneeIDs)
	s.Require().NotNil(stored.Priority)
	s.Equal(priority, *stored.Priority)
	s.Require().NotNil(stored.PlannedTime)
	s.Equal(planned, *stored.PlannedTime)
	s.Require().NotNil(stored.ActualTime)
	s.Equal(actual, *stored.ActualTime)
}

// TestCreateTask_ValidationError tests that invalid tasks are never persisted.
func (s *TaskServiceTestSuite) TestCreateTask_ValidationError() {
	ctx := context.Background()

	_, err := s.taskService.CreateTask(ctx, service.CreateTaskParams{
		Title:    "   ",
		AuthorID: "author-1",
	})
	s.Error(err)
	s.ErrorIs(err, domain.ErrBlankTitle)

	tasks, err := s.taskService.ListTasks(ctx)
	s.Require().NoError(err)
	s.Empty(tasks)
}

// TestReplaceTask_PreservesServerOwnedFields tests that replace cannot
// rewrite identity, author or creation time.
func (s *TaskServiceTestSuite) TestReplaceTask_PreservesServerOwnedFields() {
	ctx := context.Background()

	created := s.createTask(ctx, "Original title")

	replaced, err := s.taskService.ReplaceTask(ctx, created.ID, domain.Task{
		ID:          uuid.NewString(),
		Title:       "Replaced title",
		CreatedAt:   time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:      domain.TaskStatusDone,
		AuthorID:    "someone-else",
		AssigneeIDs: []string{"user-7"},
	})
	s.Require().NoError(err)

	s.Equal(created.ID, replaced.ID)
	s.Equal(created.AuthorID, replaced.AuthorID)
	s.WithinDuration(created.CreatedAt, replaced.CreatedAt, time.Millisecond)
	s.Equal("Replaced title", replaced.Title)
	s.Equal(domain.TaskStatusDone, replaced.Status)
	s.Equal([]string{"user-7"}, replaced.AssigneeIDs)
	s.True(replaced.UpdatedAt.After(created.UpdatedAt), "update timestamp should be refreshed")

	stored, err := s.taskRepo.GetByID(ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Replaced title", stored.Title)
	s.Equal(created.AuthorID, stored.AuthorID)
}

// TestReplaceTask_ValidationError tests that an invalid replacement leaves
// the stored task untouched.
func (s *TaskServiceTestSuite) TestReplaceTask_ValidationError() {
	ctx := context.Background()

	created := s.createTask(ctx, "Original title")

	_, err := s.taskService.ReplaceTask(ctx, created.ID, domain.Task{
		Title:  "",
		Status: domain.TaskStatusDone,
	})
	s.Error(err)
	s.ErrorIs(err, domain.ErrBlankTitle)

	stored, err := s.taskRepo.GetByID(ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Original title", stored.Title)
	s.Equal(domain.TaskStatusNew, stored.Status)
}

// TestReplaceTask_NotFound tests replacing a nonexistent task.
func (s *TaskServiceTestSuite) TestReplaceTask_NotFound() {
	ctx := context.Background()

	_, err := s.taskService.ReplaceTask(ctx, uuid.NewString(), domain.Task{
		Title:  "Replaced title",
		Status: domain.TaskStatusDone,
	})
	s.Error(err)
	s.ErrorIs(err, domain.ErrTaskNotFound)
}

// TestTransitionStatus_Success tests a regular status transition.
func (s *TaskServiceTestSuite) TestTransitionStatus_Success() {
	ctx := context.Background()

	created := s.createTask(ctx, "Write release notes")

	task, err := s.taskService.TransitionStatus(ctx, created.ID, domain.TaskStatusInProgress)
	s.Require().NoError(err)
	s.Equal(domain.TaskStatusInProgress, task.Status)
	s.True(task.UpdatedAt.After(created.UpdatedAt), "update timestamp should be refreshed")
	s.WithinDuration(created.CreatedAt, task.CreatedAt, time.Millisecond)

	stored, err := s.taskRepo.GetByID(ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(domain.TaskStatusInProgress, stored.Status)
}

// TestTransitionStatus_InvalidStatus tests that an unknown status is rejected
// and the stored task is untouched.
func (s *TaskServiceTestSuite) TestTransitionStatus_InvalidStatus() {
	ctx := context.Background()

	created := s.createTask(ctx, "Write release notes")

	_, err := s.taskService.TransitionStatus(ctx, created.ID, domain.TaskStatus("ARCHIVED"))
	s.Error(err)
	s.ErrorIs(err, domain.ErrInvalidStatus)

	stored, err := s.taskRepo.GetByID(ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(domain.TaskStatusNew, stored.Status)
}

// TestTransitionStatus_NotFound tests transitioning a nonexistent task.
func (s *TaskServiceTestSuite) TestTransitionStatus_NotFound() {
	ctx := context.Background()

	_, err := s.taskService.TransitionStatus(ctx, uuid.NewString(), domain.TaskStatusDone)
	s.Error(err)
	s.ErrorIs(err, domain.ErrTaskNotFound)
}

// TestDeleteTask tests deletion and the resulting lookup failure.
func (s *TaskServiceTestSuite) TestDeleteTask() {
	ctx := context.Background()

	created := s.createTask(ctx, "Write release notes")

	err := s.taskService.DeleteTask(ctx, created.ID)
	s.Require().NoError(err)

	_, err = s.taskService.GetTask(ctx, created.ID)
	s.Error(err)
	s.ErrorIs(err, domain.ErrTaskNotFound)
}

// TestDeleteTask_NotFound tests deleting a nonexistent task.
func (s *TaskServiceTestSuite) TestDeleteTask_NotFound() {
	ctx := context.Background()

	err := s.taskService.DeleteTask(ctx, uuid.NewString())
	s.Error(err)
	s.ErrorIs(err, domain.ErrTaskNotFound)
}

// TestListTasks_OrderedByCreation tests list ordering.
func (s *TaskServiceTestSuite) TestListTasks_OrderedByCreation() {
	ctx := context.Background()

	first := s.createTask(ctx, "First")
	second := s.createTask(ctx, "Second")
	third := s.createTask(ctx, "Third")

	tasks, err := s.taskService.ListTasks(ctx)
	s.Require().NoError(err)
	s.Require().Len(tasks, 3)
	s.Equal(first.ID, tasks[0].ID)
	s.Equal(second.ID, tasks[1].ID)
	s.Equal(third.ID, tasks[2].ID)
}

// TestListTasks_Empty tests listing with no tasks.
func (s *TaskServiceTestSuite) TestListTasks_Empty() {
	ctx := context.Background()

	tasks, err := s.taskService.ListTasks(ctx)
	s.Require().NoError(err)
	s.Empty(tasks)
}

// Helper: createTask creates a task through the service.
func (s *TaskServiceTestSuite) createTask(ctx context.Context, title string) domain.Task {
	task, err := s.taskService.CreateTask(ctx, service.CreateTaskParams{
		Title:    title,
		AuthorID: "author-1",
	})
	s.Require().NoError(err, "failed to create task")
	return task
}

// TestTaskServiceTestSuite runs the test suite.
func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
