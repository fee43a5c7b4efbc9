package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/taskslate/taskslate/internal/handler/dto"
	"github.com/taskslate/taskslate/internal/service"
)

// handleCreateTask creates a new task.
// @Summary Create a new task
// @Description Creates a task from client-supplied fields. The server assigns the id, both timestamps, and the initial "new" status.
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task creation request"
// @Success 201 {object} dto.Task
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks [post]
func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	// The title is validated by task construction; the author has no domain
	// invariant and is checked at the boundary instead.
	if req.AuthorID == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "authorId is required")
		return
	}

	task, err := h.taskService.CreateTask(ctx, service.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    req.AuthorID,
		AssigneeIDs: req.AssigneeIDs,
		Priority:    req.Priority,
		PlannedTime: req.PlannedTime,
		ActualTime:  req.ActualTime,
	})
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondTask(w, http.StatusCreated, task)
}

// handleListTasks returns all tasks.
// @Summary List tasks
// @Description Get all tasks ordered by creation time
// @Tags tasks
// @Produce json
// @Success 200 {object} dto.TaskListResponse
// @Router /tasks [get]
func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tasks, err := h.taskService.ListTasks(ctx)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	response, err := dto.ToTaskListResponse(tasks)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, response)
}

// handleGetTask retrieves a single task.
// @Summary Get a task
// @Description Get a single task by ID
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.Task
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tasks/{id} [get]
func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := extractTaskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(ctx, taskID)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondTask(w, http.StatusOK, task)
}

// handleReplaceTask replaces the client-owned fields of a task.
// @Summary Replace a task
// @Description Overwrites the client-owned fields of a task. The id, author and creation timestamp persist from the stored task.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.Task true "Full task representation"
// @Success 200 {object} dto.Task
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks/{id} [put]
func (h *Handler) handleReplaceTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := extractTaskID(w, r)
	if !ok {
		return
	}

	var req dto.Task
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if !req.Status.IsValid() {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "status must be one of: "+allowedStatuses())
		return
	}

	// The path owns the identity; any id in the body is ignored.
	req.ID = taskID

	incoming, err := dto.ToDomain(req)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	task, err := h.taskService.ReplaceTask(ctx, taskID, incoming)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondTask(w, http.StatusOK, task)
}

// handleTransitionStatus changes task status.
// @Summary Transition task status
// @Description Move a task to a new status
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.TransitionStatusRequest true "Status transition request"
// @Success 200 {object} dto.Task
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks/{id}/status [patch]
func (h *Handler) handleTransitionStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := extractTaskID(w, r)
	if !ok {
		return
	}

	var req dto.TransitionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.Status == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "status is required")
		return
	}

	status, err := dto.ToDomainStatus(req.Status)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "status must be one of: "+allowedStatuses())
		return
	}

	task, err := h.taskService.TransitionStatus(ctx, taskID, status)
	if err != nil {
		st, code, message := dto.MapDomainError(err)
		respondError(w, st, code, message)
		return
	}

	respondTask(w, http.StatusOK, task)
}

// handleDeleteTask removes a task.
// @Summary Delete a task
// @Tags tasks
// @Param id path string true "Task ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := extractTaskID(w, r)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(ctx, taskID); err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// allowedStatuses lists the wire statuses accepted from clients.
func allowedStatuses() string {
	statuses := dto.TaskStatuses()
	names := make([]string, len(statuses))
	for i, status := range statuses {
		names[i] = string(status)
	}
	return strings.Join(names, ", ")
}
