package dto

import "github.com/taskslate/taskslate/internal/domain"

// TaskListResponse represents the response for GET /tasks.
type TaskListResponse struct {
	Tasks []Task `json:"tasks"`
	Total int    `json:"total"`
}

// ToTaskListResponse converts a slice of domain tasks to the list response.
func ToTaskListResponse(tasks []domain.Task) (TaskListResponse, error) {
	out := make([]Task, len(tasks))
	for i, task := range tasks {
		t, err := ToTask(task)
		if err != nil {
			return TaskListResponse{}, err
		}
		out[i] = t
	}

	return TaskListResponse{
		Tasks: out,
		Total: len(out),
	}, nil
}
