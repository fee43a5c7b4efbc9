package dto

// CreateTaskRequest represents the request body for POST /tasks. The server
// assigns the id, status and timestamps; clients only supply the fields
// below.
type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	AuthorID    string   `json:"authorId"`
	AssigneeIDs []string `json:"assigneeIds,omitempty"`
	Priority    *int     `json:"priority,omitempty"`
	PlannedTime *int     `json:"plannedTime,omitempty"`
	ActualTime  *int     `json:"actualTime,omitempty"`
}

// TransitionStatusRequest represents the request body for PATCH /tasks/{id}/status.
type TransitionStatusRequest struct {
	Status TaskStatus `json:"status"`
}
