package dto

// CreateTaskRequest represents the request payload for creating a
// feature, bug or improvement under a project. Status defaults per
// kind when empty; rank defaults to 0; tags default to empty.
type CreateTaskRequest struct {
	Description string   `json:"description" binding:"required"`
	Status      string   `json:"status"`
	Rank        *int     `json:"rank"`
	Tags        []string `json:"tags"`
}

// UpdateTaskRequest is a sparse patch: only non-nil fields change.
type UpdateTaskRequest struct {
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	Rank        *int      `json:"rank"`
	Tags        *[]string `json:"tags"`
}

// UpdateTaskStatusRequest flips a task between the two states of its
// kind's status enumeration.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
