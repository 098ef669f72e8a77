package dto

import (
	"github.com/devtrack-simple/models"
)

// CreateProjectRequest represents the request payload for creating a
// new project. Server-assigned fields (id, userId, createdAt) are
// deliberately absent: supplying them has no effect.
type CreateProjectRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	ProductionLink  string   `json:"productionLink"`
	RepoLink        string   `json:"repoLink"`
	FrontendLink    string   `json:"frontendLink"`
	BackendLink     string   `json:"backendLink"`
	FrontendDetails string   `json:"frontendDetails"`
	BackendDetails  string   `json:"backendDetails"`
	EnvDetails      string   `json:"envDetails"`
	TestUserDetails string   `json:"testUserDetails"`
	AuthDetails     string   `json:"authDetails"`
	SetupSteps      []string `json:"setupSteps"`
}

// UpdateProjectRequest is a sparse patch: only non-nil fields change.
type UpdateProjectRequest struct {
	Name            *string   `json:"name"`
	Description     *string   `json:"description"`
	ProductionLink  *string   `json:"productionLink"`
	RepoLink        *string   `json:"repoLink"`
	FrontendLink    *string   `json:"frontendLink"`
	BackendLink     *string   `json:"backendLink"`
	FrontendDetails *string   `json:"frontendDetails"`
	BackendDetails  *string   `json:"backendDetails"`
	EnvDetails      *string   `json:"envDetails"`
	TestUserDetails *string   `json:"testUserDetails"`
	AuthDetails     *string   `json:"authDetails"`
	SetupSteps      *[]string `json:"setupSteps"`
}

// ProjectWithChildren is a project together with its backlog,
// split per kind the way the dashboard consumes it.
type ProjectWithChildren struct {
	models.Project
	Features     []models.Task `json:"features"`
	Bugs         []models.Task `json:"bugs"`
	Improvements []models.Task `json:"improvements"`
}
