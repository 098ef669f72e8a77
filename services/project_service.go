package services

import (
	"errors"
	"strings"

	"github.com/devtrack-simple/database"
	"github.com/devtrack-simple/dto"
	"github.com/devtrack-simple/models"
	"github.com/devtrack-simple/repositories"
	"gorm.io/gorm"
)

// ProjectService is the mutation chokepoint for projects: every
// state change verifies ownership and pairs the entity write with
// its audit row inside one transaction.
type ProjectService struct {
	recorder *ActivityRecorder
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		recorder: NewActivityRecorder(),
	}
}

// ListProjects retrieves the caller's projects with their backlog
// attached, newest project first
func (s *ProjectService) ListProjects(userID string) ([]dto.ProjectWithChildren, error) {
	projectRepo := repositories.NewProjectRepository(database.DB)
	taskRepo := repositories.NewTaskRepository(database.DB)

	projects, err := projectRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	tasks, err := taskRepo.FindByOwner(userID)
	if err != nil {
		return nil, err
	}

	// Bucket tasks per project, preserving rank order
	byProject := make(map[uint][]models.Task)
	for _, task := range tasks {
		byProject[task.ProjectID] = append(byProject[task.ProjectID], task)
	}

	result := make([]dto.ProjectWithChildren, 0, len(projects))
	for _, project := range projects {
		result = append(result, withChildren(project, byProject[project.ID]))
	}
	return result, nil
}

// GetProject retrieves one project with its backlog, scoped to the
// caller
func (s *ProjectService) GetProject(userID string, id uint) (dto.ProjectWithChildren, error) {
	projectRepo := repositories.NewProjectRepository(database.DB)

	project, err := projectRepo.FindOwned(id, userID)
	if err != nil {
		return dto.ProjectWithChildren{}, notFoundOr(err)
	}

	taskRepo := repositories.NewTaskRepository(database.DB)
	var tasks []models.Task
	for _, kind := range []models.TaskKind{models.TaskKindFeature, models.TaskKindBug, models.TaskKindImprovement} {
		kindTasks, err := taskRepo.FindByProjectID(project.ID, kind)
		if err != nil {
			return dto.ProjectWithChildren{}, err
		}
		tasks = append(tasks, kindTasks...)
	}

	return withChildren(project, tasks), nil
}

// CreateProject creates a project owned by the caller and records the
// paired create activity
func (s *ProjectService) CreateProject(userID string, req dto.CreateProjectRequest) (models.Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return models.Project{}, newValidationError("name", "project name is required")
	}

	project := models.Project{
		UserID:          userID,
		Name:            req.Name,
		Description:     req.Description,
		ProductionLink:  req.ProductionLink,
		RepoLink:        req.RepoLink,
		FrontendLink:    req.FrontendLink,
		BackendLink:     req.BackendLink,
		FrontendDetails: req.FrontendDetails,
		BackendDetails:  req.BackendDetails,
		EnvDetails:      req.EnvDetails,
		TestUserDetails: req.TestUserDetails,
		AuthDetails:     req.AuthDetails,
		SetupSteps:      models.StringList(req.SetupSteps),
	}
	if project.SetupSteps == nil {
		project.SetupSteps = models.StringList{}
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewProjectRepository(tx).Create(&project); err != nil {
			return err
		}
		return s.recorder.ProjectCreated(tx, &project)
	})
	if err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// UpdateProject applies a sparse patch to an owned project. Ownership
// is re-verified inside the write transaction, not inherited from an
// earlier read.
func (s *ProjectService) UpdateProject(userID string, id uint, req dto.UpdateProjectRequest) (models.Project, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return models.Project{}, newValidationError("name", "project name cannot be empty")
	}

	var project models.Project
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		projectRepo := repositories.NewProjectRepository(tx)

		var err error
		project, err = projectRepo.FindOwned(id, userID)
		if err != nil {
			return notFoundOr(err)
		}

		applyProjectPatch(&project, req)

		if err := projectRepo.Save(&project); err != nil {
			return err
		}
		return s.recorder.ProjectUpdated(tx, &project)
	})
	if err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// DeleteProject removes an owned project and cascades to its tasks
// and activities. The audit trail ceases to exist with the project,
// so no delete activity is written.
func (s *ProjectService) DeleteProject(userID string, id uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		projectRepo := repositories.NewProjectRepository(tx)

		project, err := projectRepo.FindOwned(id, userID)
		if err != nil {
			return notFoundOr(err)
		}
		return projectRepo.Delete(project.ID)
	})
}

func applyProjectPatch(project *models.Project, req dto.UpdateProjectRequest) {
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ProductionLink != nil {
		project.ProductionLink = *req.ProductionLink
	}
	if req.RepoLink != nil {
		project.RepoLink = *req.RepoLink
	}
	if req.FrontendLink != nil {
		project.FrontendLink = *req.FrontendLink
	}
	if req.BackendLink != nil {
		project.BackendLink = *req.BackendLink
	}
	if req.FrontendDetails != nil {
		project.FrontendDetails = *req.FrontendDetails
	}
	if req.BackendDetails != nil {
		project.BackendDetails = *req.BackendDetails
	}
	if req.EnvDetails != nil {
		project.EnvDetails = *req.EnvDetails
	}
	if req.TestUserDetails != nil {
		project.TestUserDetails = *req.TestUserDetails
	}
	if req.AuthDetails != nil {
		project.AuthDetails = *req.AuthDetails
	}
	if req.SetupSteps != nil {
		project.SetupSteps = models.StringList(*req.SetupSteps)
	}
}

func withChildren(project models.Project, tasks []models.Task) dto.ProjectWithChildren {
	result := dto.ProjectWithChildren{
		Project:      project,
		Features:     []models.Task{},
		Bugs:         []models.Task{},
		Improvements: []models.Task{},
	}
	for _, task := range tasks {
		switch task.Kind {
		case models.TaskKindFeature:
			result.Features = append(result.Features, task)
		case models.TaskKindBug:
			result.Bugs = append(result.Bugs, task)
		case models.TaskKindImprovement:
			result.Improvements = append(result.Improvements, task)
		}
	}
	return result
}

// notFoundOr maps a missing record onto the service-level ErrNotFound
// and passes real store errors through untouched
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
