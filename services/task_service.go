package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devtrack-simple/database"
	"github.com/devtrack-simple/dto"
	"github.com/devtrack-simple/models"
	"github.com/devtrack-simple/repositories"
	"gorm.io/gorm"
)

// TaskService is the mutation chokepoint for the three task-like
// kinds. One code path serves features, bugs and improvements; the
// per-kind differences come from the kind registry in models.
type TaskService struct {
	recorder *ActivityRecorder
}

// NewTaskService creates a new task service instance
func NewTaskService() *TaskService {
	return &TaskService{
		recorder: NewActivityRecorder(),
	}
}

// CreateTask creates a task under a project the caller owns and
// records the paired create activity
func (s *TaskService) CreateTask(userID string, kind models.TaskKind, projectID uint, req dto.CreateTaskRequest) (models.Task, error) {
	if !kind.Valid() {
		return models.Task{}, newValidationError("kind", fmt.Sprintf("unknown task kind %q", kind))
	}
	if strings.TrimSpace(req.Description) == "" {
		return models.Task{}, newValidationError("description", "description is required")
	}

	status := req.Status
	if status == "" {
		status = kind.Spec().DefaultStatus
	}
	if !kind.ValidStatus(status) {
		return models.Task{}, newValidationError("status",
			fmt.Sprintf("invalid status %q for %s", status, kind))
	}

	task := models.Task{
		ProjectID:   projectID,
		Kind:        kind,
		Description: req.Description,
		Status:      status,
		Tags:        models.StringList(req.Tags),
	}
	if req.Rank != nil {
		task.Rank = *req.Rank
	}
	if task.Tags == nil {
		task.Tags = models.StringList{}
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// The parent must be owned by the caller for any child
		// mutation to succeed
		if _, err := repositories.NewProjectRepository(tx).FindOwned(projectID, userID); err != nil {
			return notFoundOr(err)
		}
		if err := repositories.NewTaskRepository(tx).Create(&task); err != nil {
			return err
		}
		return s.recorder.TaskCreated(tx, &task)
	})
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask applies a sparse patch to an owned task. An empty patch
// still succeeds and still writes an update activity.
func (s *TaskService) UpdateTask(userID string, kind models.TaskKind, id uint, req dto.UpdateTaskRequest) (models.Task, error) {
	if !kind.Valid() {
		return models.Task{}, newValidationError("kind", fmt.Sprintf("unknown task kind %q", kind))
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return models.Task{}, newValidationError("description", "description cannot be empty")
	}
	if req.Status != nil && !kind.ValidStatus(*req.Status) {
		return models.Task{}, newValidationError("status",
			fmt.Sprintf("invalid status %q for %s", *req.Status, kind))
	}

	var task models.Task
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		taskRepo := repositories.NewTaskRepository(tx)

		var err error
		task, err = taskRepo.FindOwned(id, kind, userID)
		if err != nil {
			return notFoundOr(err)
		}

		if req.Description != nil {
			task.Description = *req.Description
		}
		if req.Status != nil {
			task.Status = *req.Status
		}
		if req.Rank != nil {
			task.Rank = *req.Rank
		}
		if req.Tags != nil {
			task.Tags = models.StringList(*req.Tags)
		}

		if err := taskRepo.Save(&task); err != nil {
			return err
		}
		return s.recorder.TaskUpdated(tx, &task)
	})
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTaskStatus flips a task's status through the dedicated
// status endpoint and records it as a status change rather than a
// general update
func (s *TaskService) UpdateTaskStatus(userID string, kind models.TaskKind, id uint, status string) (models.Task, error) {
	if !kind.Valid() {
		return models.Task{}, newValidationError("kind", fmt.Sprintf("unknown task kind %q", kind))
	}
	if !kind.ValidStatus(status) {
		return models.Task{}, newValidationError("status",
			fmt.Sprintf("invalid status %q for %s", status, kind))
	}

	var task models.Task
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		taskRepo := repositories.NewTaskRepository(tx)

		var err error
		task, err = taskRepo.FindOwned(id, kind, userID)
		if err != nil {
			return notFoundOr(err)
		}

		task.Status = status
		if err := taskRepo.Save(&task); err != nil {
			return err
		}
		return s.recorder.TaskStatusChanged(tx, &task)
	})
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// DeleteTask removes an owned task, capturing its description for the
// audit row before the delete. Deleting a task that does not exist
// (or is not owned by the caller) is an idempotent no-op, uniformly
// across all three kinds.
func (s *TaskService) DeleteTask(userID string, kind models.TaskKind, id uint) error {
	if !kind.Valid() {
		return newValidationError("kind", fmt.Sprintf("unknown task kind %q", kind))
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		taskRepo := repositories.NewTaskRepository(tx)

		task, err := taskRepo.FindOwned(id, kind, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := taskRepo.Delete(task.ID, kind); err != nil {
			return err
		}
		return s.recorder.TaskDeleted(tx, &task)
	})
}
