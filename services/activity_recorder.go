package services

import (
	"fmt"

	"github.com/devtrack-simple/models"
	"github.com/devtrack-simple/repositories"
	"gorm.io/gorm"
)

// ActivityRecorder turns a mutation outcome into one human-readable
// audit row. Descriptions are derived from the entity's own persisted
// fields, never from caller-supplied text, so the feed cannot be fed
// misleading entries. Only the mutation services call into it, always
// inside the transaction that performed the entity write.
type ActivityRecorder struct{}

// NewActivityRecorder creates a new activity recorder instance
func NewActivityRecorder() *ActivityRecorder {
	return &ActivityRecorder{}
}

// ProjectCreated records the creation of a project
func (rec *ActivityRecorder) ProjectCreated(tx *gorm.DB, project *models.Project) error {
	return rec.append(tx, models.Activity{
		ProjectID:   project.ID,
		Type:        models.ActivityCreate,
		Entity:      models.EntityProject,
		EntityID:    &project.ID,
		Description: fmt.Sprintf("Created project %q", project.Name),
	})
}

// ProjectUpdated records a settings change on a project
func (rec *ActivityRecorder) ProjectUpdated(tx *gorm.DB, project *models.Project) error {
	return rec.append(tx, models.Activity{
		ProjectID:   project.ID,
		Type:        models.ActivityUpdate,
		Entity:      models.EntityProject,
		EntityID:    &project.ID,
		Description: fmt.Sprintf("Updated project %q settings", project.Name),
	})
}

// TaskCreated records the creation of a feature, bug or improvement
func (rec *ActivityRecorder) TaskCreated(tx *gorm.DB, task *models.Task) error {
	return rec.append(tx, models.Activity{
		ProjectID:   task.ProjectID,
		Type:        models.ActivityCreate,
		Entity:      models.ActivityEntity(task.Kind),
		EntityID:    &task.ID,
		Description: fmt.Sprintf("%s: %q", task.Kind.Spec().CreateVerb, task.Description),
	})
}

// TaskUpdated records an update to a task, referencing its current
// description and status
func (rec *ActivityRecorder) TaskUpdated(tx *gorm.DB, task *models.Task) error {
	return rec.append(tx, models.Activity{
		ProjectID: task.ProjectID,
		Type:      models.ActivityUpdate,
		Entity:    models.ActivityEntity(task.Kind),
		EntityID:  &task.ID,
		Description: fmt.Sprintf("Updated %s: %q (status: %s)",
			task.Kind, task.Description, task.Status),
	})
}

// TaskStatusChanged records a flip through the dedicated status
// endpoint
func (rec *ActivityRecorder) TaskStatusChanged(tx *gorm.DB, task *models.Task) error {
	return rec.append(tx, models.Activity{
		ProjectID: task.ProjectID,
		Type:      models.ActivityStatusChange,
		Entity:    models.ActivityEntity(task.Kind),
		EntityID:  &task.ID,
		Description: fmt.Sprintf("Changed %s status to %q: %q",
			task.Kind, task.Status, task.Description),
	})
}

// TaskDeleted records the deletion of a task, using the snapshot read
// before the row was removed
func (rec *ActivityRecorder) TaskDeleted(tx *gorm.DB, task *models.Task) error {
	return rec.append(tx, models.Activity{
		ProjectID:   task.ProjectID,
		Type:        models.ActivityDelete,
		Entity:      models.ActivityEntity(task.Kind),
		EntityID:    &task.ID,
		Description: fmt.Sprintf("Deleted %s: %q", task.Kind, task.Description),
	})
}

func (rec *ActivityRecorder) append(tx *gorm.DB, activity models.Activity) error {
	return repositories.NewActivityRepository(tx).Append(&activity)
}
