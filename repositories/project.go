package repositories

import (
	"github.com/devtrack-simple/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance.
// Pass a transaction handle to run every operation inside it.
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindByUserID retrieves all projects belonging to a user, newest first
func (r *ProjectRepository) FindByUserID(userID string) ([]models.Project, error) {
	var projects []models.Project
	result := r.db.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&projects)
	return projects, result.Error
}

// FindOwned retrieves a project by ID scoped to its owner. A project
// owned by someone else is indistinguishable from a missing one.
func (r *ProjectRepository) FindOwned(id uint, userID string) (models.Project, error) {
	var project models.Project
	result := r.db.Where("id = ? AND user_id = ?", id, userID).First(&project)
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// Save persists all fields of an existing project
func (r *ProjectRepository) Save(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project together with its tasks and activities.
// Children go first so a partial failure never orphans audit rows.
func (r *ProjectRepository) Delete(id uint) error {
	if err := r.db.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("project_id = ?", id).Delete(&models.Activity{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

// CountByUserID counts projects belonging to a user
func (r *ProjectRepository) CountByUserID(userID string) (int64, error) {
	var count int64
	result := r.db.Model(&models.Project{}).Where("user_id = ?", userID).Count(&count)
	return count, result.Error
}
