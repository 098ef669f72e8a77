package repositories

import (
	"github.com/devtrack-simple/models"
	"gorm.io/gorm"
)

// ActivityRepository handles database operations for the audit feed.
// Activities are append-only: there is deliberately no update or
// single-row delete here.
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository instance
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Append inserts a new activity row
func (r *ActivityRepository) Append(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

// FindRecentByProjectID retrieves the newest activities for a project.
// The id tiebreak keeps same-timestamp rows in insertion order.
func (r *ActivityRepository) FindRecentByProjectID(projectID uint, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	result := r.db.Where("project_id = ?", projectID).
		Order("created_at DESC, id DESC").Limit(limit).Find(&activities)
	return activities, result.Error
}

// CountByProjectID counts activities recorded for a project
func (r *ActivityRepository) CountByProjectID(projectID uint) (int64, error) {
	var count int64
	result := r.db.Model(&models.Activity{}).Where("project_id = ?", projectID).Count(&count)
	return count, result.Error
}
