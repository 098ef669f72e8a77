package repositories

import (
	"github.com/devtrack-simple/models"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for backlog tasks
// (features, bugs and improvements)
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// FindByProjectID retrieves all tasks of one kind under a project,
// highest rank first
func (r *TaskRepository) FindByProjectID(projectID uint, kind models.TaskKind) ([]models.Task, error) {
	var tasks []models.Task
	result := r.db.Where("project_id = ? AND kind = ?", projectID, kind).
		Order("rank DESC, id ASC").Find(&tasks)
	return tasks, result.Error
}

// FindByOwner retrieves every task across all projects of a user,
// in one query, for building the dashboard listing
func (r *TaskRepository) FindByOwner(userID string) ([]models.Task, error) {
	var tasks []models.Task
	result := r.db.Select("tasks.*").
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("projects.user_id = ?", userID).
		Order("tasks.rank DESC, tasks.id ASC").Find(&tasks)
	return tasks, result.Error
}

// FindOwned retrieves a task by ID and kind, scoped to the owner of
// its parent project
func (r *TaskRepository) FindOwned(id uint, kind models.TaskKind, userID string) (models.Task, error) {
	var task models.Task
	result := r.db.Select("tasks.*").
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("tasks.id = ? AND tasks.kind = ? AND projects.user_id = ?", id, kind, userID).
		First(&task)
	return task, result.Error
}

// Create inserts a new task into the database
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// Save persists all fields of an existing task
func (r *TaskRepository) Save(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete removes a task from the database
func (r *TaskRepository) Delete(id uint, kind models.TaskKind) error {
	return r.db.Where("id = ? AND kind = ?", id, kind).Delete(&models.Task{}).Error
}
