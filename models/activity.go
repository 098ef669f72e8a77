package models

import (
	"time"
)

// ActivityType represents the kind of mutation an activity records
type ActivityType string

const (
	ActivityCreate       ActivityType = "create"
	ActivityUpdate       ActivityType = "update"
	ActivityDelete       ActivityType = "delete"
	ActivityStatusChange ActivityType = "status_change"
)

// ActivityEntity names the entity a mutation touched
type ActivityEntity string

const (
	EntityProject     ActivityEntity = "project"
	EntityFeature     ActivityEntity = "feature"
	EntityBug         ActivityEntity = "bug"
	EntityImprovement ActivityEntity = "improvement"
)

// Activity is one append-only audit record scoped to a project.
// Rows are never updated or deleted except by the owning project's
// cascade.
type Activity struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	ProjectID   uint           `json:"projectId" gorm:"not null;index"`
	Type        ActivityType   `json:"type" gorm:"type:varchar(20);not null"`
	Entity      ActivityEntity `json:"entity" gorm:"type:varchar(20);not null"`
	EntityID    *uint          `json:"entityId"`
	Description string         `json:"description" gorm:"not null"`
	CreatedAt   time.Time      `json:"createdAt"`
}
