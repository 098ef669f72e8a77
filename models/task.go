package models

import (
	"time"
)

// TaskKind discriminates the three structurally identical backlog
// entry types. They share one table and one code path; the per-kind
// differences live in kindSpecs.
type TaskKind string

const (
	TaskKindFeature     TaskKind = "feature"
	TaskKindBug         TaskKind = "bug"
	TaskKindImprovement TaskKind = "improvement"
)

// Task statuses. Features and improvements move pending -> completed,
// bugs move open -> fixed.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusOpen      = "open"
	StatusFixed     = "fixed"
)

// TaskKindSpec captures everything that differs between the kinds.
type TaskKindSpec struct {
	DefaultStatus string
	Statuses      []string
	CreateVerb    string
}

var kindSpecs = map[TaskKind]TaskKindSpec{
	TaskKindFeature: {
		DefaultStatus: StatusPending,
		Statuses:      []string{StatusPending, StatusCompleted},
		CreateVerb:    "Added new feature",
	},
	TaskKindBug: {
		DefaultStatus: StatusOpen,
		Statuses:      []string{StatusOpen, StatusFixed},
		CreateVerb:    "Reported new bug",
	},
	TaskKindImprovement: {
		DefaultStatus: StatusPending,
		Statuses:      []string{StatusPending, StatusCompleted},
		CreateVerb:    "Suggested improvement",
	},
}

// Valid reports whether k is one of the three known kinds.
func (k TaskKind) Valid() bool {
	_, ok := kindSpecs[k]
	return ok
}

// Spec returns the per-kind defaults and audit phrasing.
func (k TaskKind) Spec() TaskKindSpec {
	return kindSpecs[k]
}

// ValidStatus reports whether status is allowed for this kind.
func (k TaskKind) ValidStatus(status string) bool {
	for _, s := range kindSpecs[k].Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// Task represents one backlog entry (feature, bug or improvement)
// under a project. ProjectID is immutable after creation.
type Task struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	ProjectID   uint       `json:"projectId" gorm:"not null;index"`
	Kind        TaskKind   `json:"-" gorm:"type:varchar(20);not null;index"`
	Description string     `json:"description" gorm:"not null"`
	Status      string     `json:"status" gorm:"type:varchar(20);not null"`
	Rank        int        `json:"rank" gorm:"default:0"`
	Tags        StringList `json:"tags" gorm:"type:text"`
	CreatedAt   time.Time  `json:"createdAt"`

	// Relations
	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}
