package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringList custom type for JSON storage of ordered string sequences
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	// Stored as a string so the text column type works on every dialect
	return string(raw), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

func (StringList) GormDataType() string {
	return "text"
}

// Project holds the documentation record for one side project.
// UserID is set at creation and never changes; only the owner may
// read or mutate a project or its children.
type Project struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	UserID          string     `json:"userId" gorm:"type:uuid;not null;index"`
	Name            string     `json:"name" gorm:"not null"`
	Description     string     `json:"description"`
	ProductionLink  string     `json:"productionLink"`
	RepoLink        string     `json:"repoLink"`
	FrontendLink    string     `json:"frontendLink"`
	BackendLink     string     `json:"backendLink"`
	FrontendDetails string     `json:"frontendDetails"`
	BackendDetails  string     `json:"backendDetails"`
	EnvDetails      string     `json:"envDetails"`
	TestUserDetails string     `json:"testUserDetails"`
	AuthDetails     string     `json:"authDetails"`
	SetupSteps      StringList `json:"setupSteps" gorm:"type:text"`
	CreatedAt       time.Time  `json:"createdAt"`

	// Relations
	User       User       `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Tasks      []Task     `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Activities []Activity `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (p Project) String() string {
	return fmt.Sprintf("Project(%d, %q)", p.ID, p.Name)
}
