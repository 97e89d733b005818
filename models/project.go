package models

import (
	"time"
)

// Project is the root of the archive hierarchy
type Project struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50,alphanumunicode"`
	CreatedAt time.Time `json:"createdAt"`
	Validated bool      `json:"validated" gorm:"not null;default:false"`
}

// TableName sets the table name for Project model
func (Project) TableName() string {
	return "projects"
}

func (p Project) String() string {
	return p.Name
}

// IsValidated reports the in-memory validation flag
func (p Project) IsValidated() bool {
	return p.Validated
}
