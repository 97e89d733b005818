package models

import "fmt"

// Institution is the archive-owning body registered under a project
type Institution struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	RegNr           int    `json:"regNr" gorm:"column:reg_nr;not null;uniqueIndex"`
	Name            string `json:"name" gorm:"size:200;not null;uniqueIndex" validate:"required,max=200"`
	Creator         string `json:"creator" gorm:"size:30;not null;default:''" validate:"max=30"`
	CreatorPosition string `json:"creatorPosition" gorm:"size:200;not null;default:''" validate:"max=200"`
	Signer          string `json:"signer" gorm:"size:30;not null;default:''" validate:"max=30"`
	SignerPosition  string `json:"signerPosition" gorm:"size:200;not null;default:''" validate:"max=200"`
	ProjectID       uint   `json:"projectId" gorm:"not null;uniqueIndex"`

	// Relations
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" validate:"-"`
}

// TableName sets the table name for Institution model
func (Institution) TableName() string {
	return "institutions"
}

func (i Institution) String() string {
	return fmt.Sprintf("%s, %d", i.Name, i.RegNr)
}
