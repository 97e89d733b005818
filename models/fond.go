package models

// Fond is an archival collection. Its primary key is the owning institution's id,
// so an institution holds at most one fond.
type Fond struct {
	InstitutionID    uint   `json:"institutionId" gorm:"primaryKey;autoIncrement:false"`
	FondCode         string `json:"fondCode" gorm:"size:30;not null;uniqueIndex" validate:"required,max=30"`
	ArchAbbreviation string `json:"archAbbreviation" gorm:"size:5;not null" validate:"required,max=5"`
	ArchTitle        string `json:"archTitle" gorm:"size:100;not null" validate:"required,max=100"`
	FondNumber       int    `json:"fondNumber" gorm:"not null"`
	FondTitle        string `json:"fondTitle" gorm:"size:500;not null" validate:"required,max=500"`
	Subfond          bool   `json:"subfond" gorm:"not null;default:false"`

	// Relations
	Institution *Institution `json:"institution,omitempty" gorm:"foreignKey:InstitutionID;constraint:OnDelete:CASCADE" validate:"-"`
}

// TableName sets the table name for Fond model
func (Fond) TableName() string {
	return "fonds"
}

func (f Fond) String() string {
	return f.FondCode
}
