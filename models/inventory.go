package models

import (
	"fmt"
	"strconv"

	"gorm.io/datatypes"
)

// Inventory is an itemized list of records kept within a fond
type Inventory struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Number         int             `json:"number" gorm:"not null;uniqueIndex"`
	Postfix        string          `json:"postfix" gorm:"size:3;not null;default:''"`
	Type           InventoryType   `json:"type" gorm:"type:varchar(20);not null;default:''"`
	Electronic     bool            `json:"electronic" gorm:"not null;default:false"`
	LastGV         int             `json:"lastGv" gorm:"column:last_gv;not null;default:0"`
	StartDate      *datatypes.Date `json:"startDate,omitempty"`
	EndDate        *datatypes.Date `json:"endDate,omitempty"`
	StorageTerm    StorageTerm     `json:"storageTerm" gorm:"type:varchar(30);not null;default:''"`
	ItemsPerPeriod *int            `json:"itemsPerPeriod,omitempty"`
	TotalItems     *int            `json:"totalItems,omitempty"`
	FondID         uint            `json:"fondId" gorm:"not null;index"`

	// Relations
	Fond *Fond `json:"fond,omitempty" gorm:"foreignKey:FondID;references:InstitutionID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for Inventory model
func (Inventory) TableName() string {
	return "inventory_lists"
}

func (i Inventory) String() string {
	fond := strconv.FormatUint(uint64(i.FondID), 10)
	if i.Fond != nil {
		fond = i.Fond.String()
	}
	return fmt.Sprintf("%s, %d.US", fond, i.Number)
}
