package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringers(t *testing.T) {
	project := Project{Name: "test"}
	institution := Institution{Name: "Latvian State Archive", RegNr: 90000}
	fond := Fond{FondCode: "LVVA-1"}

	assert.Equal(t, "test", project.String())
	assert.Equal(t, "Latvian State Archive, 90000", institution.String())
	assert.Equal(t, "LVVA-1", fond.String())

	inv := Inventory{Number: 2, FondID: 7}
	assert.Equal(t, "7, 2.US", inv.String())

	inv.Fond = &fond
	assert.Equal(t, "LVVA-1, 2.US", inv.String())
}

func TestProjectIsValidated(t *testing.T) {
	assert.False(t, Project{}.IsValidated())
	assert.True(t, Project{Validated: true}.IsValidated())
}

func TestInventoryMedia(t *testing.T) {
	assert.Equal(t, MediaPaper, Inventory{}.Media())
	assert.Equal(t, MediaElectronic, Inventory{Electronic: true}.Media())
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "projects", Project{}.TableName())
	assert.Equal(t, "institutions", Institution{}.TableName())
	assert.Equal(t, "fonds", Fond{}.TableName())
	assert.Equal(t, "inventory_lists", Inventory{}.TableName())
}
