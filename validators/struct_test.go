package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opex-tool/models"
)

func TestValidateStructProject(t *testing.T) {
	require.NoError(t, ValidateStruct(models.Project{Name: "First1"}))
	require.NoError(t, ValidateStruct(models.Project{Name: "Arhīvs2024"}))

	cases := map[string]struct {
		name string
		want string
	}{
		"empty":       {"", NoValue},
		"too long":    {strings.Repeat("a", 51), WrongValue},
		"punctuation": {"new_project", WrongValue},
		"spaces":      {"new project", WrongValue},
	}
	for label, tc := range cases {
		t.Run(label, func(t *testing.T) {
			err := ValidateStruct(models.Project{Name: tc.name})

			var fieldErrs FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, FieldErrors{"name": tc.want}, fieldErrs)
		})
	}
}

func TestValidateStructInstitution(t *testing.T) {
	ok := models.Institution{RegNr: 1, Name: "q", Creator: "A. Ozols"}
	require.NoError(t, ValidateStruct(ok))

	bad := ok
	bad.Creator = strings.Repeat("c", 31)
	bad.SignerPosition = strings.Repeat("s", 201)

	var fieldErrs FieldErrors
	require.ErrorAs(t, ValidateStruct(bad), &fieldErrs)
	assert.Equal(t, FieldErrors{"creator": WrongValue, "signerPosition": WrongValue}, fieldErrs)
}

func TestValidateStructFond(t *testing.T) {
	fond := models.Fond{
		FondCode:         "1",
		ArchAbbreviation: "LNA",
		ArchTitle:        "Valsts arhivs",
		FondNumber:       400,
		FondTitle:        "Valsts mezi",
	}
	require.NoError(t, ValidateStruct(fond))

	fond.ArchAbbreviation = "TOOLONG"
	fond.FondCode = ""

	var fieldErrs FieldErrors
	require.ErrorAs(t, ValidateStruct(fond), &fieldErrs)
	assert.Equal(t, FieldErrors{"archAbbreviation": WrongValue, "fondCode": NoValue}, fieldErrs)
}

func TestValidateStructNonStruct(t *testing.T) {
	err := ValidateStruct("not a struct")
	require.Error(t, err)

	var fieldErrs FieldErrors
	assert.NotErrorAs(t, err, &fieldErrs)
}
