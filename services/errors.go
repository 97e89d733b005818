package services

import "errors"

// Creation and update outcomes. Field validation failures are reported as
// validators.FieldErrors instead.
var (
	ErrProjectExists     = errors.New("project already exists")
	ErrInstitutionExists = errors.New("institution already exists")
	ErrFondExists        = errors.New("fond already exists")
	ErrInventoryExists   = errors.New("inventory already exists")

	ErrWrongValue        = errors.New("wrong value provided")
	ErrUnexpected        = errors.New("unexpected error occurred")
	ErrNotFound          = errors.New("record not found")
	ErrFieldNotUpdatable = errors.New("field cannot be updated")
)
