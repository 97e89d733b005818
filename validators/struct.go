package validators

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json name so errors read like the record keys
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateStruct runs the `validate` tag rules of a model. A rule violation is
// returned as FieldErrors; anything else (a nil or non-struct value) is returned
// as is.
func ValidateStruct(v any) error {
	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fieldErrs := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			fieldErrs[fe.Field()] = NoValue
			continue
		}
		fieldErrs[fe.Field()] = WrongValue
	}
	return fieldErrs
}
