package validators

import (
	"encoding/json"
	"math"
	"slices"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/opex-tool/models"
)

// Error indicators reported per field
const (
	NoValue    = "no value supplied"
	WrongValue = "wrong value"
)

// FieldErrors maps a field name to the indicator explaining why it was rejected.
// Fields that passed are not present.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

// fieldValidator checks one submitted value and returns it normalized
type fieldValidator func(value any) (any, bool)

// inventoryValidators is the rule table for VVAIS inventory records. Adding a
// field means adding an entry here.
var inventoryValidators = map[string]fieldValidator{
	"number":       validateInteger,
	"postfix":      validatePostfix,
	"type":         validateInventoryType,
	"electronic":   validateBool,
	"last_gv":      validateInteger,
	"total_items":  validateInteger,
	"storage_term": validateStorageTerm,
}

// InventoryFields returns the names of every field ValidateInventory requires
func InventoryFields() []string {
	fields := make([]string, 0, len(inventoryValidators))
	for field := range inventoryValidators {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// ValidateInventory checks a VVAIS inventory record. Every rule runs even after a
// failure. On success it returns exactly the recognized fields, with integers
// normalized to int; unknown keys are dropped. On failure the error is a
// FieldErrors.
func ValidateInventory(fields map[string]any) (map[string]any, error) {
	errs := FieldErrors{}
	validated := make(map[string]any, len(inventoryValidators))

	for field, validate := range inventoryValidators {
		value, ok := fields[field]
		if !ok {
			errs[field] = NoValue
			continue
		}

		normalized, ok := validate(value)
		if !ok {
			errs[field] = WrongValue
			continue
		}
		validated[field] = normalized
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return validated, nil
}

// ValidateInventoryFields checks only the recognized fields that are present,
// for partial updates. Keys without a rule are copied through unchanged.
func ValidateInventoryFields(fields map[string]any) (map[string]any, error) {
	errs := FieldErrors{}
	out := make(map[string]any, len(fields))

	for field, value := range fields {
		validate, known := inventoryValidators[field]
		if !known {
			out[field] = value
			continue
		}

		normalized, ok := validate(value)
		if !ok {
			errs[field] = WrongValue
			continue
		}
		out[field] = normalized
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func validateInteger(value any) (any, bool) {
	v, ok := AsInt(value)
	if !ok {
		return nil, false
	}
	return v, true
}

// postfix must be a single letter
func validatePostfix(value any) (any, bool) {
	s, ok := value.(string)
	if !ok || utf8.RuneCountInString(s) != 1 {
		return nil, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) {
		return nil, false
	}
	return value, true
}

func validateInventoryType(value any) (any, bool) {
	s, ok := AsString(value)
	if !ok || !slices.Contains(models.InventoryTypes, models.InventoryType(s)) {
		return nil, false
	}
	return value, true
}

func validateStorageTerm(value any) (any, bool) {
	s, ok := AsString(value)
	if !ok || !slices.Contains(models.StorageTerms, models.StorageTerm(s)) {
		return nil, false
	}
	return value, true
}

func validateBool(value any) (any, bool) {
	if _, ok := value.(bool); !ok {
		return nil, false
	}
	return value, true
}

// AsInt accepts any Go integer kind or a json.Number holding an integer
func AsInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		if v > math.MaxInt || v < math.MinInt {
			return 0, false
		}
		return int(v), true
	case uint:
		if uint64(v) > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		if uint64(v) > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case uint64:
		if v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return AsInt(i)
	}
	return 0, false
}

// AsString accepts plain strings and the VVAIS classifier types
func AsString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case models.InventoryType:
		return string(v), true
	case models.StorageTerm:
		return string(v), true
	}
	return "", false
}
