package validators

import (
	"context"

	"github.com/MKhiriev/smoke-stack/models"
)

// Field name constants used to restrict strain validation to a subset of
// fields.
const (
	// FieldName targets the record's display name.
	FieldName = "name"

	// FieldType targets the record's category.
	FieldType = "type"
)

// StrainValidator implements [Validator] for catalog records and their
// create/update inputs.
//
// Name and type must be non-empty. Values are checked as given: a name made
// of spaces only is accepted.
type StrainValidator struct{}

// NewStrainValidator constructs a new StrainValidator and returns it as the
// Validator interface.
func NewStrainValidator() Validator {
	return &StrainValidator{}
}

// Validate accepts models.StrainInput and models.Strain, by value or pointer.
// Without fields both name and type are checked.
func (v *StrainValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StrainInput:
		return v.validate(value.Name, value.Type, fields...)
	case *models.StrainInput:
		if value == nil {
			return ErrNameAndTypeRequired
		}
		return v.validate(value.Name, value.Type, fields...)
	case models.Strain:
		return v.validate(value.Name, value.Type, fields...)
	case *models.Strain:
		if value == nil {
			return ErrNameAndTypeRequired
		}
		return v.validate(value.Name, value.Type, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *StrainValidator) validate(name, strainType string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldType}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if name == "" {
				return ErrNameAndTypeRequired
			}
		case FieldType:
			if strainType == "" {
				return ErrNameAndTypeRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
