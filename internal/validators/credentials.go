package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/smoke-stack/models"
)

const (
	minPINLength = 4
	maxPINLength = 10
)

// Field name constants for [CredentialsValidator]. Checks run in the order
// the fields are given and stop at the first failure.
const (
	// FieldEmailAndPIN requires email and PIN (login).
	FieldEmailAndPIN = "email_and_pin"

	// FieldAllCredentials requires email, PIN and its confirmation (registration).
	FieldAllCredentials = "all_credentials"

	// FieldPINLength bounds the PIN to 4-10 characters.
	FieldPINLength = "pin_length"

	// FieldPINDigits allows only ASCII digits in the PIN.
	FieldPINDigits = "pin_digits"

	// FieldPINConfirmation requires the confirmation to equal the PIN.
	FieldPINConfirmation = "pin_confirmation"
)

// LoginFields is the field set checked on login.
var LoginFields = []string{FieldEmailAndPIN}

// RegistrationFields is the field set checked on registration and the
// default when no fields are given.
var RegistrationFields = []string{FieldAllCredentials, FieldPINLength, FieldPINDigits, FieldPINConfirmation}

// CredentialsValidator implements [Validator] for models.Credentials.
type CredentialsValidator struct{}

// NewCredentialsValidator constructs a new CredentialsValidator and returns it
// as the Validator interface.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var c models.Credentials
	switch value := obj.(type) {
	case models.Credentials:
		c = value
	case *models.Credentials:
		if value == nil {
			return ErrAllFieldsRequired
		}
		c = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = RegistrationFields
	}

	for _, f := range fields {
		switch f {
		case FieldEmailAndPIN:
			if c.Email == "" || c.PIN == "" {
				return ErrEmailAndPINRequired
			}
		case FieldAllCredentials:
			if c.Email == "" || c.PIN == "" || c.ConfirmPIN == "" {
				return ErrAllFieldsRequired
			}
		case FieldPINLength:
			if n := utf8.RuneCountInString(c.PIN); n < minPINLength || n > maxPINLength {
				return ErrPINLength
			}
		case FieldPINDigits:
			if !onlyDigits(c.PIN) {
				return ErrPINDigitsOnly
			}
		case FieldPINConfirmation:
			if c.PIN != c.ConfirmPIN {
				return ErrPINsDoNotMatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func onlyDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
