package validators

import (
	"errors"

	"github.com/MKhiriev/smoke-stack/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameAndTypeRequired = errors.New("name and type are required")

	ErrEmailAndPINRequired = errors.New(app.MsgEnterEmailAndPIN)
	ErrAllFieldsRequired   = errors.New(app.MsgFillInAllFields)
	ErrPINLength           = errors.New(app.MsgPINLength)
	ErrPINDigitsOnly       = errors.New(app.MsgPINDigitsOnly)
	ErrPINsDoNotMatch      = errors.New(app.MsgPINsDoNotMatch)
)
