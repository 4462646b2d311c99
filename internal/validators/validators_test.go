// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/smoke-stack/models"
)

// ---------------------------------------------------------------------------
// StrainValidator
// ---------------------------------------------------------------------------

func TestNewStrainValidator(t *testing.T) {
	require.NotNil(t, NewStrainValidator())
}

func TestStrainValidator_Validate(t *testing.T) {
	v := NewStrainValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid input", obj: models.StrainInput{Name: "Blue Dream", Type: "hybrid"}},
		{name: "valid input pointer", obj: &models.StrainInput{Name: "Blue Dream", Type: "hybrid"}},
		{name: "valid strain", obj: models.Strain{Name: "x", Type: "y"}},
		{name: "whitespace name is accepted", obj: models.StrainInput{Name: "   ", Type: "indica"}},
		{name: "unknown type value is accepted", obj: models.StrainInput{Name: "x", Type: "ruderalis"}},
		{name: "missing name", obj: models.StrainInput{Type: "indica"}, wantErr: ErrNameAndTypeRequired},
		{name: "missing type", obj: models.StrainInput{Name: "x"}, wantErr: ErrNameAndTypeRequired},
		{name: "missing both", obj: &models.Strain{}, wantErr: ErrNameAndTypeRequired},
		{name: "nil pointer", obj: (*models.StrainInput)(nil), wantErr: ErrNameAndTypeRequired},
		{name: "only name checked", obj: models.StrainInput{Name: "x"}, fields: []string{FieldName}},
		{name: "unknown field", obj: models.StrainInput{Name: "x", Type: "y"}, fields: []string{"stoner"}, wantErr: ErrUnknownField},
		{name: "unsupported type", obj: "strain", wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// CredentialsValidator
// ---------------------------------------------------------------------------

func TestCredentialsValidator_Login(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Credentials{Email: "a@b.c", PIN: "x"}, LoginFields...))
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Email: "a@b.c"}, LoginFields...), ErrEmailAndPINRequired)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{PIN: "1234"}, LoginFields...), ErrEmailAndPINRequired)
}

func TestCredentialsValidator_Registration(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{name: "valid", creds: models.Credentials{Email: "a@b.c", PIN: "1234", ConfirmPIN: "1234"}},
		{name: "ten digits", creds: models.Credentials{Email: "a@b.c", PIN: "0123456789", ConfirmPIN: "0123456789"}},
		{name: "missing confirmation", creds: models.Credentials{Email: "a@b.c", PIN: "1234"}, wantErr: ErrAllFieldsRequired},
		{name: "missing email", creds: models.Credentials{PIN: "1234", ConfirmPIN: "1234"}, wantErr: ErrAllFieldsRequired},
		{name: "too short", creds: models.Credentials{Email: "a@b.c", PIN: "123", ConfirmPIN: "123"}, wantErr: ErrPINLength},
		{name: "too long", creds: models.Credentials{Email: "a@b.c", PIN: "12345678901", ConfirmPIN: "12345678901"}, wantErr: ErrPINLength},
		{name: "letters", creds: models.Credentials{Email: "a@b.c", PIN: "12ab", ConfirmPIN: "12ab"}, wantErr: ErrPINDigitsOnly},
		{name: "length checked before digits", creds: models.Credentials{Email: "a@b.c", PIN: "ab", ConfirmPIN: "ab"}, wantErr: ErrPINLength},
		{name: "mismatch", creds: models.Credentials{Email: "a@b.c", PIN: "1234", ConfirmPIN: "4321"}, wantErr: ErrPINsDoNotMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.creds)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCredentialsValidator_ErrorMessages(t *testing.T) {
	assert.Equal(t, "PIN must be 4-10 digits", ErrPINLength.Error())
	assert.Equal(t, "PINs do not match", ErrPINsDoNotMatch.Error())
}

func TestCredentialsValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewCredentialsValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}
