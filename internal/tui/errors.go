// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/smoke-stack/internal/app"
	"github.com/MKhiriev/smoke-stack/internal/service"
	"github.com/MKhiriev/smoke-stack/internal/validators"
)

// humanizeError turns a client service error into the text shown to the
// user.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrValidationNameAndTypeRequired),
		errors.Is(err, validators.ErrNameAndTypeRequired):
		return app.MsgNameAndTypeRequired
	case errors.Is(err, service.ErrStrainAlreadyExists):
		return app.MsgStrainAlreadyExists
	case errors.Is(err, service.ErrStrainNotFound):
		return app.MsgStrainNotFound
	case errors.Is(err, service.ErrDeleteConfirmationRequired):
		return app.MsgTypeDeleteToConfirm
	case errors.Is(err, service.ErrServerUnavailable):
		return app.MsgServerUnavailableHint
	}
	return err.Error()
}
