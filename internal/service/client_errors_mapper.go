// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/smoke-stack/internal/adapter"
	"github.com/MKhiriev/smoke-stack/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Errors it does not recognise are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrServerUnavailable):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgNameAndTypeRequired:
			return ErrValidationNameAndTypeRequired
		case app.MsgStrainAlreadyExists:
			return ErrStrainAlreadyExists
		}

	case errors.Is(err, adapter.ErrConflict):
		return ErrStrainAlreadyExists

	case errors.Is(err, adapter.ErrNotFound):
		return ErrStrainNotFound
	}

	return err
}

// extractBody returns the text after the last ": " of the error, which is
// where the adapter puts the server's message.
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
