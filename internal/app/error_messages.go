// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// SmokeStack server handlers, client services and views.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, shown to the user or logged to describe the outcome
// of an operation. Keeping them in one place keeps wording consistent between
// the API and the client.
package app

// HTTP API messages. These are part of the wire contract.
const (
	// MsgFailedToFetchStrains is returned when listing the catalog fails.
	MsgFailedToFetchStrains = "Failed to fetch strains"

	// MsgFailedToFetchStrain is returned when a single lookup fails for a
	// reason other than the record being absent.
	MsgFailedToFetchStrain = "Failed to fetch strain"

	// MsgStrainNotFound is returned when no record matches the identifier.
	MsgStrainNotFound = "Strain not found"

	// MsgNameAndTypeRequired is returned when name or type is empty.
	MsgNameAndTypeRequired = "Name and type are required"

	// MsgStrainAlreadyExists is returned when a create collides with an
	// existing identifier.
	MsgStrainAlreadyExists = "Strain with this ID already exists"

	MsgFailedToCreateStrain = "Failed to create strain"
	MsgFailedToUpdateStrain = "Failed to update strain"
	MsgFailedToDeleteStrain = "Failed to delete strain"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgRouteNotFound is returned for unknown paths and unsupported methods.
	MsgRouteNotFound = "Route not found"

	// MsgHealthOK is the status reported by the health endpoint.
	MsgHealthOK = "ok"
)

// Client-side messages shown in the terminal views.
const (
	MsgEnterEmailAndPIN      = "Please enter email and PIN"
	MsgFillInAllFields       = "Please fill in all fields"
	MsgPINLength             = "PIN must be 4-10 digits"
	MsgPINDigitsOnly         = "PIN must contain only numbers"
	MsgPINsDoNotMatch        = "PINs do not match"
	MsgTypeDeleteToConfirm   = `Please type "DELETE" to confirm`
	MsgOfflineNotice         = "Offline: changes are kept on this device only"
	MsgNoStrainsFound        = "No strains found"
	MsgNoStrainsMatchSearch  = "No strains match your search"
	MsgLoadingStrains        = "Loading strains..."
	MsgStrainSaved           = "Strain saved"
	MsgStrainDeleted         = "Strain deleted"
	MsgImageURLCopied        = "Image URL copied to clipboard"
	MsgAccountDeleted        = "Account deleted"
	MsgSignedOut             = "Signed out"
	MsgConfirmDeleteStrain   = "Delete this strain? (y/n)"
	MsgServerUnavailableHint = "Server unavailable, showing local data"
)
