package service

import "errors"

var (
	ErrStrainNotFound      = errors.New("strain not found")
	ErrStrainAlreadyExists = errors.New("strain with this id already exists")

	ErrValidationNameAndTypeRequired = errors.New("name and type are required")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	// ErrServerUnavailable marks a mutation or load that could not reach the
	// API and was served from local state instead.
	ErrServerUnavailable = errors.New("server unavailable")

	ErrDeleteConfirmationRequired = errors.New("account deletion was not confirmed")
	ErrNoSession                  = errors.New("no placeholder session")
	ErrCachePersist               = errors.New("error persisting local cache")
	ErrCorruptCache               = errors.New("local cache holds invalid data")
)
