package adapter

import "errors"

// Sentinel errors returned by [ServerAdapter]. Non-2xx statuses are mapped by
// mapHTTPError; transport failures are wrapped in ErrServerUnavailable.
var (
	ErrServerUnavailable   = errors.New("server unavailable")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
	ErrDecodingResponse    = errors.New("error decoding response")
)
