// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the SmokeStack API.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from HTTP. Error values defined in errors.go are mapped from HTTP
// status codes so that callers can use [errors.Is]; any failure to reach the
// server at all wraps [ErrServerUnavailable].
package adapter

import (
	"context"

	"github.com/MKhiriev/smoke-stack/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the SmokeStack API.
type ServerAdapter interface {
	// SetToken stores the placeholder session token attached to subsequent
	// requests as a bearer token. An empty token removes the header.
	SetToken(token string)

	// Token returns the stored token or an empty string.
	Token() string

	// ListStrains fetches the whole catalog, newest first.
	ListStrains(ctx context.Context) ([]models.Strain, error)

	// GetStrain fetches one record by internal id or alias.
	GetStrain(ctx context.Context, id string) (models.Strain, error)

	// CreateStrain submits a new record and returns it as stored.
	CreateStrain(ctx context.Context, in models.StrainInput) (models.Strain, error)

	// UpdateStrain overwrites the record identified by id.
	UpdateStrain(ctx context.Context, id string, in models.StrainInput) (models.Strain, error)

	// DeleteStrain removes the record identified by id.
	DeleteStrain(ctx context.Context, id string) error

	// Health calls GET /health.
	Health(ctx context.Context) (models.HealthResponse, error)
}
