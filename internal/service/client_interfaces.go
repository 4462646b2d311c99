package service

import (
	"context"

	"github.com/MKhiriev/smoke-stack/models"
)

// DataSource tells where the client collection was loaded from.
type DataSource int

const (
	SourceServer DataSource = iota
	SourceCache
	SourceBundled
)

func (s DataSource) String() string {
	switch s {
	case SourceServer:
		return "server"
	case SourceCache:
		return "cache"
	case SourceBundled:
		return "bundled"
	default:
		return "unknown"
	}
}

// Snapshot is the client collection after an operation.
type Snapshot struct {
	Strains []models.Strain

	// Online is true when the API answered the operation with a 2xx status.
	Online bool

	// Source is set by Load.
	Source DataSource

	// Cause is the mapped API error when the operation fell back to local
	// state, nil otherwise.
	Cause error
}

// ClientCatalogService is the offline-capable data layer of the client. Every
// operation tries the API once and falls back to local state; the resulting
// collection is always persisted to the local cache.
type ClientCatalogService interface {
	// Load fetches the catalog, falling back to the cached collection and,
	// when nothing was ever cached, to the bundled dataset.
	Load(ctx context.Context) (Snapshot, error)

	// Add creates a record. A blank image gets the configured default.
	Add(ctx context.Context, in models.StrainInput) (Snapshot, error)

	// Edit overwrites the record with the given key.
	Edit(ctx context.Context, key string, in models.StrainInput) (Snapshot, error)

	// Remove deletes the record with the given key.
	Remove(ctx context.Context, key string) (Snapshot, error)

	// Strains returns a copy of the current collection.
	Strains() []models.Strain

	// Clear drops the collection and its cache entry.
	Clear(ctx context.Context) error
}

// ClientAuthService is the placeholder authentication flow. Sessions are
// synthesized on the device; no server is involved.
type ClientAuthService interface {
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)
	Register(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Restore returns the cached session or ErrNoSession.
	Restore(ctx context.Context) (models.Session, error)

	Logout(ctx context.Context) error

	// DeleteAccount requires the literal confirmation "DELETE".
	DeleteAccount(ctx context.Context, confirmation string) error
}

// ClientPreferencesService persists UI preferences.
type ClientPreferencesService interface {
	Theme(ctx context.Context) models.Theme
	SetTheme(ctx context.Context, theme models.Theme) error
}
