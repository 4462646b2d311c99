package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Keys of the client's local cache.
const (
	KeyStrains   = "smokestack_strains"
	KeyAuthToken = "smokestack_auth_token"
	KeyUser      = "smokestack_user"
	KeyTheme     = "smokestack_theme"
)

// LocalCache is the client's persistent key/value store. Values are opaque
// strings; callers serialize structured values themselves.
type LocalCache interface {
	// Get returns the value under key or ErrCacheKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
