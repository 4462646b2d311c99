package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/smoke-stack/internal/adapter"
	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/internal/store"
	"github.com/MKhiriev/smoke-stack/internal/utils"
	"github.com/MKhiriev/smoke-stack/internal/validators"
	"github.com/MKhiriev/smoke-stack/models"
)

// DeleteAccountConfirmation must be typed to delete the account.
const DeleteAccountConfirmation = "DELETE"

type clientAuthService struct {
	cache     store.LocalCache
	adapter   adapter.ServerAdapter
	catalog   ClientCatalogService
	validator validators.Validator

	now    func() time.Time
	logger *logger.Logger
}

// NewClientAuthService builds the placeholder auth flow. The session token is
// handed to serverAdapter so requests carry it; catalog is cleared when the
// account is deleted.
func NewClientAuthService(cache store.LocalCache, serverAdapter adapter.ServerAdapter, catalog ClientCatalogService, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		cache:     cache,
		adapter:   serverAdapter,
		catalog:   catalog,
		validator: validators.NewCredentialsValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if err := a.validator.Validate(ctx, creds, validators.LoginFields...); err != nil {
		return models.Session{}, err
	}
	return a.startSession(ctx, creds.Email)
}

func (a *clientAuthService) Register(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if err := a.validator.Validate(ctx, creds, validators.RegistrationFields...); err != nil {
		return models.Session{}, err
	}
	return a.startSession(ctx, creds.Email)
}

// startSession synthesizes a user and an unsigned token and caches both.
func (a *clientAuthService) startSession(ctx context.Context, email string) (models.Session, error) {
	now := a.now()
	user := models.SessionUser{
		Email: email,
		ID:    "user_" + strconv.FormatInt(now.UnixMilli(), 10),
	}

	token, err := utils.GeneratePlaceholderToken(user, now)
	if err != nil {
		return models.Session{}, fmt.Errorf("error creating session token: %w", err)
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return models.Session{}, fmt.Errorf("error encoding session user: %w", err)
	}

	if err = a.cache.Put(ctx, store.KeyAuthToken, token); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrCachePersist, err)
	}
	if err = a.cache.Put(ctx, store.KeyUser, string(userJSON)); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrCachePersist, err)
	}

	a.adapter.SetToken(token)
	a.logger.Info().Str("func", "*clientAuthService.startSession").Str("user_id", user.ID).Msg("placeholder session started")

	return models.Session{Token: token, User: user}, nil
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	token, err := a.cache.Get(ctx, store.KeyAuthToken)
	if errors.Is(err, store.ErrCacheKeyNotFound) {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error reading session token: %w", err)
	}

	rawUser, err := a.cache.Get(ctx, store.KeyUser)
	if errors.Is(err, store.ErrCacheKeyNotFound) {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error reading session user: %w", err)
	}

	var user models.SessionUser
	if err = json.Unmarshal([]byte(rawUser), &user); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrCorruptCache, err)
	}

	a.adapter.SetToken(token)
	return models.Session{Token: token, User: user}, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	if err := a.cache.Delete(ctx, store.KeyAuthToken); err != nil {
		return fmt.Errorf("%w: %w", ErrCachePersist, err)
	}
	if err := a.cache.Delete(ctx, store.KeyUser); err != nil {
		return fmt.Errorf("%w: %w", ErrCachePersist, err)
	}
	return nil
}

// DeleteAccount clears the session and the cached collection. No request is
// sent to the server.
func (a *clientAuthService) DeleteAccount(ctx context.Context, confirmation string) error {
	if confirmation != DeleteAccountConfirmation {
		return ErrDeleteConfirmationRequired
	}

	if err := a.Logout(ctx); err != nil {
		return err
	}
	if err := a.catalog.Clear(ctx); err != nil {
		return err
	}

	a.logger.Info().Str("func", "*clientAuthService.DeleteAccount").Msg("local account data deleted")
	return nil
}
