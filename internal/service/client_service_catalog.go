package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/smoke-stack/internal/adapter"
	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/internal/store"
	"github.com/MKhiriev/smoke-stack/internal/validators"
	"github.com/MKhiriev/smoke-stack/models"
)

// BundledDataset returns the catalog shipped with the client.
type BundledDataset func() ([]models.Strain, error)

type clientCatalogService struct {
	adapter   adapter.ServerAdapter
	cache     store.LocalCache
	bundled   BundledDataset
	validator validators.Validator

	defaultImage string
	now          func() time.Time

	mu      sync.Mutex
	strains []models.Strain

	logger *logger.Logger
}

// NewClientCatalogService wires the client data layer.
func NewClientCatalogService(
	serverAdapter adapter.ServerAdapter,
	cache store.LocalCache,
	bundled BundledDataset,
	defaultImage string,
	logger *logger.Logger,
) ClientCatalogService {
	return &clientCatalogService{
		adapter:      serverAdapter,
		cache:        cache,
		bundled:      bundled,
		validator:    validators.NewStrainValidator(),
		defaultImage: defaultImage,
		now:          time.Now,
		logger:       logger,
	}
}

func (c *clientCatalogService) Load(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	list, err := c.adapter.ListStrains(ctx)
	if err == nil {
		c.strains = Resolve(c.strains, Mutation{Kind: MutationList}, MutationResult{Strains: list}, c.now())
		return c.snapshot(ctx, Snapshot{Online: true, Source: SourceServer})
	}

	cause := mapAdapterError(err)
	c.logger.Warn().Err(cause).Str("func", "*clientCatalogService.Load").Msg("loading strains from local state")

	cached, found, err := c.readCache(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	if found {
		c.strains = cached
		return c.snapshot(ctx, Snapshot{Source: SourceCache, Cause: cause})
	}

	bundled, err := c.bundled()
	if err != nil {
		return Snapshot{}, fmt.Errorf("error loading bundled dataset: %w", err)
	}
	c.strains = bundled
	return c.snapshot(ctx, Snapshot{Source: SourceBundled, Cause: cause})
}

func (c *clientCatalogService) Add(ctx context.Context, in models.StrainInput) (Snapshot, error) {
	if err := c.validator.Validate(ctx, in); err != nil {
		return Snapshot{}, err
	}
	if in.Image == "" {
		in.Image = c.defaultImage
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	created, err := c.adapter.CreateStrain(ctx, in)
	return c.resolve(ctx, Mutation{Kind: MutationCreate, Input: in}, MutationResult{Strain: created, Err: err})
}

func (c *clientCatalogService) Edit(ctx context.Context, key string, in models.StrainInput) (Snapshot, error) {
	if err := c.validator.Validate(ctx, in); err != nil {
		return Snapshot{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	updated, err := c.adapter.UpdateStrain(ctx, key, in)
	return c.resolve(ctx, Mutation{Kind: MutationUpdate, Key: key, Input: in}, MutationResult{Strain: updated, Err: err})
}

func (c *clientCatalogService) Remove(ctx context.Context, key string) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.adapter.DeleteStrain(ctx, key)
	return c.resolve(ctx, Mutation{Kind: MutationDelete, Key: key}, MutationResult{Err: err})
}

func (c *clientCatalogService) Strains() []models.Strain {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.strains)
}

func (c *clientCatalogService) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.strains = nil
	if err := c.cache.Delete(ctx, store.KeyStrains); err != nil {
		return fmt.Errorf("%w: %w", ErrCachePersist, err)
	}
	return nil
}

// resolve applies the API answer, persists the result and builds the
// snapshot. Callers hold c.mu.
func (c *clientCatalogService) resolve(ctx context.Context, m Mutation, result MutationResult) (Snapshot, error) {
	c.strains = Resolve(c.strains, m, result, c.now())

	if result.Err != nil {
		cause := mapAdapterError(result.Err)
		c.logger.Warn().Err(cause).Str("func", "*clientCatalogService.resolve").Int("kind", int(m.Kind)).Str("key", m.Key).Msg("mutation applied locally")
		return c.snapshot(ctx, Snapshot{Cause: cause})
	}

	return c.snapshot(ctx, Snapshot{Online: true})
}

// snapshot persists the collection and returns it inside s. Callers hold c.mu.
func (c *clientCatalogService) snapshot(ctx context.Context, s Snapshot) (Snapshot, error) {
	s.Strains = slices.Clone(c.strains)
	if s.Strains == nil {
		s.Strains = []models.Strain{}
	}

	payload, err := json.Marshal(s.Strains)
	if err != nil {
		return s, fmt.Errorf("%w: %w", ErrCachePersist, err)
	}
	if err = c.cache.Put(ctx, store.KeyStrains, string(payload)); err != nil {
		c.logger.Err(err).Str("func", "*clientCatalogService.snapshot").Msg("error persisting strains")
		return s, fmt.Errorf("%w: %w", ErrCachePersist, err)
	}

	return s, nil
}

// readCache returns the cached collection and whether the key was present.
func (c *clientCatalogService) readCache(ctx context.Context) ([]models.Strain, bool, error) {
	raw, err := c.cache.Get(ctx, store.KeyStrains)
	if errors.Is(err, store.ErrCacheKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error reading local cache: %w", err)
	}

	var strains []models.Strain
	if err = json.Unmarshal([]byte(raw), &strains); err != nil {
		c.logger.Err(err).Str("func", "*clientCatalogService.readCache").Msg("cached strains are not valid JSON")
		return nil, false, fmt.Errorf("%w: %w", ErrCorruptCache, err)
	}
	if strains == nil {
		strains = []models.Strain{}
	}
	return strains, true, nil
}
