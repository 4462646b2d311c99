package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/internal/store"
	"github.com/MKhiriev/smoke-stack/models"
)

type clientPreferencesService struct {
	cache  store.LocalCache
	logger *logger.Logger
}

func NewClientPreferencesService(cache store.LocalCache, logger *logger.Logger) ClientPreferencesService {
	return &clientPreferencesService{cache: cache, logger: logger}
}

// Theme returns the stored theme, light when none or an unknown one is stored.
func (p *clientPreferencesService) Theme(ctx context.Context) models.Theme {
	raw, err := p.cache.Get(ctx, store.KeyTheme)
	if err != nil {
		return models.ThemeLight
	}
	if theme := models.Theme(raw); theme == models.ThemeDark {
		return theme
	}
	return models.ThemeLight
}

func (p *clientPreferencesService) SetTheme(ctx context.Context, theme models.Theme) error {
	if err := p.cache.Put(ctx, store.KeyTheme, string(theme)); err != nil {
		p.logger.Err(err).Str("func", "*clientPreferencesService.SetTheme").Msg("error persisting theme")
		return fmt.Errorf("%w: %w", ErrCachePersist, err)
	}
	return nil
}
