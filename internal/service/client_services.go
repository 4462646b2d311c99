package service

import (
	"github.com/MKhiriev/smoke-stack/internal/adapter"
	"github.com/MKhiriev/smoke-stack/internal/config"
	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/internal/store"
)

// ClientServices groups the services of the terminal client.
type ClientServices struct {
	CatalogService     ClientCatalogService
	AuthService        ClientAuthService
	PreferencesService ClientPreferencesService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, bundled BundledDataset, cfg config.ClientApp, logger *logger.Logger) *ClientServices {
	catalog := NewClientCatalogService(serverAdapter, storages.Cache, bundled, cfg.DefaultImage, logger)

	return &ClientServices{
		CatalogService:     catalog,
		AuthService:        NewClientAuthService(storages.Cache, serverAdapter, catalog, logger),
		PreferencesService: NewClientPreferencesService(storages.Cache, logger),
	}
}
