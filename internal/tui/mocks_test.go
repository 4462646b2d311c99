package tui

import (
	"context"

	"github.com/MKhiriev/smoke-stack/internal/service"
	"github.com/MKhiriev/smoke-stack/models"
)

type mockCatalog struct {
	loadFn   func(ctx context.Context) (service.Snapshot, error)
	addFn    func(ctx context.Context, in models.StrainInput) (service.Snapshot, error)
	editFn   func(ctx context.Context, key string, in models.StrainInput) (service.Snapshot, error)
	removeFn func(ctx context.Context, key string) (service.Snapshot, error)
	clearFn  func(ctx context.Context) error
	strains  []models.Strain
}

func (m *mockCatalog) Load(ctx context.Context) (service.Snapshot, error) {
	if m.loadFn == nil {
		return service.Snapshot{}, nil
	}
	return m.loadFn(ctx)
}

func (m *mockCatalog) Add(ctx context.Context, in models.StrainInput) (service.Snapshot, error) {
	if m.addFn == nil {
		return service.Snapshot{}, nil
	}
	return m.addFn(ctx, in)
}

func (m *mockCatalog) Edit(ctx context.Context, key string, in models.StrainInput) (service.Snapshot, error) {
	if m.editFn == nil {
		return service.Snapshot{}, nil
	}
	return m.editFn(ctx, key, in)
}

func (m *mockCatalog) Remove(ctx context.Context, key string) (service.Snapshot, error) {
	if m.removeFn == nil {
		return service.Snapshot{}, nil
	}
	return m.removeFn(ctx, key)
}

func (m *mockCatalog) Strains() []models.Strain {
	return m.strains
}

func (m *mockCatalog) Clear(ctx context.Context) error {
	if m.clearFn == nil {
		return nil
	}
	return m.clearFn(ctx)
}

type mockAuth struct {
	loginFn         func(ctx context.Context, creds models.Credentials) (models.Session, error)
	registerFn      func(ctx context.Context, creds models.Credentials) (models.Session, error)
	restoreFn       func(ctx context.Context) (models.Session, error)
	logoutFn        func(ctx context.Context) error
	deleteAccountFn func(ctx context.Context, confirmation string) error
}

func (m *mockAuth) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuth) Register(ctx context.Context, creds models.Credentials) (models.Session, error) {
	return m.registerFn(ctx, creds)
}

func (m *mockAuth) Restore(ctx context.Context) (models.Session, error) {
	if m.restoreFn == nil {
		return models.Session{}, service.ErrNoSession
	}
	return m.restoreFn(ctx)
}

func (m *mockAuth) Logout(ctx context.Context) error {
	if m.logoutFn == nil {
		return nil
	}
	return m.logoutFn(ctx)
}

func (m *mockAuth) DeleteAccount(ctx context.Context, confirmation string) error {
	return m.deleteAccountFn(ctx, confirmation)
}

type mockPreferences struct {
	theme    models.Theme
	setTheme func(ctx context.Context, theme models.Theme) error
}

func (m *mockPreferences) Theme(context.Context) models.Theme {
	return m.theme
}

func (m *mockPreferences) SetTheme(ctx context.Context, theme models.Theme) error {
	if m.setTheme == nil {
		m.theme = theme
		return nil
	}
	return m.setTheme(ctx, theme)
}
