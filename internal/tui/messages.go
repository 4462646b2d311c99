package tui

import (
	"github.com/MKhiriev/smoke-stack/internal/service"
	"github.com/MKhiriev/smoke-stack/internal/workers"
	"github.com/MKhiriev/smoke-stack/models"
)

type strainsLoadedMsg struct {
	snap service.Snapshot
	err  error
}

type strainSavedMsg struct {
	snap service.Snapshot
	err  error
}

type strainRemovedMsg struct {
	snap service.Snapshot
	err  error
}

type healthMsg workers.HealthStatus

type sessionRestoredMsg struct {
	session models.Session
	err     error
}

type sessionStartedMsg struct {
	session models.Session
	err     error
}

type loggedOutMsg struct {
	err error
}

type accountDeletedMsg struct {
	err error
}

type themeLoadedMsg struct {
	theme models.Theme
}

type themeSavedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
