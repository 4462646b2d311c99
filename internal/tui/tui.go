// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/internal/service"
	"github.com/MKhiriev/smoke-stack/internal/workers"
	"github.com/MKhiriev/smoke-stack/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal front end of the catalog.
type TUI struct {
	services *service.ClientServices
	info     models.AppBuildInfo
	health   chan workers.HealthStatus
	logger   *logger.Logger
}

func New(services *service.ClientServices, info models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services: services,
		info:     info,
		health:   make(chan workers.HealthStatus, 1),
		logger:   logger,
	}, nil
}

// Notify hands a probe result to the UI. It never blocks: when the UI has not
// consumed the previous result yet, that result is replaced.
func (t *TUI) Notify(status workers.HealthStatus) {
	for {
		select {
		case t.health <- status:
			return
		default:
		}
		select {
		case <-t.health:
		default:
		}
	}
}

// Run shows the catalog until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.info, t.health, t.logger)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
