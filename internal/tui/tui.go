// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the flourish client
// on top of bubbletea: questionnaire, insights and settings tabs plus the
// insight notification banner.
package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/flourish-client/internal/config"
	"github.com/MKhiriev/flourish-client/internal/logger"
	"github.com/MKhiriev/flourish-client/internal/service"
	"github.com/MKhiriev/flourish-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NotificationCenter is the notification holder the banner renders.
type NotificationCenter interface {
	Current() models.InsightNotification
	Dismiss(seq uint64) bool
	Subscribe() (<-chan models.InsightNotification, func())
}

type TUI struct {
	services      *service.ClientServices
	notifications NotificationCenter
	dismissAfter  time.Duration
	options       []tea.ProgramOption

	logger *logger.Logger
}

func New(services *service.ClientServices, notifications NotificationCenter, cfg config.ClientNotifications, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:      services,
		notifications: notifications,
		dismissAfter:  cfg.DismissAfter,
		options:       []tea.ProgramOption{tea.WithAltScreen()},
		logger:        logger,
	}, nil
}

// MainLoop runs the interface until the user quits or resets the session.
// It reports reset=true when the caller should start a fresh loop.
func (t *TUI) MainLoop(ctx context.Context) (reset bool, err error) {
	updates, unsubscribe := t.notifications.Subscribe()
	defer unsubscribe()

	model := newAppModel(ctx, t.services, t.notifications, updates, t.dismissAfter)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	finalModel, runErr := tea.NewProgram(model, opts...).Run()
	if runErr != nil {
		t.logger.Err(runErr).Str("func", "TUI.MainLoop").Msg("program exited with error")
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	return result.reset, nil
}
