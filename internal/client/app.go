package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/flourish-client/internal/config"
	"github.com/MKhiriev/flourish-client/internal/logger"
	"github.com/MKhiriev/flourish-client/internal/service"
	"github.com/MKhiriev/flourish-client/internal/workers"
)

type App struct {
	ui            UI
	workers       *workers.Workers
	notifications Notifications
	cfg           config.ClientWorkers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, notifications Notifications, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil || notifications == nil {
		return nil, errors.New("client app dependencies must not be nil")
	}

	ws := workers.NewWorkers(
		workers.NewStreamWorker(services.InsightStream, logger),
	)

	return newApp(ui, ws, notifications, cfg, logger), nil
}

func newApp(ui UI, ws *workers.Workers, notifications Notifications, cfg config.ClientWorkers, logger *logger.Logger) *App {
	return &App{
		ui:            ui,
		workers:       ws,
		notifications: notifications,
		cfg:           cfg,
		logger:        logger,
	}
}

// Run starts the workers, runs the UI and stops the workers again. After a
// session reset the whole cycle is repeated.
func (a *App) Run() error {
	log := a.logger.With().Str("func", "App.Run").Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer a.notifications.Close()

	for {
		if a.cfg.StreamOnStart {
			a.workers.StartAll(ctx)
		}

		reset, err := a.ui.MainLoop(ctx)
		a.workers.StopAll()

		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !reset {
			log.Info().Msg("client exited")
			return nil
		}

		log.Info().Msg("session reset, restarting main loop")
	}
}
