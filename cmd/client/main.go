package main

import (
	"fmt"

	"github.com/MKhiriev/flourish-client/internal/adapter"
	"github.com/MKhiriev/flourish-client/internal/client"
	"github.com/MKhiriev/flourish-client/internal/config"
	"github.com/MKhiriev/flourish-client/internal/logger"
	"github.com/MKhiriev/flourish-client/internal/notification"
	"github.com/MKhiriev/flourish-client/internal/service"
	"github.com/MKhiriev/flourish-client/internal/store"
	"github.com/MKhiriev/flourish-client/internal/tui"
	"github.com/MKhiriev/flourish-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("flourish-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if closeErr := localStorage.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close local storage")
		}
	}()

	center := notification.NewCenter(notification.WithLogger(log))

	appInfo, err := service.NewAppInfoService(cfg.App, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create app info service")
	}

	services := service.NewClientServices(localStorage, serverAdapter, center, appInfo, log)

	ui, err := tui.New(services, center, cfg.Notifications, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, center, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
