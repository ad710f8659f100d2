package main

import (
	"context"
	"fmt"

	"github.com/dmrc-hht/keyadmin/internal/adapter"
	"github.com/dmrc-hht/keyadmin/internal/client"
	"github.com/dmrc-hht/keyadmin/internal/config"
	"github.com/dmrc-hht/keyadmin/internal/logger"
	"github.com/dmrc-hht/keyadmin/internal/service"
	"github.com/dmrc-hht/keyadmin/internal/store"
	"github.com/dmrc-hht/keyadmin/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("keyadmin")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	db, err := store.NewConnectSQLite(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open session database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("migrate session database")
	}

	sessionRepo := store.NewSessionRepository(db, log)
	services := service.NewClientServices(sessionRepo, serverAdapter, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
