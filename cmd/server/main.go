package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-epr-sync/internal/config"
	"github.com/MKhiriev/go-epr-sync/internal/handler"
	"github.com/MKhiriev/go-epr-sync/internal/logger"
	"github.com/MKhiriev/go-epr-sync/internal/metrics"
	"github.com/MKhiriev/go-epr-sync/internal/server"
	"github.com/MKhiriev/go-epr-sync/internal/service"
	"github.com/MKhiriev/go-epr-sync/internal/store"
	"github.com/MKhiriev/go-epr-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("epr-sync-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, log)
	if err = services.SyncService.Provision(ctx, cfg.Server.KnownClients); err != nil {
		log.Fatal().Err(err).Msg("error provisioning known clients")
	}

	m := metrics.New()
	handlers, err := handler.NewHandlers(services, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	archiver := workers.NewArchiver(
		storages.Clients,
		storages.Log,
		m,
		cfg.Workers.ArchiveInterval,
		cfg.Workers.ArchiveRetention,
		log,
	)

	srv, err := server.NewServer(handlers, workers.NewWorkers(archiver), m, storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
