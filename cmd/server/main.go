package main

import (
	"context"
	"fmt"

	"github.com/rkhalikov/go-task-keeper/internal/classifier"
	"github.com/rkhalikov/go-task-keeper/internal/config"
	httphandler "github.com/rkhalikov/go-task-keeper/internal/handler/http"
	"github.com/rkhalikov/go-task-keeper/internal/logger"
	"github.com/rkhalikov/go-task-keeper/internal/server"
	"github.com/rkhalikov/go-task-keeper/internal/service"
	"github.com/rkhalikov/go-task-keeper/internal/session"
	"github.com/rkhalikov/go-task-keeper/internal/store"
	"github.com/rkhalikov/go-task-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("task-keeper-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	sessions, err := session.NewManager(cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session manager")
	}

	// An empty classifier URL disables automatic categorization; tasks
	// saved without a category then get the sentinel label.
	var clf classifier.Classifier
	if cfg.Classifier.URL != "" {
		clf = classifier.NewHTTPClassifier(cfg.Classifier, log)
	} else {
		log.Warn().Msg("no classifier URL configured, automatic categorization disabled")
	}

	services := service.NewServices(storages, clf, log)

	handler := httphandler.NewHandler(services, sessions, storages.FileStorage, cfg.Storage.Files, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(cfg, log).Run()

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
