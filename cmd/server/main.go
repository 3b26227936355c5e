package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/readsync/internal/config"
	handler "github.com/MKhiriev/readsync/internal/handler/http"
	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/internal/server"
	"github.com/MKhiriev/readsync/internal/service"
	"github.com/MKhiriev/readsync/internal/store"
	"github.com/MKhiriev/readsync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(info)

	log := logger.NewLogger("readsync-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.HTTPAddress).
		Str("blob_dir", cfg.BlobDir).
		Dur("request_timeout", cfg.RequestTimeout).
		Msg("received configs")

	blobs, err := store.NewOSFileBlobStore(cfg.BlobDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening blob directory")
	}

	services, err := service.NewServices(blobs, *cfg, info, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	router := handler.NewHandler(services, cfg.RequestTimeout, log).Init()

	srv, err := server.NewServer(router, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}
