package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"
	"syscall"

	"github.com/MKhiriev/readsync/internal/client"
	"github.com/MKhiriev/readsync/internal/config"
	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/internal/provider"
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

	log := logger.NewClientLogger("readsync-client")
	cmd, err := client.ParseCommand(os.Args[1:], time.Now)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing command")
	}

	cfg, err := config.GetClientConfigFromArgs(cmd.ConfigArgs)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = run(cmd, cfg, info, log); err != nil {
		log.Fatal().Err(err).Str("command", cmd.Name).Msg("client run error")
	}
}

func run(cmd client.Command, cfg *config.ClientConfig, info models.AppBuildInfo, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	syncProvider, err := provider.New(cfg.Provider, log.WithComponent("provider"))
	if err != nil {
		return fmt.Errorf("create sync provider: %w", err)
	}
	defer syncProvider.Disconnect(context.WithoutCancel(ctx))

	if cmd.Name == client.CommandRegister {
		return client.RegisterAccount(ctx, syncProvider, log)
	}

	services := service.NewClientServices(storages.LocalStorage, syncProvider, *cfg, log)

	app, err := client.NewApp(services, cfg.Workers, info, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	if cmd.Name == client.CommandRecord {
		changed, err := app.RecordPosition(ctx, cmd.Report)
		if err != nil {
			return fmt.Errorf("record position: %w", err)
		}
		log.Info().Bool("changed", changed).Msg("reading position recorded")
		return nil
	}

	return app.Run(ctx)
}
