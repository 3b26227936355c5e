package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/readsync/internal/config"
	"github.com/MKhiriev/readsync/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer wraps router in an HTTP server listening on cfg.HTTPAddress.
func NewServer(router http.Handler, cfg config.ServerConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" || router == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(router, cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	served := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		served <- s.httpServer.listen()
	}()

	select {
	case <-ctx.Done():
		err := s.Shutdown(context.WithoutCancel(ctx))
		<-served
		if err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		s.logger.Info().Msg("server Shutdown gracefully")
		return nil
	case err := <-served:
		if err == nil {
			return errServerStopped
		}
		return fmt.Errorf("%w: %w", errServerStopped, err)
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.shutdown(ctx)
}
