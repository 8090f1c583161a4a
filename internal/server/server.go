package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/handler"
	"github.com/MKhiriev/go-blog/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	transports []transport
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.transports = append(servers.transports, newHTTPServer(handlers.HTTP.Init(), cfg))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.transports = append(servers.transports, newGRPCServer(handlers.GRPC, cfg))
	}

	if len(servers.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, t := range s.transports {
		if err := t.shutdown(ctx); err != nil {
			s.logger.Err(err).Str("func", "server.Shutdown").Str("transport", t.name()).Msg("error shutting down")
		}
	}
}

// run serves every transport until ctx is done or one of them fails.
func (s *server) run(ctx context.Context) error {
	errs := make(chan error, len(s.transports))

	for _, t := range s.transports {
		s.logger.Info().Str("transport", t.name()).Msg("launching server")
		go func() {
			if err := t.serve(); err != nil {
				errs <- fmt.Errorf("%s server: %w", t.name(), err)
				return
			}
			errs <- nil
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-errs:
		if runErr == nil {
			runErr = errServerStopped
		}
	}

	s.Shutdown()
	if runErr != nil {
		return runErr
	}

	s.logger.Info().Msg("server shut down gracefully")
	return nil
}
