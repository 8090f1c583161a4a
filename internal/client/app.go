package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/session"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/tui"
	"github.com/MKhiriev/go-blog/internal/workers"
	"github.com/MKhiriev/go-blog/models"
)

// UI is the interactive part of the client. [tui.TUI] implements it.
type UI interface {
	Run(ctx context.Context, results <-chan workers.Result) error
}

// App owns the client's long-lived resources.
type App struct {
	storages *store.ClientStorages
	session  *session.Holder
	workers  *workers.Workers
	ui       UI
	logger   *logger.Logger
}

// NewApp opens the local session store, restores the persisted session and
// builds the UI on top of the client services.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (Client, error) {
	logger.Info().Msg("creating client app...")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	holder, err := session.New(ctx, storages.KeyValueRepository, serverAdapter, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}

	services := service.NewClientServices(serverAdapter, holder, logger)

	return &App{
		storages: storages,
		session:  holder,
		workers:  workers.NewWorkers(logger, workers.NewSessionValidationWorker(holder)),
		ui:       tui.New(services, holder, buildInfo, cfg.Adapter.BaseURL, logger),
		logger:   logger,
	}, nil
}

// Run starts the background workers, blocks in the UI and releases every
// resource once the UI returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := a.workers.Start(ctx)
	uiErr := a.ui.Run(ctx, results)

	cancel()
	a.session.Close()
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Msg("error closing client storages")
		uiErr = errors.Join(uiErr, err)
	}

	return uiErr
}
