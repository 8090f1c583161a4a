package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/guard"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/workers"
	"github.com/MKhiriev/go-blog/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	session   SessionSource
	buildInfo models.AppBuildInfo
	baseURL   string
	logger    *logger.Logger
}

// New builds the terminal client. baseURL is the backend address used for
// shareable post links.
func New(services *service.ClientServices, session SessionSource, buildInfo models.AppBuildInfo, baseURL string, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		session:   session,
		buildInfo: buildInfo,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// Run shows the client until the user quits or ctx is done. results carries
// the outcome of background workers; failures are shown over the active view.
func (t *TUI) Run(ctx context.Context, results <-chan workers.Result) error {
	updates, cancel := t.session.Subscribe()
	defer cancel()

	root := NewRootModel(t.pages(ctx), guard.PathHome, t.session, t.buildInfo).
		withSubscriptions(updates, results)

	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() == nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal program failed")
		return fmt.Errorf("run terminal program: %w", err)
	}

	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]page {
	return buildPages(ctx, t.services, t.buildInfo, t.baseURL)
}

func buildPages(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, baseURL string) map[string]page {
	return map[string]page{
		guard.PathHome:        NewHomeModel(ctx, services.PostService),
		guard.PathAbout:       NewAboutModel(ctx, services.AppInfoService, buildInfo),
		guard.PathLogin:       NewLoginModel(ctx, services.AuthService),
		guard.PathRegister:    NewRegisterModel(ctx, services.AuthService),
		guard.PathDashboard:   NewDashboardModel(ctx, services.AuthService, services.ProfileService, services.PostService),
		guard.PathEditProfile: NewEditProfileModel(ctx, services.ProfileService),
		routePost:             NewPostModel(ctx, services.PostService, baseURL),
		routePostEdit:         NewPostEditModel(ctx, services.PostService),
	}
}
