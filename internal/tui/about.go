package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-blog/internal/guard"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
	tea "github.com/charmbracelet/bubbletea"
)

const aboutText = `go-blog is a small blogging platform.
Anyone can read posts; registered authors write them and edit their own.`

// AboutModel describes the application and the versions of both sides.
type AboutModel struct {
	ctx       context.Context
	appInfo   service.ClientAppInfoService
	buildInfo models.AppBuildInfo

	serverVersion string
	errMsg        string
}

func NewAboutModel(ctx context.Context, appInfo service.ClientAppInfoService, buildInfo models.AppBuildInfo) *AboutModel {
	return &AboutModel{ctx: ctx, appInfo: appInfo, buildInfo: buildInfo}
}

func (m *AboutModel) Init() tea.Cmd {
	return nil
}

func (m *AboutModel) Open(string, models.Session) tea.Cmd {
	m.serverVersion = ""
	m.errMsg = ""

	ctx, appInfo := m.ctx, m.appInfo
	return routeTo(guard.PathAbout, func() tea.Msg {
		version, err := appInfo.GetServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	})
}

func (m *AboutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(serverVersionMsg); ok {
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.serverVersion = result.version
	}

	return m, nil
}

func (m *AboutModel) View() string {
	var b strings.Builder
	b.WriteString(aboutText)
	b.WriteString("\n\n")
	b.WriteString(renderBuildInfo(m.buildInfo))
	b.WriteString("\nServer version: ")
	switch {
	case m.serverVersion != "":
		b.WriteString(m.serverVersion)
	case m.errMsg != "":
		b.WriteString("N/A")
	default:
		b.WriteString("...")
	}
	b.WriteString("\n")

	renderError(&b, m.errMsg)

	return renderPage("ABOUT", strings.TrimRight(b.String(), "\n"), "")
}
