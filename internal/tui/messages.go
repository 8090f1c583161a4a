package tui

import (
	"github.com/MKhiriev/go-blog/internal/workers"
	"github.com/MKhiriev/go-blog/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks [RootModel] to show Path. The route guard runs first and
// may send the user elsewhere.
type NavigateTo struct {
	Path string
}

// routedMsg carries an async result back to the page that asked for it,
// whether or not that page is still shown.
type routedMsg struct {
	route string
	msg   tea.Msg
}

func routeTo(route string, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		return routedMsg{route: route, msg: cmd()}
	}
}

type sessionChangedMsg struct {
	session models.Session
}

type workerResultMsg struct {
	result workers.Result
}

type authDoneMsg struct {
	user models.UserProjection
	err  error
}

type loggedOutMsg struct {
	err error
}

type postsLoadedMsg struct {
	posts []models.Post
	err   error
}

type postLoadedMsg struct {
	postID int64
	post   models.Post
	err    error
}

type postSavedMsg struct {
	post models.Post
	err  error
}

type profileLoadedMsg struct {
	user models.UserProjection
	err  error
}

type profileSavedMsg struct {
	user models.UserProjection
	err  error
}

type serverVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
