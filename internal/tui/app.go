// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-blog/internal/guard"
	"github.com/MKhiriev/go-blog/internal/workers"
	"github.com/MKhiriev/go-blog/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// page is a view the router can show.
type page interface {
	tea.Model
	// Open prepares the page for path and returns its first command.
	Open(path string, session models.Session) tea.Cmd
}

// textEntry is implemented by pages that currently route keys to inputs.
type textEntry interface {
	capturesInput() bool
}

// SessionSource is the part of the session the views read.
// *session.Holder implements it.
type SessionSource interface {
	Snapshot() models.Session
	Subscribe() (<-chan models.Session, func())
}

// Route keys for the parametrised post paths. Every other page is keyed by
// its path.
const (
	routePost     = "post"
	routePostEdit = "post-edit"
)

const maxRedirects = 3

func routeOf(path string) string {
	if _, edit, ok := guard.ParsePostPath(path); ok {
		if edit {
			return routePostEdit
		}
		return routePost
	}
	return path
}

// RootModel is the client router:
// 1) resolves every NavigateTo through the route guard
// 2) follows session changes and leaves views the session no longer allows
// 3) shows background worker failures over the active page
// 4) delegates all other messages to the active page
type RootModel struct {
	pages map[string]page
	start string
	path  string

	session  SessionSource
	snapshot models.Session
	updates  <-chan models.Session
	results  <-chan workers.Result

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	overlay       *errorOverlayModel
}

// NewRootModel registers all pages. startPath is opened by Init.
func NewRootModel(pages map[string]page, startPath string, session SessionSource, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		start:     startPath,
		session:   session,
		snapshot:  session.Snapshot(),
		buildInfo: buildInfo,
	}
}

// withSubscriptions makes the router listen to session updates and worker
// results. Either channel may be nil.
func (r RootModel) withSubscriptions(updates <-chan models.Session, results <-chan workers.Result) RootModel {
	r.updates = updates
	r.results = results
	return r
}

// Path returns the path of the active page.
func (r RootModel) Path() string {
	return r.path
}

func (r RootModel) Init() tea.Cmd {
	start := r.start
	return tea.Batch(
		func() tea.Msg { return NavigateTo{Path: start} },
		waitForSession(r.updates),
		waitForResult(r.results),
	)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return r, tea.Quit
		}
		if r.overlay != nil {
			if key.Matches(msg, keys.enter, keys.esc) {
				r.overlay = nil
			}
			return r, nil
		}
		if r.showBuildInfo {
			if key.Matches(msg, keys.esc, keys.buildInfo) {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if !r.capturesInput() {
			if next, cmd, handled := r.handleGlobalKey(msg); handled {
				return next, cmd
			}
		}

	case NavigateTo:
		return r.navigate(msg.Path)

	case routedMsg:
		target, ok := r.pages[msg.route]
		if !ok {
			return r, nil
		}
		updated, cmd := target.Update(msg.msg)
		if p, ok := updated.(page); ok {
			r.pages[msg.route] = p
		}
		return r, cmd

	case sessionChangedMsg:
		r.snapshot = msg.session
		listen := waitForSession(r.updates)
		if decision := guard.Decide(r.path, msg.session); r.path != "" && decision.Kind == guard.Redirect {
			next, cmd := r.navigate(decision.Path)
			return next, tea.Batch(cmd, listen)
		}
		next, cmd := r.delegate(msg)
		return next, tea.Batch(cmd, listen)

	case workerResultMsg:
		if msg.result.Err != nil {
			r.overlay = &errorOverlayModel{message: describeWorkerError(msg.result.Err)}
		}
		return r, waitForResult(r.results)
	}

	return r.delegate(msg)
}

func (r RootModel) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	var path string
	switch {
	case key.Matches(msg, keys.quit):
		return r, tea.Quit, true
	case key.Matches(msg, keys.buildInfo):
		r.showBuildInfo = true
		return r, nil, true
	case key.Matches(msg, keys.home):
		path = guard.PathHome
	case key.Matches(msg, keys.about):
		path = guard.PathAbout
	case key.Matches(msg, keys.dashboard):
		path = guard.PathDashboard
	case key.Matches(msg, keys.login):
		path = guard.PathLogin
	case key.Matches(msg, keys.register):
		path = guard.PathRegister
	default:
		return r, nil, false
	}

	next, cmd := r.navigate(path)
	return next, cmd, true
}

// navigate asks the guard about path using the latest session and opens the
// page it settles on.
func (r RootModel) navigate(path string) (RootModel, tea.Cmd) {
	r.snapshot = r.session.Snapshot()

	decision := guard.Decide(path, r.snapshot)
	for i := 0; decision.Kind == guard.Redirect && i < maxRedirects; i++ {
		decision = guard.Decide(decision.Path, r.snapshot)
	}

	next, ok := r.pages[routeOf(decision.Path)]
	if !ok {
		return r, nil
	}

	r.path = decision.Path
	r.showBuildInfo = false

	return r, next.Open(decision.Path, r.snapshot)
}

func (r RootModel) delegate(msg tea.Msg) (RootModel, tea.Cmd) {
	current := r.current()
	if current == nil {
		return r, nil
	}

	updated, cmd := current.Update(msg)
	if p, ok := updated.(page); ok {
		r.pages[routeOf(r.path)] = p
	}

	return r, cmd
}

func (r RootModel) current() page {
	if r.path == "" {
		return nil
	}
	return r.pages[routeOf(r.path)]
}

func (r RootModel) capturesInput() bool {
	entry, ok := r.current().(textEntry)
	return ok && entry.capturesInput()
}

func (r RootModel) View() string {
	var body string
	switch current := r.current(); {
	case r.showBuildInfo:
		body = renderBuildInfoWindow(r.buildInfo)
	case current == nil:
		body = renderPage("GO-BLOG", "", "")
	default:
		body = current.View()
	}

	out := r.navBar() + "\n\n" + body
	if r.overlay != nil {
		out += "\n\n" + r.overlay.View()
	}

	return appStyle.Render(out)
}

func (r RootModel) navBar() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("go-blog"))
	b.WriteString(navStyle.Render("   1 home  2 about  3 dashboard  4 login  5 register  v build info  q quit   "))

	if r.snapshot.Authenticated {
		name := r.snapshot.Username()
		if name == "" {
			name = "unknown user"
		}
		b.WriteString("signed in as " + name)
	} else {
		b.WriteString("guest")
	}

	return b.String()
}

func waitForSession(updates <-chan models.Session) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return nil
		}
		return sessionChangedMsg{session: s}
	}
}

func waitForResult(results <-chan workers.Result) tea.Cmd {
	if results == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-results
		if !ok {
			return nil
		}
		return workerResultMsg{result: result}
	}
}
