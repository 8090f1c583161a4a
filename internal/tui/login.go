// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-blog/internal/guard"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two text inputs
// (username or email, and password) and dispatches an async login command on submission.
// A successful login starts the session and navigates to the dashboard.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with pre-configured identity and password inputs.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		inputs: []textinput.Model{
			newInput("username or email", 254),
			newPasswordInput("password"),
		},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Open resets the form on every visit.
func (m *LoginModel) Open(string, models.Session) tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.focus = 0
	focusInput(m.inputs, m.focus)
	m.submitting = false
	m.errMsg = ""

	return textinput.Blink
}

func (m *LoginModel) capturesInput() bool {
	return true
}

// Update implements [tea.Model]. Handled messages:
//   - [authDoneMsg]  clears submitting state; on error populates errMsg,
//     on success navigates to the dashboard.
//   - esc            navigates back home.
//   - tab/shift+tab  moves focus between inputs.
//   - enter          dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.inputs[1].Reset()
		return m, navigate(guard.PathDashboard)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(guard.PathHome)
		case key.Matches(keyMsg, keys.tab):
			m.focus = (m.focus + 1) % len(m.inputs)
			focusInput(m.inputs, m.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
			focusInput(m.inputs, m.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(models.Credentials{
				Identity: strings.TrimSpace(m.inputs[0].Value()),
				Password: m.inputs[1].Value(),
			})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(renderForm([]string{"Username or email", "Password"}, m.inputs))

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}
	renderError(&b, m.errMsg)

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(credentials models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return routeTo(guard.PathLogin, func() tea.Msg {
		user, err := auth.Login(ctx, credentials)
		return authDoneMsg{user: user, err: err}
	})
}
