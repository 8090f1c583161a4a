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

const (
	registerUsername = iota
	registerEmail
	registerFirstName
	registerLastName
	registerPassword
	registerRepeat
)

var registerLabels = []string{"Username", "Email", "First name", "Last name", "Password", "Repeat password"}

// RegisterModel is the Bubble Tea model for the registration screen. The account
// is validated locally by the auth service before it is sent. On success the
// session starts and the user lands on the dashboard.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		inputs: []textinput.Model{
			newInput("username", 30),
			newInput("email", 254),
			newInput("first name", 100),
			newInput("last name", 100),
			newPasswordInput("password"),
			newPasswordInput("repeat password"),
		},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Open(string, models.Session) tea.Cmd {
	m.resetForm()
	return textinput.Blink
}

func (m *RegisterModel) capturesInput() bool {
	return true
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.resetForm()
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
			if m.inputs[registerPassword].Value() != m.inputs[registerRepeat].Value() {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(m.user())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(renderForm(registerLabels, m.inputs))

	if bar := strengthBar(m.inputs[registerPassword].Value()); bar != "" {
		b.WriteString("\nPassword strength: ")
		b.WriteString(bar)
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}
	renderError(&b, m.errMsg)

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) user() models.User {
	return models.User{
		Username:  strings.TrimSpace(m.inputs[registerUsername].Value()),
		Email:     strings.TrimSpace(m.inputs[registerEmail].Value()),
		FirstName: strings.TrimSpace(m.inputs[registerFirstName].Value()),
		LastName:  strings.TrimSpace(m.inputs[registerLastName].Value()),
		Password:  m.inputs[registerPassword].Value(),
	}
}

func (m *RegisterModel) cmdRegister(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return routeTo(guard.PathRegister, func() tea.Msg {
		projection, err := auth.Register(ctx, user)
		return authDoneMsg{user: projection, err: err}
	})
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.focus = 0
	focusInput(m.inputs, m.focus)
	m.submitting = false
	m.errMsg = ""
}
