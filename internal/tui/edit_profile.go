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
	profileFirstName = iota
	profileLastName
	profileEmail
	profileNewPassword
	profilePicture
)

var profileLabels = []string{"First name", "Last name", "Email", "New password", "Picture file"}

// EditProfileModel edits the account of the signed-in user. The form starts
// from the cached profile; a new password shows its strength as it is typed.
type EditProfileModel struct {
	ctx     context.Context
	profile service.ClientProfileService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewEditProfileModel(ctx context.Context, profile service.ClientProfileService) *EditProfileModel {
	return &EditProfileModel{
		ctx:     ctx,
		profile: profile,
		inputs: []textinput.Model{
			newInput("first name", 100),
			newInput("last name", 100),
			newInput("email", 254),
			newPasswordInput("leave empty to keep the current one"),
			newInput("path to an image file (optional)", 4096),
		},
	}
}

func (m *EditProfileModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EditProfileModel) Open(_ string, session models.Session) tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	if user := session.User; user != nil {
		m.inputs[profileFirstName].SetValue(user.FirstName)
		m.inputs[profileLastName].SetValue(user.LastName)
		m.inputs[profileEmail].SetValue(user.Email)
	}

	m.focus = 0
	focusInput(m.inputs, m.focus)
	m.submitting = false
	m.errMsg = ""

	return textinput.Blink
}

func (m *EditProfileModel) capturesInput() bool {
	return true
}

func (m *EditProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(profileSavedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.inputs[profileNewPassword].Reset()
		return m, navigate(guard.PathDashboard)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(guard.PathDashboard)
		case key.Matches(keyMsg, keys.tab):
			m.focus = (m.focus + 1) % len(m.inputs)
			focusInput(m.inputs, m.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
			focusInput(m.inputs, m.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m, m.save()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *EditProfileModel) save() tea.Cmd {
	if m.submitting {
		return nil
	}

	var picture *models.Upload
	closePicture := func() {}
	if path := strings.TrimSpace(m.inputs[profilePicture].Value()); path != "" {
		upload, closer, err := openUpload(path)
		if err != nil {
			m.errMsg = err.Error()
			return nil
		}
		picture = upload
		closePicture = func() { _ = closer.Close() }
	}

	m.errMsg = ""
	m.submitting = true

	ctx, profile, update := m.ctx, m.profile, m.update()
	return routeTo(guard.PathEditProfile, func() tea.Msg {
		defer closePicture()

		user, err := profile.UpdateProfile(ctx, update)
		if err != nil {
			return profileSavedMsg{err: err}
		}
		if picture != nil {
			path, err := profile.UploadProfilePicture(ctx, *picture)
			if err != nil {
				return profileSavedMsg{user: user, err: err}
			}
			user.ProfilePicture = path
		}

		return profileSavedMsg{user: user}
	})
}

// update sends the names and email as shown; the password only when typed.
func (m *EditProfileModel) update() models.ProfileUpdate {
	firstName := strings.TrimSpace(m.inputs[profileFirstName].Value())
	lastName := strings.TrimSpace(m.inputs[profileLastName].Value())
	email := strings.TrimSpace(m.inputs[profileEmail].Value())

	update := models.ProfileUpdate{FirstName: &firstName, LastName: &lastName, Email: &email}
	if password := m.inputs[profileNewPassword].Value(); password != "" {
		update.NewPassword = &password
	}

	return update
}

func (m *EditProfileModel) View() string {
	var b strings.Builder
	b.WriteString(renderForm(profileLabels, m.inputs))

	if bar := strengthBar(m.inputs[profileNewPassword].Value()); bar != "" {
		b.WriteString("\nPassword strength: ")
		b.WriteString(bar)
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	renderError(&b, m.errMsg)

	return renderPage("EDIT PROFILE", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: save")
}
