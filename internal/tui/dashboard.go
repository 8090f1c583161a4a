package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog/internal/guard"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type dashboardMode int

const (
	dashboardBrowse dashboardMode = iota
	dashboardCreate
)

// DashboardModel shows the signed-in user, their posts and a form for new
// posts.
type DashboardModel struct {
	ctx     context.Context
	auth    service.ClientAuthService
	profile service.ClientProfileService
	posts   service.ClientPostService

	mode       dashboardMode
	user       *models.UserProjection
	list       postListModel
	form       postFormModel
	submitting bool
	errMsg     string
}

func NewDashboardModel(
	ctx context.Context,
	auth service.ClientAuthService,
	profile service.ClientProfileService,
	posts service.ClientPostService,
) *DashboardModel {
	return &DashboardModel{
		ctx:     ctx,
		auth:    auth,
		profile: profile,
		posts:   posts,
		list:    newPostListModel(),
		form:    newPostFormModel(),
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

// Open shows the cached user at once and refreshes it from the server.
func (m *DashboardModel) Open(_ string, session models.Session) tea.Cmd {
	m.mode = dashboardBrowse
	m.user = session.User
	m.submitting = false
	m.errMsg = ""

	ctx, profile := m.ctx, m.profile
	return tea.Batch(
		m.list.startLoading(),
		routeTo(guard.PathDashboard, func() tea.Msg {
			user, err := profile.GetProfile(ctx)
			return profileLoadedMsg{user: user, err: err}
		}),
	)
}

func (m *DashboardModel) capturesInput() bool {
	return m.mode == dashboardCreate
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		} else {
			user := msg.user
			m.user = &user
		}
		if m.user == nil {
			m.list.loading = false
			return m, nil
		}
		return m, m.loadPosts()

	case postsLoadedMsg:
		m.list.loaded(msg)
		return m, nil

	case postSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.form.reset()
		m.mode = dashboardBrowse
		return m, navigate(guard.PostPath(msg.post.PostID))

	case loggedOutMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		return m, navigate(guard.PathHome)

	case sessionChangedMsg:
		if msg.session.User != nil {
			m.user = msg.session.User
		}
		return m, nil
	}

	if m.mode == dashboardCreate {
		return m, m.updateCreate(msg)
	}

	return m, m.updateBrowse(msg)
}

func (m *DashboardModel) updateBrowse(msg tea.Msg) tea.Cmd {
	if cmd, ok := m.list.update(msg); ok {
		return cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, keys.enter):
		if post, found := m.list.current(); found {
			return navigate(guard.PostPath(post.PostID))
		}
	case key.Matches(keyMsg, keys.newPost):
		m.mode = dashboardCreate
		m.errMsg = ""
		m.form.reset()
	case key.Matches(keyMsg, keys.editProfile):
		return navigate(guard.PathEditProfile)
	case key.Matches(keyMsg, keys.reload):
		return tea.Batch(m.list.startLoading(), m.loadPosts())
	case key.Matches(keyMsg, keys.logout):
		ctx, auth := m.ctx, m.auth
		return routeTo(guard.PathDashboard, func() tea.Msg {
			return loggedOutMsg{err: auth.Logout(ctx)}
		})
	}

	return nil
}

func (m *DashboardModel) updateCreate(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.mode = dashboardBrowse
			m.errMsg = ""
			return nil
		case key.Matches(keyMsg, keys.submit):
			return m.create()
		}
	}

	return m.form.update(msg)
}

func (m *DashboardModel) create() tea.Cmd {
	if m.submitting {
		return nil
	}

	var image *models.Upload
	closeImage := func() {}
	if path := m.form.imagePath(); path != "" {
		upload, closer, err := openUpload(path)
		if err != nil {
			m.errMsg = err.Error()
			return nil
		}
		image = upload
		closeImage = func() { _ = closer.Close() }
	}

	m.errMsg = ""
	m.submitting = true

	ctx, posts, post := m.ctx, m.posts, m.form.post()
	return routeTo(guard.PathDashboard, func() tea.Msg {
		defer closeImage()
		created, err := posts.CreatePost(ctx, post, image)
		return postSavedMsg{post: created, err: err}
	})
}

func (m *DashboardModel) loadPosts() tea.Cmd {
	if m.user == nil {
		return nil
	}
	return routeTo(guard.PathDashboard, cmdListPosts(m.ctx, m.posts, models.PostFilter{AuthorID: m.user.ID}))
}

func (m *DashboardModel) View() string {
	if m.mode == dashboardCreate {
		var b strings.Builder
		b.WriteString(m.form.View())
		if m.submitting {
			b.WriteString("\n[Publishing...]\n")
		} else {
			b.WriteString("\n[Publish]\n")
		}
		renderError(&b, m.errMsg)

		return renderPage("NEW POST", strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ ctrl+s: publish")
	}

	var b strings.Builder
	b.WriteString(renderProfile(m.user))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("My posts"))
	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	renderError(&b, m.errMsg)

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"),
		"↑/↓: select │ enter: open │ n: new post │ p: edit profile │ r: reload │ x: log out")
}

func renderProfile(user *models.UserProjection) string {
	if user == nil {
		return "Profile is not loaded yet\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Username: %s\n", user.Username)
	fmt.Fprintf(&b, "Name:     %s\n", valueOrDash(strings.TrimSpace(user.FirstName+" "+user.LastName)))
	fmt.Fprintf(&b, "Email:    %s\n", valueOrDash(user.Email))
	fmt.Fprintf(&b, "Picture:  %s\n", valueOrDash(user.ProfilePicture))
	if user.Role != "" {
		fmt.Fprintf(&b, "Role:     %s\n", user.Role)
	}
	fmt.Fprintf(&b, "Joined:   %s\n", formatTime(user.CreatedAt))

	return b.String()
}
