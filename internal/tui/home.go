package tui

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/guard"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HomeModel lists the latest posts of every author.
type HomeModel struct {
	ctx   context.Context
	posts service.ClientPostService

	list postListModel
}

func NewHomeModel(ctx context.Context, posts service.ClientPostService) *HomeModel {
	return &HomeModel{ctx: ctx, posts: posts, list: newPostListModel()}
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

// Open reloads the list on every visit.
func (m *HomeModel) Open(string, models.Session) tea.Cmd {
	return tea.Batch(
		m.list.startLoading(),
		routeTo(guard.PathHome, cmdListPosts(m.ctx, m.posts, models.PostFilter{})),
	)
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(postsLoadedMsg); ok {
		m.list.loaded(loaded)
		return m, nil
	}

	if cmd, ok := m.list.update(msg); ok {
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			if post, found := m.list.current(); found {
				return m, navigate(guard.PostPath(post.PostID))
			}
		case key.Matches(keyMsg, keys.reload):
			return m, m.Open(guard.PathHome, models.Session{})
		}
	}

	return m, nil
}

func (m *HomeModel) View() string {
	return renderPage("LATEST POSTS", m.list.View(), "↑/↓: select │ enter: open │ r: reload")
}

func cmdListPosts(ctx context.Context, posts service.ClientPostService, filter models.PostFilter) tea.Cmd {
	return func() tea.Msg {
		list, err := posts.ListPosts(ctx, filter)
		return postsLoadedMsg{posts: list, err: err}
	}
}

func navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Path: path} }
}
