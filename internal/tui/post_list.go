package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// postListModel is a cursor list of posts shared by the home and dashboard views.
type postListModel struct {
	posts   []models.Post
	idx     int
	loading bool
	spinner spinner.Model
	errMsg  string
}

func newPostListModel() postListModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return postListModel{spinner: s}
}

// startLoading marks the list as loading and returns the spinner tick.
func (m *postListModel) startLoading() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.spinner.Tick
}

func (m *postListModel) loaded(msg postsLoadedMsg) {
	m.loading = false
	if msg.err != nil {
		m.errMsg = humanizeError(msg.err)
		return
	}
	m.posts = msg.posts
	if m.idx >= len(m.posts) {
		m.idx = max(len(m.posts)-1, 0)
	}
}

func (m *postListModel) current() (models.Post, bool) {
	if len(m.posts) == 0 || m.idx < 0 || m.idx >= len(m.posts) {
		return models.Post{}, false
	}
	return m.posts[m.idx], true
}

// update moves the cursor and animates the spinner. It reports whether msg
// was consumed.
func (m *postListModel) update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return nil, true
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd, true
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
			return nil, true
		case key.Matches(msg, keys.down):
			if m.idx < len(m.posts)-1 {
				m.idx++
			}
			return nil, true
		}
	}
	return nil, false
}

func (m postListModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	case len(m.posts) == 0 && m.errMsg == "":
		b.WriteString("No posts yet\n")
	default:
		for i, post := range m.posts {
			line := fmt.Sprintf("%-40s %-14s %-16s %s",
				fitText(post.Title, 40),
				fitText(valueOrDash(post.Category), 14),
				fitText(valueOrDash(post.Author.Username), 16),
				formatTime(post.CreatedAt),
			)
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	renderError(&b, m.errMsg)

	return strings.TrimRight(b.String(), "\n")
}
