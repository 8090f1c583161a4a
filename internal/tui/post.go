package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog/internal/guard"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// PostModel shows a single post at /post/:id.
type PostModel struct {
	ctx     context.Context
	posts   service.ClientPostService
	baseURL string

	postID  int64
	post    *models.Post
	loading bool
	errMsg  string
	status  string
}

func NewPostModel(ctx context.Context, posts service.ClientPostService, baseURL string) *PostModel {
	return &PostModel{ctx: ctx, posts: posts, baseURL: strings.TrimRight(baseURL, "/")}
}

func (m *PostModel) Init() tea.Cmd {
	return nil
}

func (m *PostModel) Open(path string, _ models.Session) tea.Cmd {
	postID, _, _ := guard.ParsePostPath(path)

	m.postID = postID
	m.post = nil
	m.errMsg = ""
	m.status = ""
	m.loading = true

	return cmdGetPost(m.ctx, m.posts, routePost, postID)
}

func (m *PostModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case postLoadedMsg:
		if msg.postID != m.postID {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		post := msg.post
		m.post = &post
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "copy to clipboard: " + msg.err.Error()
			return m, nil
		}
		m.status = "Link copied to clipboard"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(guard.PathHome)
		case key.Matches(msg, keys.reload):
			return m, m.Open(guard.PostPath(m.postID), models.Session{})
		case key.Matches(msg, keys.copy):
			if m.postID == 0 {
				return m, nil
			}
			return m, cmdCopyToClipboard(m.link())
		case key.Matches(msg, keys.edit):
			if m.post == nil {
				return m, nil
			}
			if !m.posts.CanEdit(*m.post) {
				m.errMsg = humanizeError(service.ErrForbidden)
				return m, nil
			}
			return m, navigate(guard.EditPostPath(m.postID))
		}
	}

	return m, nil
}

func (m *PostModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case m.post != nil:
		post := m.post
		b.WriteString(titleStyle.Render(post.Title))
		b.WriteString("\n")
		fmt.Fprintf(&b, "Category: %s\n", valueOrDash(post.Category))
		fmt.Fprintf(&b, "Author:   %s\n", valueOrDash(post.Author.Username))
		fmt.Fprintf(&b, "Created:  %s\n", formatTime(post.CreatedAt))
		if !post.UpdatedAt.IsZero() && !post.UpdatedAt.Equal(post.CreatedAt) {
			fmt.Fprintf(&b, "Updated:  %s\n", formatTime(post.UpdatedAt))
		}
		if post.ImagePath != "" {
			fmt.Fprintf(&b, "Image:    %s\n", m.baseURL+post.ImagePath)
		}
		b.WriteString("\n")
		b.WriteString(post.Content)
		b.WriteString("\n")
	}

	renderStatus(&b, m.status)
	renderError(&b, m.errMsg)

	hotKeys := "esc: back │ c: copy link │ r: reload"
	if m.post != nil && m.posts.CanEdit(*m.post) {
		hotKeys += " │ e: edit"
	}

	return renderPage("POST", strings.TrimRight(b.String(), "\n"), hotKeys)
}

// link is the shareable address of the post on the backend.
func (m *PostModel) link() string {
	return m.baseURL + "/posts/" + strconv.FormatInt(m.postID, 10)
}

func cmdGetPost(ctx context.Context, posts service.ClientPostService, route string, postID int64) tea.Cmd {
	return routeTo(route, func() tea.Msg {
		post, err := posts.GetPost(ctx, postID)
		return postLoadedMsg{postID: postID, post: post, err: err}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
