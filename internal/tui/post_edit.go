package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-blog/internal/guard"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// PostEditModel fetches a post, lets its author change it and saves the
// changed fields. A successful save opens the post.
type PostEditModel struct {
	ctx   context.Context
	posts service.ClientPostService

	postID     int64
	original   *models.Post
	form       postFormModel
	loading    bool
	submitting bool
	errMsg     string
}

func NewPostEditModel(ctx context.Context, posts service.ClientPostService) *PostEditModel {
	return &PostEditModel{ctx: ctx, posts: posts, form: newPostFormModel()}
}

func (m *PostEditModel) Init() tea.Cmd {
	return nil
}

func (m *PostEditModel) Open(path string, _ models.Session) tea.Cmd {
	postID, _, _ := guard.ParsePostPath(path)

	m.postID = postID
	m.original = nil
	m.form.reset()
	m.loading = true
	m.submitting = false
	m.errMsg = ""

	return cmdGetPost(m.ctx, m.posts, routePostEdit, postID)
}

func (m *PostEditModel) capturesInput() bool {
	return m.original != nil
}

func (m *PostEditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		if !m.posts.CanEdit(msg.post) {
			m.errMsg = humanizeError(service.ErrForbidden)
			return m, nil
		}
		post := msg.post
		m.original = &post
		m.form.fill(post)
		return m, nil

	case postSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(guard.PostPath(m.postID))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(guard.PostPath(m.postID))
		case key.Matches(msg, keys.submit):
			return m, m.save()
		}
	}

	if m.original == nil {
		return m, nil
	}

	return m, m.form.update(msg)
}

func (m *PostEditModel) save() tea.Cmd {
	if m.original == nil || m.submitting {
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

	ctx, posts := m.ctx, m.posts
	update := m.form.changes(*m.original)

	return routeTo(routePostEdit, func() tea.Msg {
		defer closeImage()
		post, err := posts.UpdatePost(ctx, update, image)
		return postSavedMsg{post: post, err: err}
	})
}

func (m *PostEditModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case m.original != nil:
		b.WriteString(m.form.View())
		if m.submitting {
			b.WriteString("\n[Saving...]\n")
		} else {
			b.WriteString("\n[Save]\n")
		}
	}
	renderError(&b, m.errMsg)

	return renderPage("EDIT POST", strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ ctrl+s: save")
}
