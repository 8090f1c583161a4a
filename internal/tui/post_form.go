package tui

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-blog/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	postFieldTitle = iota
	postFieldCategory
	postFieldContent
	postFieldImage
	postFieldCount
)

// postFormModel edits the fields of a post. It backs both the create form on
// the dashboard and the edit view.
type postFormModel struct {
	title    textinput.Model
	category textinput.Model
	content  textarea.Model
	image    textinput.Model
	focus    int
}

func newPostFormModel() postFormModel {
	content := textarea.New()
	content.Placeholder = "write your post"
	content.SetWidth(60)
	content.SetHeight(8)
	content.CharLimit = 0

	m := postFormModel{
		title:    newInput("title", 200),
		category: newInput("category", 50),
		content:  content,
		image:    newInput("path to an image file (optional)", 4096),
	}
	m.setFocus(postFieldTitle)

	return m
}

func (m *postFormModel) reset() {
	m.title.Reset()
	m.category.Reset()
	m.content.Reset()
	m.image.Reset()
	m.setFocus(postFieldTitle)
}

func (m *postFormModel) fill(post models.Post) {
	m.reset()
	m.title.SetValue(post.Title)
	m.category.SetValue(post.Category)
	m.content.SetValue(post.Content)
}

func (m *postFormModel) setFocus(focus int) {
	m.focus = focus
	m.title.Blur()
	m.category.Blur()
	m.content.Blur()
	m.image.Blur()

	switch focus {
	case postFieldTitle:
		m.title.Focus()
	case postFieldCategory:
		m.category.Focus()
	case postFieldContent:
		m.content.Focus()
	case postFieldImage:
		m.image.Focus()
	}
}

// update moves focus on tab and shift+tab and forwards everything else to
// the focused widget.
func (m *postFormModel) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.setFocus((m.focus + 1) % postFieldCount)
			return nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus((m.focus - 1 + postFieldCount) % postFieldCount)
			return nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case postFieldTitle:
		m.title, cmd = m.title.Update(msg)
	case postFieldCategory:
		m.category, cmd = m.category.Update(msg)
	case postFieldContent:
		m.content, cmd = m.content.Update(msg)
	case postFieldImage:
		m.image, cmd = m.image.Update(msg)
	}

	return cmd
}

// post returns the new post described by the form.
func (m *postFormModel) post() models.Post {
	return models.Post{
		Title:    strings.TrimSpace(m.title.Value()),
		Category: strings.TrimSpace(m.category.Value()),
		Content:  strings.TrimSpace(m.content.Value()),
	}
}

// changes returns the fields that differ from original.
func (m *postFormModel) changes(original models.Post) models.PostUpdate {
	update := models.PostUpdate{PostID: original.PostID}
	current := m.post()

	if current.Title != original.Title {
		update.Title = &current.Title
	}
	if current.Category != original.Category {
		update.Category = &current.Category
	}
	if current.Content != original.Content {
		update.Content = &current.Content
	}

	return update
}

func (m *postFormModel) imagePath() string {
	return strings.TrimSpace(m.image.Value())
}

func (m postFormModel) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title    │ [%s]\n", m.title.View())
	fmt.Fprintf(&b, "Category │ [%s]\n", m.category.View())
	b.WriteString("Content\n")
	b.WriteString(m.content.View())
	b.WriteString("\n")
	fmt.Fprintf(&b, "Image    │ [%s]\n", m.image.View())

	return b.String()
}

// openUpload opens the file at path for a multipart upload. The caller
// closes the returned closer once the request is done.
func openUpload(path string) (*models.Upload, io.Closer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}

	upload := &models.Upload{
		Name:        filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Size:        info.Size(),
		Body:        file,
	}

	return upload, file, nil
}
