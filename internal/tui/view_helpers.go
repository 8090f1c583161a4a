package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/charmbracelet/bubbles/textinput"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return b.String()
}

// renderForm lays labels and inputs out as a two-column table.
func renderForm(labels []string, inputs []textinput.Model) string {
	width := 0
	for _, label := range labels {
		width = max(width, len(label))
	}

	var b strings.Builder
	for i, label := range labels {
		fmt.Fprintf(&b, "%-*s │ [%s]\n", width, label, inputs[i].View())
	}

	return b.String()
}

func renderError(b *strings.Builder, msg string) {
	if msg == "" {
		return
	}
	b.WriteString("\n")
	b.WriteString(errorStyle.Render("Error: " + msg))
	b.WriteString("\n")
}

func renderStatus(b *strings.Builder, msg string) {
	if msg == "" {
		return
	}
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(msg))
	b.WriteString("\n")
}

// strengthBar draws the password score as a bar of MaxPasswordScore cells.
func strengthBar(password string) string {
	if password == "" {
		return ""
	}

	strength := validators.PasswordStrength(password)
	bar := strings.Repeat("█", strength.Score) + strings.Repeat("░", validators.MaxPasswordScore-strength.Score)
	style := strengthWeakStyle
	if strength.Strong() {
		style = strengthOKStyle
	}

	return style.Render(bar + " " + strength.Label)
}

func newInput(placeholder string, limit int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = limit
	input.Width = 40
	return input
}

func newPasswordInput(placeholder string) textinput.Model {
	input := newInput(placeholder, 72)
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	return input
}

func focusInput(inputs []textinput.Model, focus int) {
	for i := range inputs {
		if i == focus {
			inputs[i].Focus()
		} else {
			inputs[i].Blur()
		}
	}
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func fitText(v string, limit int) string {
	r := []rune(v)
	if limit <= 0 || len(r) <= limit {
		return v
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return string(r[:limit-3]) + "..."
}
