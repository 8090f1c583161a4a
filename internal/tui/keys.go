package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	submit      key.Binding
	quit        key.Binding
	buildInfo   key.Binding
	reload      key.Binding
	edit        key.Binding
	copy        key.Binding
	newPost     key.Binding
	editProfile key.Binding
	logout      key.Binding

	home      key.Binding
	about     key.Binding
	dashboard key.Binding
	login     key.Binding
	register  key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	submit:      key.NewBinding(key.WithKeys("ctrl+s")),
	quit:        key.NewBinding(key.WithKeys("q")),
	buildInfo:   key.NewBinding(key.WithKeys("v")),
	reload:      key.NewBinding(key.WithKeys("r")),
	edit:        key.NewBinding(key.WithKeys("e")),
	copy:        key.NewBinding(key.WithKeys("c")),
	newPost:     key.NewBinding(key.WithKeys("n")),
	editProfile: key.NewBinding(key.WithKeys("p")),
	logout:      key.NewBinding(key.WithKeys("x")),

	home:      key.NewBinding(key.WithKeys("1")),
	about:     key.NewBinding(key.WithKeys("2")),
	dashboard: key.NewBinding(key.WithKeys("3")),
	login:     key.NewBinding(key.WithKeys("4")),
	register:  key.NewBinding(key.WithKeys("5")),
}
