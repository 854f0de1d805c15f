package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	newItem   key.Binding
	edit      key.Binding
	toggle    key.Binding
	toggleAll key.Binding
	delete    key.Binding
	clearDone key.Binding
	sync      key.Binding
	copy      key.Binding
	info      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	toggle:    key.NewBinding(key.WithKeys(" ", "space")),
	toggleAll: key.NewBinding(key.WithKeys("a")),
	delete:    key.NewBinding(key.WithKeys("d")),
	clearDone: key.NewBinding(key.WithKeys("x")),
	sync:      key.NewBinding(key.WithKeys("s")),
	copy:      key.NewBinding(key.WithKeys("c")),
	info:      key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
