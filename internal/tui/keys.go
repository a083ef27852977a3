package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	tab1      key.Binding
	tab2      key.Binding
	tab3      key.Binding
	quit      key.Binding
	forceQuit key.Binding
	dismiss   key.Binding
	generate  key.Binding
	refresh   key.Binding
	copy      key.Binding
	reset     key.Binding
	stream    key.Binding
	buildInfo key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	tab1:      key.NewBinding(key.WithKeys("1")),
	tab2:      key.NewBinding(key.WithKeys("2")),
	tab3:      key.NewBinding(key.WithKeys("3")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	dismiss:   key.NewBinding(key.WithKeys("x")),
	generate:  key.NewBinding(key.WithKeys("g")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	copy:      key.NewBinding(key.WithKeys("c")),
	reset:     key.NewBinding(key.WithKeys("r")),
	stream:    key.NewBinding(key.WithKeys("s")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
