// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	submit    key.Binding
	quit      key.Binding
	forceQuit key.Binding
	lock      key.Binding
	newItem   key.Binding
	reload    key.Binding
	delete    key.Binding
	filter    key.Binding
	reveal    key.Binding
	info      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	lock:      key.NewBinding(key.WithKeys("l")),
	newItem:   key.NewBinding(key.WithKeys("a", "n")),
	reload:    key.NewBinding(key.WithKeys("r")),
	delete:    key.NewBinding(key.WithKeys("d")),
	filter:    key.NewBinding(key.WithKeys("/")),
	reveal:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6")),
	info:      key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
