// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the seat map. Bindings inside the
// modal steps (detail form, payment, ticket) are fixed -- tab, enter,
// escape -- and handled directly by the step handlers, because the
// form captures all printable input for its text fields.
type KeyMap struct {
	// Seat map navigation.
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Select toggles selection of the seat under the cursor.
	Select key.Binding

	// Book starts the booking flow for the selected seat.
	Book key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (hjkl) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "right"),
	),
	Select: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("Space", "select seat"),
	),
	Book: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "book"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
