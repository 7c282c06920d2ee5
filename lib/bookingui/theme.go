// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the booking widget. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
// The accents follow the kassa's house colors: amber on black.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Header chrome (route banner).
	HeaderForeground lipgloss.Color
	HeaderAccent     lipgloss.Color

	// Seat map cells.
	SeatFree           lipgloss.Color
	SeatBooked         lipgloss.Color
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// UI chrome.
	BorderColor lipgloss.Color
	HelpText    lipgloss.Color
	ErrorText   lipgloss.Color

	// Modal overlays.
	ModalBackground lipgloss.Color

	// Ticket accents (success view).
	TicketAccent lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme: amber
// accents over the terminal background, matching the kassa branding.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	HeaderForeground: lipgloss.Color("255"),
	HeaderAccent:     lipgloss.Color("220"), // amber

	SeatFree:           lipgloss.Color("252"),
	SeatBooked:         lipgloss.Color("240"), // dim gray, visibly taken
	SelectedBackground: lipgloss.Color("220"), // amber
	SelectedForeground: lipgloss.Color("16"),  // near-black on amber

	BorderColor: lipgloss.Color("240"),
	HelpText:    lipgloss.Color("241"),
	ErrorText:   lipgloss.Color("196"),

	ModalBackground: lipgloss.Color("237"),

	TicketAccent: lipgloss.Color("220"),
}
