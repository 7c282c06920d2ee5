// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avtokassa/avtokassa/lib/booking"
	"github.com/avtokassa/avtokassa/lib/config"
	"github.com/avtokassa/avtokassa/lib/seat"
	"github.com/avtokassa/avtokassa/lib/store"
)

// Model is the root bubbletea model for the booking screen. It owns
// the seat map cursor, the current booking session, and the passenger
// details form, and bridges session transitions to the seat store.
type Model struct {
	store  *store.Store
	route  config.RouteConfig
	layout seat.Layout
	theme  Theme
	keys   KeyMap

	session booking.Session

	width  int
	height int

	cursorRow    int
	cursorColumn int

	form detailsForm

	// notice holds a transient message shown in the status line,
	// cleared on the next accepted action.
	notice string

	// lastBooked is the committed seat shown on the ticket view after
	// a successful confirmation.
	lastBooked seat.Seat
}

// New creates a booking model over the given store. The route and
// layout come from configuration and are rendering inputs only; the
// store remains the authority on seat state.
func New(seatStore *store.Store, route config.RouteConfig, layout seat.Layout) Model {
	return Model{
		store:  seatStore,
		route:  route,
		layout: layout,
		theme:  DefaultTheme,
		keys:   DefaultKeyMap,
		form:   newDetailsForm(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		return m, nil

	case tea.KeyMsg:
		// Ctrl+C quits from any step; plain "q" only outside the
		// details form, where letters belong to the text inputs.
		if message.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.session.Step {
		case booking.StepIdle:
			return m.updateIdle(message)
		case booking.StepDetails:
			return m.updateDetails(message)
		case booking.StepPayment:
			return m.updatePayment(message)
		case booking.StepSuccess:
			return m.updateSuccess(message)
		}
	}

	return m, nil
}

func (m Model) updateIdle(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(message, m.keys.Up):
		m.moveCursor(-1, 0)
		return m, nil

	case key.Matches(message, m.keys.Down):
		m.moveCursor(1, 0)
		return m, nil

	case key.Matches(message, m.keys.Left):
		m.moveCursor(0, -1)
		return m, nil

	case key.Matches(message, m.keys.Right):
		m.moveCursor(0, 1)
		return m, nil

	case key.Matches(message, m.keys.Select):
		m.applyEvent(booking.SelectSeat{Number: m.cursorSeatNumber()})
		return m, nil

	case key.Matches(message, m.keys.Book):
		if m.session.SelectedSeat == "" {
			m.notice = "avval joy tanlang"
			return m, nil
		}
		m.applyEvent(booking.StartBooking{})
		if m.session.Step == booking.StepDetails {
			m.form.prefill(m.session.Draft)
			return m, m.form.focusFirst()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateDetails(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.String() {
	case "esc":
		m.applyEvent(booking.CancelDetails{})
		m.form.blur()
		return m, nil

	case "tab", "shift+tab", "up", "down":
		return m, m.form.cycleFocus()

	case "enter":
		if !m.form.onLastField() {
			return m, m.form.cycleFocus()
		}
		m.applyEvent(booking.SubmitDetails{Passenger: m.form.passenger()})
		if m.session.Step == booking.StepPayment {
			m.form.blur()
		}
		return m, nil
	}

	var command tea.Cmd
	m.form, command = m.form.update(message)
	return m, command
}

func (m Model) updatePayment(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.String() {
	case "esc":
		m.applyEvent(booking.CancelPayment{})
		if m.session.Step == booking.StepDetails {
			m.form.prefill(m.session.Draft)
			return m, m.form.focusFirst()
		}
		return m, nil

	case "enter":
		m.applyEvent(booking.ConfirmPayment{})
		return m, nil
	}

	return m, nil
}

func (m Model) updateSuccess(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.String() {
	case "enter", "esc":
		m.applyEvent(booking.ResetFlow{})
		m.form = newDetailsForm()
		return m, nil
	}

	if key.Matches(message, m.keys.Quit) {
		return m, tea.Quit
	}

	return m, nil
}

// applyEvent runs a booking event through the reducer and performs the
// resulting commit, if any, against the store. The new session is
// adopted only when the commit succeeds, so a storage failure leaves
// the flow where it was with an explanatory notice.
func (m *Model) applyEvent(event booking.Event) {
	result := booking.Reduce(m.session, event, m.store)
	if result.Err != nil {
		m.notice = result.Err.Error()
		return
	}

	if result.Commit != nil {
		booked, err := m.store.Commit(result.Commit.SeatNumber, result.Commit.Passenger)
		if err != nil {
			m.notice = err.Error()
			return
		}
		m.lastBooked = booked
	}

	m.session = result.Session
	m.notice = ""
}

// moveCursor shifts the seat cursor by the given row and column
// deltas, clamped to the layout bounds.
func (m *Model) moveCursor(rowDelta, columnDelta int) {
	row := m.cursorRow + rowDelta
	column := m.cursorColumn + columnDelta

	if row < 0 {
		row = 0
	}
	if row > m.layout.Rows-1 {
		row = m.layout.Rows - 1
	}
	if column < 0 {
		column = 0
	}
	if column > len(m.layout.Letters)-1 {
		column = len(m.layout.Letters) - 1
	}

	m.cursorRow = row
	m.cursorColumn = column
}

// cursorSeatNumber returns the seat number under the cursor, in the
// same row-major numbering the catalog generator uses.
func (m Model) cursorSeatNumber() string {
	return seatNumberAt(m.layout, m.cursorRow, m.cursorColumn)
}
