// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avtokassa/avtokassa/lib/seat"
)

// detailsForm is the two-field passenger entry form shown in the
// details step. Field order is fixed: full name, then passport number.
type detailsForm struct {
	name     textinput.Model
	passport textinput.Model
	focused  int
}

func newDetailsForm() detailsForm {
	name := textinput.New()
	name.Placeholder = "Aliyev Vali"
	name.CharLimit = 64
	name.Width = 28

	passport := textinput.New()
	passport.Placeholder = "AB1234567"
	passport.CharLimit = 16
	passport.Width = 28

	return detailsForm{name: name, passport: passport}
}

// prefill restores field values from a retained draft, so returning
// from the payment step does not lose what the passenger typed.
func (f *detailsForm) prefill(draft *seat.Passenger) {
	if draft == nil {
		return
	}
	f.name.SetValue(draft.FullName)
	f.passport.SetValue(draft.PassportNumber)
}

// passenger returns the current field values. Normalization is the
// reducer's job; the form hands over raw input.
func (f detailsForm) passenger() seat.Passenger {
	return seat.Passenger{
		FullName:       f.name.Value(),
		PassportNumber: f.passport.Value(),
	}
}

func (f *detailsForm) focusFirst() tea.Cmd {
	f.focused = 0
	f.passport.Blur()
	return f.name.Focus()
}

func (f *detailsForm) cycleFocus() tea.Cmd {
	f.focused = (f.focused + 1) % 2
	if f.focused == 0 {
		f.passport.Blur()
		return f.name.Focus()
	}
	f.name.Blur()
	return f.passport.Focus()
}

func (f detailsForm) onLastField() bool {
	return f.focused == 1
}

func (f *detailsForm) blur() {
	f.name.Blur()
	f.passport.Blur()
}

func (f detailsForm) update(message tea.Msg) (detailsForm, tea.Cmd) {
	var command tea.Cmd
	if f.focused == 0 {
		f.name, command = f.name.Update(message)
	} else {
		f.passport, command = f.passport.Update(message)
	}
	return f, command
}
