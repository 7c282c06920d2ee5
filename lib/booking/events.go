// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import "github.com/avtokassa/avtokassa/lib/seat"

// Event is a user action delivered to the reducer. The set of events
// is closed: these seven are the entire interface between the view
// layer and the booking flow.
type Event interface {
	isEvent()
}

// SelectSeat toggles seat selection: selecting the currently selected
// seat deselects it, selecting a different seat replaces the
// selection. Only honored while the flow is idle.
type SelectSeat struct {
	Number string
}

// StartBooking opens the passenger detail form for the selected seat.
type StartBooking struct{}

// SubmitDetails submits the passenger detail form. The passenger is
// validated during reduction; an incomplete draft keeps the flow on
// the detail step.
type SubmitDetails struct {
	Passenger seat.Passenger
}

// CancelDetails closes the detail form and discards the draft.
type CancelDetails struct{}

// CancelPayment steps back from payment to the detail form. The draft
// is retained so the passenger need not be re-entered.
type CancelPayment struct{}

// ConfirmPayment reports simulated payment success. This is the single
// commit trigger of the whole system.
type ConfirmPayment struct{}

// ResetFlow acknowledges the ticket view and returns to idle.
type ResetFlow struct{}

func (SelectSeat) isEvent()     {}
func (StartBooking) isEvent()   {}
func (SubmitDetails) isEvent()  {}
func (CancelDetails) isEvent()  {}
func (CancelPayment) isEvent()  {}
func (ConfirmPayment) isEvent() {}
func (ResetFlow) isEvent()      {}
