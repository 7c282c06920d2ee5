// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"fmt"

	"github.com/avtokassa/avtokassa/lib/seat"
)

// Session is the transient state of one booking flow: the selected
// seat, the current step, and the captured passenger draft. It lives
// only in memory; losing it loses nothing that the user cannot
// re-enter. The seat collection itself is never part of the session.
type Session struct {
	// Step is the current flow step.
	Step Step

	// SelectedSeat is the selected seat number, or "" for none.
	SelectedSeat string

	// Draft is the passenger captured by SubmitDetails, nil before
	// the detail form has been submitted. Already normalized.
	Draft *seat.Passenger
}

// SeatView is the read-only view of the seat collection the reducer
// consults for guards. *store.Store satisfies it.
type SeatView interface {
	// Seat returns the seat with the given number, or false when the
	// number is not in the catalog.
	Seat(number string) (seat.Seat, bool)
}

// CommitRequest is the one side effect a reduction can request: book
// the seat for the passenger and persist the collection. The caller
// hands it to the store and adopts the new session only if the commit
// succeeds, so the SUCCESS step is never shown for an unbooked seat.
type CommitRequest struct {
	SeatNumber string
	Passenger  seat.Passenger
}

// Result is the outcome of one reduction.
type Result struct {
	// Session is the next session state. On a rejected event it
	// equals the input session.
	Session Session

	// Commit is non-nil exactly when the event was a payment
	// confirmation that passed all guards.
	Commit *CommitRequest

	// Err is a validation message for the status line: incomplete
	// passenger details, or an attempt to select a booked seat. The
	// session did not advance when Err is set. Guard rejections that
	// cannot arise from normal use (confirming payment with no
	// selection, events out of step order) are silent no-ops instead.
	Err error
}

// Reduce applies one event to a session. It is a pure function: no
// I/O, no clock, no randomness. All state it needs arrives through
// the session and the seat view, so every transition is unit-testable
// without a UI harness, and the commit side effect is returned as
// data rather than performed.
func Reduce(session Session, event Event, seats SeatView) Result {
	switch event := event.(type) {
	case SelectSeat:
		return reduceSelect(session, event, seats)

	case StartBooking:
		if session.Step != StepIdle || session.SelectedSeat == "" {
			return Result{Session: session}
		}
		selected, ok := seats.Seat(session.SelectedSeat)
		if !ok || selected.IsBooked {
			return Result{Session: session}
		}
		session.Step = StepDetails
		return Result{Session: session}

	case SubmitDetails:
		if session.Step != StepDetails {
			return Result{Session: session}
		}
		normalized, err := event.Passenger.Normalize()
		if err != nil {
			return Result{Session: session, Err: err}
		}
		session.Draft = &normalized
		session.Step = StepPayment
		return Result{Session: session}

	case CancelDetails:
		if session.Step != StepDetails {
			return Result{Session: session}
		}
		session.Draft = nil
		session.Step = StepIdle
		return Result{Session: session}

	case CancelPayment:
		if session.Step != StepPayment {
			return Result{Session: session}
		}
		// Draft retained: the user steps back to a pre-filled form.
		session.Step = StepDetails
		return Result{Session: session}

	case ConfirmPayment:
		if session.Step != StepPayment {
			return Result{Session: session}
		}
		if session.SelectedSeat == "" || session.Draft == nil {
			// Unreachable through the UI; kept as a guard so a stray
			// confirmation can never produce a half-formed commit.
			return Result{Session: session}
		}
		selected, ok := seats.Seat(session.SelectedSeat)
		if !ok || selected.IsBooked {
			return Result{Session: session}
		}
		commit := &CommitRequest{
			SeatNumber: session.SelectedSeat,
			Passenger:  *session.Draft,
		}
		session.Step = StepSuccess
		return Result{Session: session, Commit: commit}

	case ResetFlow:
		if session.Step != StepSuccess {
			return Result{Session: session}
		}
		return Result{Session: Session{}}

	default:
		return Result{Session: session}
	}
}

// reduceSelect implements the selection toggle. Selection is only
// accepted while the flow is idle: once a detail form is open the
// selection is pinned until the flow completes or is cancelled, so a
// commit can never land on a seat other than the one the details were
// entered for.
func reduceSelect(session Session, event SelectSeat, seats SeatView) Result {
	if session.Step != StepIdle {
		return Result{Session: session}
	}

	if event.Number == session.SelectedSeat {
		session.SelectedSeat = ""
		return Result{Session: session}
	}

	selected, ok := seats.Seat(event.Number)
	if !ok {
		return Result{Session: session}
	}
	if selected.IsBooked {
		return Result{Session: session, Err: fmt.Errorf("seat %s is already booked", event.Number)}
	}

	session.SelectedSeat = event.Number
	return Result{Session: session}
}
