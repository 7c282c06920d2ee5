// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

// Package booking is the state machine of the seat-booking flow.
//
// The flow moves through four steps:
//
//	IDLE -> DETAILS -> PAYMENT -> SUCCESS -> IDLE
//
// Transitions are driven by [Reduce], a pure function from a
// [Session], an [Event], and a read-only [SeatView] to a [Result].
// Reduce performs no I/O: when a payment confirmation passes its
// guards, the booking to perform comes back as a [CommitRequest] for
// the caller to hand to the store. The caller adopts the resulting
// session only after the commit succeeds, which keeps the ticket view
// and the persisted collection in agreement.
//
// Events that arrive in the wrong step, or without their
// preconditions, leave the session unchanged. Two rejections carry a
// message for the user ([Result].Err): submitting incomplete passenger
// details, and selecting a seat that is already booked. Everything
// else fails silently because the UI never offers those actions.
//
// Seat selection toggles: re-selecting the selected seat clears the
// selection, selecting another seat replaces it. Selection changes are
// only honored while the step is IDLE; once a flow is in progress the
// selection is pinned, so the committed seat is always the seat the
// passenger details were entered for.
package booking
