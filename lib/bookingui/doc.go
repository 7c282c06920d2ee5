// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

// Package bookingui renders the interactive seat-booking screen as a
// bubbletea program.
//
// The model owns presentation state only: the seat cursor, the text
// inputs of the passenger form, and transient notices. Booking flow
// state lives in a booking.Session and advances exclusively through
// booking.Reduce; the model translates key presses into booking
// events, applies the reducer, and performs any resulting commit
// against the seat store. A session transition that requires a commit
// is adopted only after the store accepts it, so a write failure never
// shows a success screen for a seat that was not persisted.
//
// Each step past idle renders as a modal spliced over the seat map:
// the passenger form, the payment summary, and the issued ticket.
package bookingui
