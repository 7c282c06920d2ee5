// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package seat

import (
	"errors"
	"fmt"
	"strings"
)

// Seat is one physical bus seat and its booking outcome. The JSON
// field names are the persisted state-file schema and must not change.
//
// While unbooked, PassengerName and PassportNumber are null and
// BookedAt and TicketID are omitted. All four are set together by
// WithBooking when a payment commits; no code path sets a subset.
type Seat struct {
	// SeatNumber is the stable unique identifier, assigned at catalog
	// generation and never reassigned. Row number followed by column
	// letter, e.g. "12A".
	SeatNumber string `json:"seat_number"`

	// IsBooked is false until a successful payment commits a booking.
	IsBooked bool `json:"is_booked"`

	// PassengerName and PassportNumber identify the passenger who
	// booked the seat. Null while unbooked.
	PassengerName  *string `json:"passenger_name"`
	PassportNumber *string `json:"passport_number"`

	// BookedAt is the commit timestamp in RFC 3339 form. Empty while
	// unbooked.
	BookedAt string `json:"booked_at,omitempty"`

	// TicketID is the generated ticket identifier. Empty while
	// unbooked.
	TicketID string `json:"ticket_id,omitempty"`
}

// WithBooking returns a copy of the seat with all four booking fields
// set. The input passenger must already be normalized (see
// [Passenger.Normalize]); WithBooking copies its fields verbatim.
func (s Seat) WithBooking(passenger Passenger, ticketID, bookedAt string) Seat {
	booked := s
	booked.IsBooked = true
	booked.PassengerName = &passenger.FullName
	booked.PassportNumber = &passenger.PassportNumber
	booked.TicketID = ticketID
	booked.BookedAt = bookedAt
	return booked
}

// checkInvariant verifies that the booking fields are either all
// present (booked) or all absent (unbooked).
func (s Seat) checkInvariant() error {
	if s.SeatNumber == "" {
		return errors.New("empty seat number")
	}
	if s.IsBooked {
		if s.PassengerName == nil || *s.PassengerName == "" {
			return fmt.Errorf("seat %s: booked without passenger name", s.SeatNumber)
		}
		if s.PassportNumber == nil || *s.PassportNumber == "" {
			return fmt.Errorf("seat %s: booked without passport number", s.SeatNumber)
		}
		if s.BookedAt == "" {
			return fmt.Errorf("seat %s: booked without timestamp", s.SeatNumber)
		}
		if s.TicketID == "" {
			return fmt.Errorf("seat %s: booked without ticket ID", s.SeatNumber)
		}
		return nil
	}
	if s.PassengerName != nil || s.PassportNumber != nil || s.BookedAt != "" || s.TicketID != "" {
		return fmt.Errorf("seat %s: unbooked with booking fields set", s.SeatNumber)
	}
	return nil
}

// Validate checks that a collection is structurally sound: every seat
// satisfies the booking-field invariant and seat numbers are pairwise
// unique. An empty collection is rejected; the catalog always has at
// least one seat.
func Validate(seats []Seat) error {
	if len(seats) == 0 {
		return errors.New("empty seat collection")
	}

	var errs []error
	seen := make(map[string]bool, len(seats))
	for _, s := range seats {
		if err := s.checkInvariant(); err != nil {
			errs = append(errs, err)
		}
		if seen[s.SeatNumber] {
			errs = append(errs, fmt.Errorf("duplicate seat number %s", s.SeatNumber))
		}
		seen[s.SeatNumber] = true
	}
	return errors.Join(errs...)
}

// Find returns the seat with the given number, or false when no seat
// in the collection carries it.
func Find(seats []Seat, number string) (Seat, bool) {
	for _, s := range seats {
		if s.SeatNumber == number {
			return s, true
		}
	}
	return Seat{}, false
}

// Passenger is the transient detail input for an in-progress booking.
// It is copied onto a Seat only when the payment commits.
type Passenger struct {
	FullName       string
	PassportNumber string
}

// Normalize trims surrounding whitespace from both fields and reports
// an error when either is empty afterwards. The returned Passenger is
// the trimmed form; the receiver is unchanged.
func (p Passenger) Normalize() (Passenger, error) {
	trimmed := Passenger{
		FullName:       strings.TrimSpace(p.FullName),
		PassportNumber: strings.TrimSpace(p.PassportNumber),
	}

	var errs []error
	if trimmed.FullName == "" {
		errs = append(errs, errors.New("full name is required"))
	}
	if trimmed.PassportNumber == "" {
		errs = append(errs, errors.New("passport number is required"))
	}
	if err := errors.Join(errs...); err != nil {
		return Passenger{}, err
	}
	return trimmed, nil
}
