// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/avtokassa/avtokassa/lib/clock"
	"github.com/avtokassa/avtokassa/lib/seat"
	"github.com/avtokassa/avtokassa/lib/ticket"
)

// ErrUnknownSeat is returned by Commit for a seat number that does not
// exist in the catalog.
var ErrUnknownSeat = errors.New("unknown seat number")

// ErrAlreadyBooked is returned by Commit for a seat that already
// carries a booking. Bookings are permanent; there is no release path.
var ErrAlreadyBooked = errors.New("seat already booked")

// Options configures Open.
type Options struct {
	// Path is the state-file location.
	Path string

	// Layout generates the initial catalog when no prior state exists.
	Layout seat.Layout

	// Clock stamps booked_at on commits. Defaults to clock.Real().
	Clock clock.Clock

	// Tickets generates ticket identifiers on commits. Defaults to a
	// fresh ticket.NewGenerator().
	Tickets *ticket.Generator

	// Logger receives catalog-lifecycle and commit records. Defaults
	// to a discard logger.
	Logger *slog.Logger
}

// Store owns the seat collection: it is the single source of truth for
// booking outcomes, constructed at startup by Open and persisted on
// every commit. All reads return copies; the only mutation is Commit,
// which either updates both the file and the in-memory collection or
// neither.
type Store struct {
	path    string
	clock   clock.Clock
	tickets *ticket.Generator
	logger  *slog.Logger

	mu    sync.Mutex
	seats []seat.Seat
}

// Open loads the persisted collection from options.Path, or seeds a
// fresh catalog when none is usable: it generates the layout's seats,
// saves them, and uses the result. The generator is never invoked when
// prior state loads successfully, so committed bookings survive
// restarts indefinitely, even if the configured layout has changed
// since the state was written.
func Open(options Options) (*Store, error) {
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if options.Tickets == nil {
		options.Tickets = ticket.NewGenerator()
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}

	store := &Store{
		path:    options.Path,
		clock:   options.Clock,
		tickets: options.Tickets,
		logger:  options.Logger,
	}

	if seats, ok := Load(options.Path); ok {
		store.seats = seats
		store.logger.Info("loaded seat collection",
			"path", options.Path,
			"seats", len(seats))
		return store, nil
	}

	if err := options.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("generating catalog: %w", err)
	}
	seats := options.Layout.Generate()
	if err := Save(options.Path, seats); err != nil {
		return nil, fmt.Errorf("saving generated catalog: %w", err)
	}
	store.seats = seats
	store.logger.Info("generated fresh seat catalog",
		"path", options.Path,
		"seats", len(seats))
	return store, nil
}

// Seats returns a copy of the current collection in catalog order.
func (s *Store) Seats() []seat.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	seats := make([]seat.Seat, len(s.seats))
	copy(seats, s.seats)
	return seats
}

// Seat returns the seat with the given number, or false when the
// number is not in the catalog.
func (s *Store) Seat(number string) (seat.Seat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seat.Find(s.seats, number)
}

// Commit books a seat: it generates a ticket identifier, stamps the
// current time, sets all four booking fields on the matching record,
// and persists the full updated collection. On any failure the store
// is unchanged, in memory and on disk; a booking is never half
// applied.
//
// The passenger is normalized before use. Commit serializes
// concurrent callers, so at most one persistence write is in flight.
func (s *Store) Commit(seatNumber string, passenger seat.Passenger) (seat.Seat, error) {
	normalized, err := passenger.Normalize()
	if err != nil {
		return seat.Seat{}, fmt.Errorf("validating passenger: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i := range s.seats {
		if s.seats[i].SeatNumber == seatNumber {
			index = i
			break
		}
	}
	if index < 0 {
		return seat.Seat{}, fmt.Errorf("seat %s: %w", seatNumber, ErrUnknownSeat)
	}
	if s.seats[index].IsBooked {
		return seat.Seat{}, fmt.Errorf("seat %s: %w", seatNumber, ErrAlreadyBooked)
	}

	ticketID := s.tickets.NewID()
	bookedAt := s.clock.Now().UTC().Format(time.RFC3339)

	updated := make([]seat.Seat, len(s.seats))
	copy(updated, s.seats)
	updated[index] = updated[index].WithBooking(normalized, ticketID, bookedAt)

	if err := Save(s.path, updated); err != nil {
		return seat.Seat{}, fmt.Errorf("persisting booking: %w", err)
	}
	s.seats = updated

	s.logger.Info("committed booking",
		"seat", seatNumber,
		"ticket", ticketID,
		"booked_at", bookedAt)
	return updated[index], nil
}
