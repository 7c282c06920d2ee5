// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

// Package seat defines the seat records of a bus route and the catalog
// generator that produces them.
//
// A [Seat] is the persisted unit of the system: one physical seat with
// its booking outcome. The booking fields obey a single invariant,
// checked by [Validate]: IsBooked is true exactly when PassengerName,
// PassportNumber, BookedAt, and TicketID are all present, and false
// exactly when all four are absent. There is no partially booked seat.
// [Seat.WithBooking] is the only constructor for a booked seat, so the
// four fields can never be set individually.
//
// A [Layout] describes the physical arrangement of the bus (rows,
// lettered columns, aisle position) and generates the initial catalog
// via [Layout.Generate]. Generation is deterministic: the same layout
// always yields the same ordered sequence of seat numbers, so a
// regenerated catalog is structurally identical to the one it
// replaces. The catalog's cardinality is fixed at generation time;
// seats are never added or removed afterwards.
//
// [Passenger] is the transient input captured while a booking is in
// progress. It is never persisted on its own; its fields are copied
// onto a Seat at commit time.
//
// This package depends on no other avtokassa packages.
package seat
