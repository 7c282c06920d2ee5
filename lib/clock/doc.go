// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for testability.
//
// Production code accepts a [Clock] parameter instead of calling
// time.Now directly. In production, [Real] provides the standard
// library behavior. In tests, [Fake] provides a deterministic clock
// that moves only when Advance or Set is called, so timestamps written
// into seat records can be asserted exactly.
//
// # Wiring Pattern
//
// Add a Clock field to structs that stamp time:
//
//	store, err := store.Open(store.Options{
//	    Clock: clock.Real(),
//	    // ...
//	})
//
// In tests:
//
//	c := clock.Fake(time.Date(2026, 8, 31, 21, 0, 0, 0, time.UTC))
//	// commit a booking, assert its booked_at equals the fake instant
//	c.Advance(5 * time.Minute)
//
// This package depends on no other avtokassa packages.
package clock
