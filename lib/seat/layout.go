// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package seat

import (
	"errors"
	"fmt"
	"strconv"
)

// Layout describes the physical seat arrangement of the bus: how many
// rows, which column letters each row carries, and where the aisle
// splits the columns. The aisle position only affects rendering; seat
// numbering ignores it.
type Layout struct {
	// Rows is the number of seat rows, numbered from 1.
	Rows int `yaml:"rows"`

	// Letters are the column letters of each row, left to right as
	// seen facing the front of the bus. One seat per letter per row.
	Letters string `yaml:"letters"`

	// AisleAfter is how many columns sit left of the aisle. Must be
	// between 0 (aisle on the far left, effectively none) and
	// len(Letters).
	AisleAfter int `yaml:"aisle_after"`
}

// Capacity returns the total number of seats the layout describes.
func (l Layout) Capacity() int {
	return l.Rows * len(l.Letters)
}

// Validate checks the layout for structural errors.
func (l Layout) Validate() error {
	var errs []error
	if l.Rows <= 0 {
		errs = append(errs, fmt.Errorf("rows must be positive, got %d", l.Rows))
	}
	if len(l.Letters) == 0 {
		errs = append(errs, errors.New("letters must not be empty"))
	}
	seen := make(map[rune]bool, len(l.Letters))
	for _, letter := range l.Letters {
		if letter < 'A' || letter > 'Z' {
			errs = append(errs, fmt.Errorf("letter %q must be an uppercase ASCII letter", letter))
		}
		if seen[letter] {
			errs = append(errs, fmt.Errorf("duplicate letter %q", letter))
		}
		seen[letter] = true
	}
	if l.AisleAfter < 0 || l.AisleAfter > len(l.Letters) {
		errs = append(errs, fmt.Errorf("aisle_after must be between 0 and %d, got %d", len(l.Letters), l.AisleAfter))
	}
	return errors.Join(errs...)
}

// Generate produces the initial catalog for the layout: one unbooked
// seat per row/letter pair, ordered row-major ("1A", "1B", ..., "2A").
// Generation is a pure function of the layout; two calls always yield
// equal collections.
func (l Layout) Generate() []Seat {
	seats := make([]Seat, 0, l.Capacity())
	for row := 1; row <= l.Rows; row++ {
		for _, letter := range l.Letters {
			seats = append(seats, Seat{
				SeatNumber: strconv.Itoa(row) + string(letter),
			})
		}
	}
	return seats
}
