// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package seat

import (
	"reflect"
	"testing"
)

func TestLayoutGenerate(t *testing.T) {
	layout := Layout{Rows: 10, Letters: "ABCD", AisleAfter: 2}

	seats := layout.Generate()
	if len(seats) != 40 {
		t.Fatalf("expected 40 seats, got %d", len(seats))
	}
	if len(seats) != layout.Capacity() {
		t.Errorf("Capacity() = %d, want %d", layout.Capacity(), len(seats))
	}

	// Row-major ordering with row numbers starting at 1.
	if seats[0].SeatNumber != "1A" {
		t.Errorf("first seat = %s, want 1A", seats[0].SeatNumber)
	}
	if seats[3].SeatNumber != "1D" {
		t.Errorf("fourth seat = %s, want 1D", seats[3].SeatNumber)
	}
	if seats[4].SeatNumber != "2A" {
		t.Errorf("fifth seat = %s, want 2A", seats[4].SeatNumber)
	}
	if seats[39].SeatNumber != "10D" {
		t.Errorf("last seat = %s, want 10D", seats[39].SeatNumber)
	}

	// Every seat starts unbooked with null passenger fields.
	for _, s := range seats {
		if s.IsBooked || s.PassengerName != nil || s.PassportNumber != nil ||
			s.BookedAt != "" || s.TicketID != "" {
			t.Errorf("seat %s not fresh: %+v", s.SeatNumber, s)
		}
	}

	// A fresh catalog always passes structural validation.
	if err := Validate(seats); err != nil {
		t.Errorf("fresh catalog failed validation: %v", err)
	}
}

func TestLayoutGenerateDeterministic(t *testing.T) {
	layout := Layout{Rows: 7, Letters: "AB", AisleAfter: 1}
	if !reflect.DeepEqual(layout.Generate(), layout.Generate()) {
		t.Error("two generations of the same layout differ")
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		wantErr bool
	}{
		{name: "default shape", layout: Layout{Rows: 10, Letters: "ABCD", AisleAfter: 2}},
		{name: "single column", layout: Layout{Rows: 3, Letters: "A", AisleAfter: 0}},
		{name: "zero rows", layout: Layout{Rows: 0, Letters: "AB", AisleAfter: 1}, wantErr: true},
		{name: "negative rows", layout: Layout{Rows: -2, Letters: "AB", AisleAfter: 1}, wantErr: true},
		{name: "no letters", layout: Layout{Rows: 5, Letters: "", AisleAfter: 0}, wantErr: true},
		{name: "duplicate letters", layout: Layout{Rows: 5, Letters: "AAB", AisleAfter: 1}, wantErr: true},
		{name: "lowercase letter", layout: Layout{Rows: 5, Letters: "Ab", AisleAfter: 1}, wantErr: true},
		{name: "aisle out of range", layout: Layout{Rows: 5, Letters: "ABCD", AisleAfter: 5}, wantErr: true},
		{name: "negative aisle", layout: Layout{Rows: 5, Letters: "ABCD", AisleAfter: -1}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.layout.Validate()
			if test.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !test.wantErr && err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}
