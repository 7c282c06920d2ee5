// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package seat

import (
	"strings"
	"testing"
)

func stringPtr(value string) *string { return &value }

func TestWithBookingSetsAllFields(t *testing.T) {
	unbooked := Seat{SeatNumber: "12A"}
	passenger := Passenger{FullName: "Ali Valiyev", PassportNumber: "AB1234567"}

	booked := unbooked.WithBooking(passenger, "T-4F8ZK2Q1M", "2026-08-31T21:00:00Z")

	if !booked.IsBooked {
		t.Error("booked seat should have IsBooked true")
	}
	if booked.PassengerName == nil || *booked.PassengerName != "Ali Valiyev" {
		t.Errorf("passenger name not copied: %v", booked.PassengerName)
	}
	if booked.PassportNumber == nil || *booked.PassportNumber != "AB1234567" {
		t.Errorf("passport number not copied: %v", booked.PassportNumber)
	}
	if booked.TicketID != "T-4F8ZK2Q1M" {
		t.Errorf("ticket ID = %q", booked.TicketID)
	}
	if booked.BookedAt != "2026-08-31T21:00:00Z" {
		t.Errorf("booked at = %q", booked.BookedAt)
	}

	// The receiver is unchanged: WithBooking returns a copy.
	if unbooked.IsBooked || unbooked.PassengerName != nil {
		t.Error("WithBooking mutated its receiver")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		seats   []Seat
		wantErr string // Empty means valid.
	}{
		{
			name:    "empty collection",
			seats:   nil,
			wantErr: "empty seat collection",
		},
		{
			name:  "fresh catalog",
			seats: []Seat{{SeatNumber: "1A"}, {SeatNumber: "1B"}},
		},
		{
			name: "booked seat with all fields",
			seats: []Seat{{
				SeatNumber:     "2A",
				IsBooked:       true,
				PassengerName:  stringPtr("Ali Valiyev"),
				PassportNumber: stringPtr("AB1234567"),
				BookedAt:       "2026-08-31T21:00:00Z",
				TicketID:       "T-4F8ZK2Q1M",
			}},
		},
		{
			name:    "duplicate seat numbers",
			seats:   []Seat{{SeatNumber: "1A"}, {SeatNumber: "1A"}},
			wantErr: "duplicate seat number 1A",
		},
		{
			name:    "empty seat number",
			seats:   []Seat{{SeatNumber: ""}},
			wantErr: "empty seat number",
		},
		{
			name: "booked without ticket ID",
			seats: []Seat{{
				SeatNumber:     "3C",
				IsBooked:       true,
				PassengerName:  stringPtr("Ali Valiyev"),
				PassportNumber: stringPtr("AB1234567"),
				BookedAt:       "2026-08-31T21:00:00Z",
			}},
			wantErr: "booked without ticket ID",
		},
		{
			name: "unbooked with leftover booking fields",
			seats: []Seat{{
				SeatNumber: "4D",
				TicketID:   "T-4F8ZK2Q1M",
			}},
			wantErr: "unbooked with booking fields set",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := Validate(test.seats)
			if test.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", test.wantErr)
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Fatalf("error %q does not contain %q", err.Error(), test.wantErr)
			}
		})
	}
}

func TestFind(t *testing.T) {
	seats := []Seat{{SeatNumber: "1A"}, {SeatNumber: "1B"}, {SeatNumber: "2A"}}

	found, ok := Find(seats, "1B")
	if !ok || found.SeatNumber != "1B" {
		t.Errorf("Find(1B) = %v, %v", found, ok)
	}

	if _, ok := Find(seats, "9Z"); ok {
		t.Error("Find(9Z) should report absent")
	}
}

func TestPassengerNormalize(t *testing.T) {
	tests := []struct {
		name      string
		passenger Passenger
		want      Passenger
		wantErr   bool
	}{
		{
			name:      "already clean",
			passenger: Passenger{FullName: "Ali Valiyev", PassportNumber: "AB1234567"},
			want:      Passenger{FullName: "Ali Valiyev", PassportNumber: "AB1234567"},
		},
		{
			name:      "surrounding whitespace trimmed",
			passenger: Passenger{FullName: "  Ali Valiyev \t", PassportNumber: " AB1234567\n"},
			want:      Passenger{FullName: "Ali Valiyev", PassportNumber: "AB1234567"},
		},
		{
			name:      "empty name",
			passenger: Passenger{FullName: "", PassportNumber: "AB1234567"},
			wantErr:   true,
		},
		{
			name:      "whitespace-only passport",
			passenger: Passenger{FullName: "Ali Valiyev", PassportNumber: "   "},
			wantErr:   true,
		},
		{
			name:      "both empty",
			passenger: Passenger{},
			wantErr:   true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.passenger.Normalize()
			if test.wantErr {
				if err == nil {
					t.Fatal("expected a validation error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if got != test.want {
				t.Errorf("Normalize = %+v, want %+v", got, test.want)
			}
		})
	}
}
