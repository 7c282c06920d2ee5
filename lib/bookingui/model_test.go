// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avtokassa/avtokassa/lib/booking"
	"github.com/avtokassa/avtokassa/lib/clock"
	"github.com/avtokassa/avtokassa/lib/config"
	"github.com/avtokassa/avtokassa/lib/seat"
	"github.com/avtokassa/avtokassa/lib/store"
	"github.com/avtokassa/avtokassa/lib/ticket"
)

var testLayout = seat.Layout{Rows: 3, Letters: "AB", AisleAfter: 1}

var testRoute = config.RouteConfig{
	From:          "Toshkent",
	To:            "Navoiy",
	DepartureTime: "21:00",
	Price:         120000,
}

// testModel builds a model over a fresh store in a temp directory and
// feeds it a window size so View has dimensions to work with.
func testModel(t *testing.T) (Model, *store.Store) {
	t.Helper()

	departure := time.Date(2026, 8, 31, 21, 0, 0, 0, time.UTC)
	seatStore, err := store.Open(store.Options{
		Path:    filepath.Join(t.TempDir(), "seats.json"),
		Layout:  testLayout,
		Clock:   clock.Fake(departure),
		Tickets: ticket.NewSeededGenerator(7),
	})
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}

	model := New(seatStore, testRoute, testLayout)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model), seatStore
}

func press(t *testing.T, model Model, message tea.Msg) Model {
	t.Helper()
	updated, _ := model.Update(message)
	return updated.(Model)
}

func pressRune(t *testing.T, model Model, r rune) Model {
	t.Helper()
	return press(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func typeString(t *testing.T, model Model, text string) Model {
	t.Helper()
	for _, r := range text {
		model = pressRune(t, model, r)
	}
	return model
}

func TestNewModel(t *testing.T) {
	model, _ := testModel(t)

	if model.session.Step != booking.StepIdle {
		t.Errorf("initial step should be IDLE, got %s", model.session.Step)
	}
	if got := model.cursorSeatNumber(); got != "1A" {
		t.Errorf("initial cursor should be on 1A, got %s", got)
	}

	view := model.View()
	if !strings.Contains(view, "Toshkent") || !strings.Contains(view, "Navoiy") {
		t.Error("view should show the route endpoints")
	}
	if !strings.Contains(view, "120 000 so'm") {
		t.Error("view should show the formatted fare")
	}
	if !strings.Contains(view, "3B") {
		t.Error("view should show the last seat of the catalog")
	}
}

func TestCursorNavigation(t *testing.T) {
	model, _ := testModel(t)

	model = pressRune(t, model, 'j')
	model = pressRune(t, model, 'l')
	if got := model.cursorSeatNumber(); got != "2B" {
		t.Errorf("cursor should be on 2B after down+right, got %s", got)
	}

	// Movement clamps at the grid edges.
	for range 5 {
		model = pressRune(t, model, 'j')
	}
	if got := model.cursorSeatNumber(); got != "3B" {
		t.Errorf("cursor should clamp at 3B, got %s", got)
	}
	for range 5 {
		model = pressRune(t, model, 'k')
	}
	for range 5 {
		model = pressRune(t, model, 'h')
	}
	if got := model.cursorSeatNumber(); got != "1A" {
		t.Errorf("cursor should clamp at 1A, got %s", got)
	}
}

func TestSelectToggle(t *testing.T) {
	model, _ := testModel(t)

	model = press(t, model, tea.KeyMsg{Type: tea.KeySpace})
	if model.session.SelectedSeat != "1A" {
		t.Fatalf("space should select 1A, got %q", model.session.SelectedSeat)
	}

	model = press(t, model, tea.KeyMsg{Type: tea.KeySpace})
	if model.session.SelectedSeat != "" {
		t.Errorf("second space should deselect, got %q", model.session.SelectedSeat)
	}
}

func TestSelectBookedSeatShowsNotice(t *testing.T) {
	model, seatStore := testModel(t)

	passenger := seat.Passenger{FullName: "Aliyev Vali", PassportNumber: "AB1234567"}
	if _, err := seatStore.Commit("1A", passenger); err != nil {
		t.Fatalf("commit: %v", err)
	}

	model = press(t, model, tea.KeyMsg{Type: tea.KeySpace})
	if model.session.SelectedSeat != "" {
		t.Errorf("booked seat should not become selected, got %q", model.session.SelectedSeat)
	}
	if model.notice == "" {
		t.Error("selecting a booked seat should set a notice")
	}
}

func TestBookWithoutSelection(t *testing.T) {
	model, _ := testModel(t)

	model = pressRune(t, model, 'b')
	if model.session.Step != booking.StepIdle {
		t.Errorf("booking with no selection should stay IDLE, got %s", model.session.Step)
	}
	if model.notice == "" {
		t.Error("booking with no selection should set a notice")
	}
}

func TestCancelDetailsKeepsSelection(t *testing.T) {
	model, _ := testModel(t)

	model = press(t, model, tea.KeyMsg{Type: tea.KeySpace})
	model = pressRune(t, model, 'b')
	if model.session.Step != booking.StepDetails {
		t.Fatalf("expected DETAILS, got %s", model.session.Step)
	}

	model = press(t, model, tea.KeyMsg{Type: tea.KeyEscape})
	if model.session.Step != booking.StepIdle {
		t.Errorf("escape should return to IDLE, got %s", model.session.Step)
	}
	if model.session.SelectedSeat != "1A" {
		t.Errorf("selection should survive cancel, got %q", model.session.SelectedSeat)
	}
}

func TestSubmitEmptyDetailsStaysOnForm(t *testing.T) {
	model, _ := testModel(t)

	model = press(t, model, tea.KeyMsg{Type: tea.KeySpace})
	model = pressRune(t, model, 'b')

	// Enter on the name field moves focus; enter on the passport
	// field submits the still-empty form.
	model = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if model.session.Step != booking.StepDetails {
		t.Errorf("empty submit should stay on DETAILS, got %s", model.session.Step)
	}
	if model.notice == "" {
		t.Error("empty submit should set a notice")
	}
}

func TestCancelPaymentRetainsDraft(t *testing.T) {
	model, _ := testModel(t)

	model = press(t, model, tea.KeyMsg{Type: tea.KeySpace})
	model = pressRune(t, model, 'b')
	model = typeString(t, model, "Aliyev Vali")
	model = press(t, model, tea.KeyMsg{Type: tea.KeyTab})
	model = typeString(t, model, "AB1234567")
	model = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if model.session.Step != booking.StepPayment {
		t.Fatalf("expected PAYMENT, got %s", model.session.Step)
	}

	model = press(t, model, tea.KeyMsg{Type: tea.KeyEscape})
	if model.session.Step != booking.StepDetails {
		t.Fatalf("escape should return to DETAILS, got %s", model.session.Step)
	}
	if got := model.form.name.Value(); got != "Aliyev Vali" {
		t.Errorf("name field should be prefilled from the draft, got %q", got)
	}
	if got := model.form.passport.Value(); got != "AB1234567" {
		t.Errorf("passport field should be prefilled from the draft, got %q", got)
	}
}

func TestFullBookingFlow(t *testing.T) {
	model, seatStore := testModel(t)

	model = pressRune(t, model, 'j')
	model = press(t, model, tea.KeyMsg{Type: tea.KeySpace})
	model = pressRune(t, model, 'b')
	model = typeString(t, model, "  Aliyev Vali  ")
	model = press(t, model, tea.KeyMsg{Type: tea.KeyTab})
	model = typeString(t, model, "AB1234567")
	model = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if model.session.Step != booking.StepSuccess {
		t.Fatalf("expected SUCCESS, got %s", model.session.Step)
	}

	booked, ok := seatStore.Seat("2A")
	if !ok || !booked.IsBooked {
		t.Fatal("seat 2A should be booked in the store")
	}
	if booked.PassengerName == nil || *booked.PassengerName != "Aliyev Vali" {
		t.Errorf("passenger name should be normalized, got %v", booked.PassengerName)
	}

	view := model.View()
	if !strings.Contains(view, ticket.IDPrefix) {
		t.Error("success view should show the ticket ID")
	}
	if !strings.Contains(view, "Aliyev Vali") {
		t.Error("success view should show the passenger name")
	}

	// Enter dismisses the ticket and starts a fresh session.
	model = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if model.session.Step != booking.StepIdle {
		t.Errorf("dismissing the ticket should return to IDLE, got %s", model.session.Step)
	}
	if model.session.SelectedSeat != "" {
		t.Errorf("new session should have no selection, got %q", model.session.SelectedSeat)
	}
}

func TestQuit(t *testing.T) {
	model, _ := testModel(t)

	_, command := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if command == nil {
		t.Fatal("q should produce a quit command")
	}
	if message := command(); message != (tea.QuitMsg{}) {
		t.Errorf("expected QuitMsg, got %T", message)
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		price int
		want  string
	}{
		{120000, "120 000 so'm"},
		{1500000, "1 500 000 so'm"},
		{900, "900 so'm"},
		{0, "0 so'm"},
	}
	for _, testCase := range cases {
		if got := formatPrice(testCase.price); got != testCase.want {
			t.Errorf("formatPrice(%d) = %q, want %q", testCase.price, got, testCase.want)
		}
	}
}
