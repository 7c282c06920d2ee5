// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avtokassa/avtokassa/lib/booking"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	seats := m.store.Seats()

	sections := []string{
		m.renderHeader(),
		"",
		m.renderSeatMap(seats),
		"",
		m.renderLegend(),
		"",
		m.renderActionBar(),
		m.renderStatusLine(),
	}
	base := strings.Join(sections, "\n")

	// Pad to full height so modal splicing has lines to land on.
	baseLines := strings.Count(base, "\n") + 1
	if baseLines < m.height {
		base += strings.Repeat("\n", m.height-baseLines)
	}

	var title, footer string
	var body []string
	switch m.session.Step {
	case booking.StepDetails:
		title, body, footer = m.renderDetailsModal()
	case booking.StepPayment:
		title, body, footer = m.renderPaymentModal()
	case booking.StepSuccess:
		title, body, footer = m.renderTicketModal()
	default:
		return base
	}

	lines, anchorX, anchorY := renderModal(m.theme, title, body, footer, m.width, m.height)
	return spliceOverlay(base, lines, anchorX, anchorY)
}

func (m Model) renderHeader() string {
	routeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.HeaderForeground)
	accentStyle := lipgloss.NewStyle().Foreground(m.theme.HeaderAccent)
	faintStyle := lipgloss.NewStyle().Foreground(m.theme.FaintText)

	route := routeStyle.Render(m.route.From + " → " + m.route.To)
	departure := faintStyle.Render("jo'nash " + m.route.DepartureTime)
	price := accentStyle.Render(formatPrice(m.route.Price))

	return route + "   " + departure + "   " + price
}

func (m Model) renderActionBar() string {
	faintStyle := lipgloss.NewStyle().Foreground(m.theme.FaintText)
	accentStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.HeaderAccent)

	if m.session.SelectedSeat == "" {
		return faintStyle.Render("Joy tanlang")
	}

	return faintStyle.Render("Tanlangan joy: ") +
		accentStyle.Render(m.session.SelectedSeat) +
		faintStyle.Render("   [b] band qilish")
}

func (m Model) renderStatusLine() string {
	if m.notice != "" {
		return lipgloss.NewStyle().
			Foreground(m.theme.ErrorText).
			Render(m.notice)
	}

	return lipgloss.NewStyle().
		Foreground(m.theme.HelpText).
		Render("↑↓←→/hjkl: yurish   space: tanlash   b: band qilish   q: chiqish")
}

func (m Model) renderDetailsModal() (string, []string, string) {
	labelStyle := lipgloss.NewStyle().
		Foreground(m.theme.FaintText).
		Background(m.theme.ModalBackground)

	body := []string{
		labelStyle.Render("F.I.Sh."),
		m.form.name.View(),
		"",
		labelStyle.Render("Pasport raqami"),
		m.form.passport.View(),
	}
	if m.notice != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(m.theme.ErrorText).
			Background(m.theme.ModalBackground)
		body = append(body, "", errorStyle.Render(m.notice))
	}

	title := "Yo'lovchi ma'lumotlari · " + m.session.SelectedSeat
	footer := "tab: keyingi maydon   enter: davom etish   esc: bekor qilish"
	return title, body, footer
}

func (m Model) renderPaymentModal() (string, []string, string) {
	draft := m.session.Draft

	body := []string{
		m.modalField("Yo'nalish", m.route.From+" → "+m.route.To),
		m.modalField("Jo'nash", m.route.DepartureTime),
		m.modalField("Joy", m.session.SelectedSeat),
	}
	if draft != nil {
		body = append(body,
			m.modalField("Yo'lovchi", draft.FullName),
			m.modalField("Pasport", draft.PassportNumber),
		)
	}
	body = append(body, "", m.modalField("To'lov", formatPrice(m.route.Price)))
	if m.notice != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(m.theme.ErrorText).
			Background(m.theme.ModalBackground)
		body = append(body, "", errorStyle.Render(m.notice))
	}

	footer := "enter: to'lovni tasdiqlash   esc: orqaga"
	return "To'lov", body, footer
}

func (m Model) renderTicketModal() (string, []string, string) {
	ticketStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.TicketAccent).
		Background(m.theme.ModalBackground)

	booked := m.lastBooked

	body := []string{
		ticketStyle.Render(booked.TicketID),
		"",
		m.modalField("Yo'nalish", m.route.From+" → "+m.route.To),
		m.modalField("Jo'nash", m.route.DepartureTime),
		m.modalField("Joy", booked.SeatNumber),
	}
	if booked.PassengerName != nil {
		body = append(body, m.modalField("Yo'lovchi", *booked.PassengerName))
	}
	if booked.PassportNumber != nil {
		body = append(body, m.modalField("Pasport", *booked.PassportNumber))
	}
	body = append(body, m.modalField("Narx", formatPrice(m.route.Price)))

	footer := "enter: yopish"
	return "Chipta band qilindi", body, footer
}

func (m Model) modalField(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(m.theme.FaintText).
		Background(m.theme.ModalBackground)
	valueStyle := lipgloss.NewStyle().
		Foreground(m.theme.NormalText).
		Background(m.theme.ModalBackground)

	return labelStyle.Render(fmt.Sprintf("%-12s", label)) + valueStyle.Render(value)
}

// formatPrice renders a price in so'm with thousands separated by
// spaces, matching how fares are printed on tickets.
func formatPrice(price int) string {
	digits := fmt.Sprintf("%d", price)

	var grouped strings.Builder
	for index, digit := range digits {
		if index > 0 && (len(digits)-index)%3 == 0 {
			grouped.WriteByte(' ')
		}
		grouped.WriteRune(digit)
	}

	return grouped.String() + " so'm"
}
