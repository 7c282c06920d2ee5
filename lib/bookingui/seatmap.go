// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avtokassa/avtokassa/lib/booking"
	"github.com/avtokassa/avtokassa/lib/seat"
)

// seatNumberAt maps a (row, column) cursor position to the seat number
// at that position. Rows and columns are zero-based; the resulting
// number uses the one-based row the catalog generator produces.
func seatNumberAt(layout seat.Layout, row, column int) string {
	return fmt.Sprintf("%d%c", row+1, layout.Letters[column])
}

// renderSeatMap draws the seat grid. Each cell shows the seat number,
// styled by its state; the cursor cell is inverted, and the aisle is a
// gap between letter columns.
func (m Model) renderSeatMap(seats []seat.Seat) string {
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	freeStyle := cellStyle.Foreground(m.theme.SeatFree)
	bookedStyle := cellStyle.Foreground(m.theme.SeatBooked)
	selectedStyle := cellStyle.
		Foreground(m.theme.SelectedForeground).
		Background(m.theme.SelectedBackground).
		Bold(true)
	cursorStyle := cellStyle.Reverse(true).Bold(true)

	var rows []string
	for row := 0; row < m.layout.Rows; row++ {
		var cells []string
		for column := 0; column < len(m.layout.Letters); column++ {
			if column == m.layout.AisleAfter {
				cells = append(cells, "  ")
			}

			number := seatNumberAt(m.layout, row, column)
			label := fmt.Sprintf("%3s", number)

			style := freeStyle
			if found, ok := seat.Find(seats, number); ok && found.IsBooked {
				style = bookedStyle
			}
			if number == m.session.SelectedSeat {
				style = selectedStyle
			}
			if row == m.cursorRow && column == m.cursorColumn &&
				m.session.Step == booking.StepIdle {
				style = cursorStyle
			}

			cells = append(cells, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(rows, "\n")
}

// renderLegend draws the seat-state legend under the map.
func (m Model) renderLegend() string {
	freeStyle := lipgloss.NewStyle().Foreground(m.theme.SeatFree)
	bookedStyle := lipgloss.NewStyle().Foreground(m.theme.SeatBooked)
	faint := lipgloss.NewStyle().Foreground(m.theme.FaintText)

	return strings.Join([]string{
		freeStyle.Render("■"), faint.Render("Bo'sh  "),
		bookedStyle.Render("■"), faint.Render("Band"),
	}, " ")
}
