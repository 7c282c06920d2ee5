// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// spliceOverlay replaces a rectangular region of a rendered view with
// overlay content. The overlay lines are placed starting at (anchorX,
// anchorY) in screen coordinates. Uses ANSI-aware truncation so escape
// sequences in the underlying view are preserved on both sides of the
// overlay.
func spliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")
	overlayWidth := ansi.StringWidth(overlayLines[0])

	for index, overlayLine := range overlayLines {
		viewLineIndex := anchorY + index
		if viewLineIndex < 0 || viewLineIndex >= len(viewLines) {
			continue
		}

		viewLine := viewLines[viewLineIndex]
		viewLineWidth := ansi.StringWidth(viewLine)

		// Build: prefix + reset + overlay + reset + suffix.
		var result strings.Builder
		if anchorX > 0 {
			result.WriteString(ansi.Truncate(viewLine, anchorX, ""))
		}
		result.WriteString("\x1b[0m")
		result.WriteString(overlayLine)
		result.WriteString("\x1b[0m")

		suffixStart := anchorX + overlayWidth
		if suffixStart < viewLineWidth {
			result.WriteString(ansi.TruncateLeft(viewLine, suffixStart, ""))
		}

		viewLines[viewLineIndex] = result.String()
	}

	return strings.Join(viewLines, "\n")
}

// modalMargin keeps at least this much of the underlying view visible
// around a modal when the screen allows it.
const modalMargin = 2

// renderModal builds a centered, bordered modal from a title, body
// lines, and a one-line footer. Returns the rendered lines and the
// anchor position (top-left corner in screen coordinates) for
// spliceOverlay.
func renderModal(theme Theme, title string, body []string, footer string, screenWidth, screenHeight int) ([]string, int, int) {
	backgroundStyle := lipgloss.NewStyle().
		Background(theme.ModalBackground)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.HeaderForeground).
		Background(theme.ModalBackground)

	footerStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Background(theme.ModalBackground)

	// Inner width: widest line of the content, clamped so the border
	// still fits on screen with a margin.
	innerWidth := ansi.StringWidth(title)
	for _, line := range body {
		if width := ansi.StringWidth(line); width > innerWidth {
			innerWidth = width
		}
	}
	if width := ansi.StringWidth(footer); width > innerWidth {
		innerWidth = width
	}
	maxInner := screenWidth - 2 - modalMargin*2 // Border columns plus margin.
	if innerWidth > maxInner && maxInner > 0 {
		innerWidth = maxInner
	}

	pad := func(styled string) string {
		width := ansi.StringWidth(styled)
		if width > innerWidth {
			return ansi.Truncate(styled, innerWidth, "…")
		}
		return styled + backgroundStyle.Render(strings.Repeat(" ", innerWidth-width))
	}

	lines := make([]string, 0, len(body)+3)
	lines = append(lines, pad(titleStyle.Render(title)))
	lines = append(lines, pad(""))
	for _, line := range body {
		lines = append(lines, pad(line))
	}
	lines = append(lines, pad(""))
	lines = append(lines, pad(footerStyle.Render(footer)))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Background(theme.ModalBackground).
		Padding(0, 1)

	rendered := borderStyle.Render(strings.Join(lines, "\n"))
	resultLines := strings.Split(rendered, "\n")

	renderedWidth := 0
	if len(resultLines) > 0 {
		renderedWidth = ansi.StringWidth(resultLines[0])
	}
	anchorX := (screenWidth - renderedWidth) / 2
	anchorY := (screenHeight - len(resultLines)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}

	return resultLines, anchorX, anchorY
}
