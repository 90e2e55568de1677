// Package ui provides shared rendering helpers for the TUI.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// dim is applied to background content behind a modal. Existing ANSI codes
// are stripped first; SGR faint does not combine reliably with prior color
// codes in most terminals.
var dim = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// Overlay centers overlay content on top of background, dimming whatever
// remains visible around it. Both strings are treated as width x height
// screens.
func Overlay(background, overlay string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	ovLines := strings.Split(overlay, "\n")

	ovWidth := 0
	for _, line := range ovLines {
		if w := ansi.StringWidth(line); w > ovWidth {
			ovWidth = w
		}
	}
	startX := max(0, (width-ovWidth)/2)
	startY := max(0, (height-len(ovLines))/2)

	out := make([]string, 0, max(height, len(bgLines)))
	for y := 0; y < max(height, len(bgLines)); y++ {
		var bg string
		if y < len(bgLines) {
			bg = bgLines[y]
		}

		oy := y - startY
		if oy < 0 || oy >= len(ovLines) {
			out = append(out, dim.Render(ansi.Strip(bg)))
			continue
		}
		out = append(out, compositeRow(bg, ovLines[oy], startX, ovWidth, width))
	}
	return strings.Join(out, "\n")
}

// compositeRow places a modal line over a background line at startX,
// dimming the background segments on either side.
func compositeRow(bg, line string, startX, lineWidth, totalWidth int) string {
	var b strings.Builder

	stripped := ansi.Strip(bg)
	bgWidth := ansi.StringWidth(stripped)

	if startX > 0 {
		left := ansi.Truncate(stripped, startX, "")
		b.WriteString(dim.Render(left))
		if w := ansi.StringWidth(left); w < startX {
			b.WriteString(strings.Repeat(" ", startX-w))
		}
	}

	b.WriteString(line)
	pad := lineWidth - ansi.StringWidth(line)
	if pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}

	rightStart := startX + lineWidth
	if rightStart < totalWidth && bgWidth > rightStart {
		b.WriteString(dim.Render(ansi.Cut(stripped, rightStart, bgWidth)))
	}
	return b.String()
}
