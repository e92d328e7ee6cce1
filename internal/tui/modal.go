package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	modalMaxBodyW = 56
	modalMinBodyW = 28
	// Lines the box adds around the body: border top/bottom plus title and
	// its trailing blank line.
	modalChromeH = 4
	// Columns the box adds around the body: border left/right plus two
	// columns of padding on each side.
	modalChromeW = 6
)

func modalBodyWidth(width int) int {
	w := width - 8
	if w > modalMaxBodyW {
		w = modalMaxBodyW
	}
	if w < modalMinBodyW {
		w = modalMinBodyW
	}
	return w
}

// clampBodyLine pins a rendered line to exactly bodyW columns. Inputs render
// with cursor/ANSI styling, so measure with the ANSI-aware width.
func clampBodyLine(bodyW int, line string) string {
	line = strings.ReplaceAll(line, "\n", " ")
	line = strings.ReplaceAll(line, "\r", " ")
	out := lipgloss.PlaceHorizontal(bodyW, lipgloss.Left, line)
	if xansi.StringWidth(out) > bodyW {
		// Never exceed the modal body width; terminate ANSI styling to prevent bleed.
		out = xansi.Cut(out, 0, bodyW) + "\x1b[0m"
	}
	return out
}

// renderModalBox frames a title and body lines in the shared popup chrome.
// Every body line is clamped to the same width so the box edges stay straight.
func renderModalBox(width int, title string, body []string) string {
	bodyW := modalBodyWidth(width)
	lines := make([]string, 0, len(body)+2)
	lines = append(lines, clampBodyLine(bodyW, lipgloss.NewStyle().Bold(true).Render(title)))
	lines = append(lines, clampBodyLine(bodyW, ""))
	for _, ln := range body {
		lines = append(lines, clampBodyLine(bodyW, ln))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBoxBorder).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// modalOrigin mirrors lipgloss.Place centering so mouse coordinates can be
// translated back into box-relative ones.
func modalOrigin(width, height, boxW, boxH int) (x, y int) {
	x = (width - boxW) / 2
	if x < 0 {
		x = 0
	}
	y = (height - boxH) / 2
	if y < 0 {
		y = 0
	}
	return x, y
}
