package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// pickerBodyLines is the fixed number of body lines in the picker popup:
// field row, blank, status, blank, help.
const pickerBodyLines = 5

type pickerLayout struct {
	boxX   int
	boxY   int
	fieldX int
	fieldY int
}

// pickerLayout mirrors the popup rendering so mouse coordinates can be
// mapped onto the field row. Keep it in sync with renderPickerModal.
func (m appModel) pickerLayout() pickerLayout {
	bodyW := modalBodyWidth(m.width)
	boxW := bodyW + modalChromeW
	boxH := pickerBodyLines + modalChromeH
	x, y := modalOrigin(m.width, m.height, boxW, boxH)
	return pickerLayout{
		boxX: x,
		boxY: y,
		// Border and left padding, then the label prefix.
		fieldX: x + 3 + xansi.StringWidth(m.fieldPrefix()),
		fieldY: y + 3,
	}
}

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading…"
	}
	if m.modal == modalPicker {
		return m.placeCentered(m.renderPickerModal())
	}
	return m.renderForm()
}

func (m appModel) placeCentered(s string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func (m appModel) fieldPrefix() string {
	p := styleMuted().Render(m.fieldLabel())
	if m.opts.Required {
		p += styleWarn().Render("*")
	}
	return p + "  "
}

func (m appModel) renderForm() string {
	header := lipgloss.NewStyle().Bold(true).Render("Time picker")

	value := "-"
	if m.committed != nil {
		value = *m.committed
	}
	row := m.fieldPrefix() + lipgloss.NewStyle().Foreground(colorSurfaceFg).Render(value)

	body := row
	if strings.TrimSpace(m.minibufferText) != "" {
		body += "\n\n" + styleWarn().Render(m.minibufferText)
	}

	footer := styleMuted().Render("enter: edit  q: quit")
	return strings.Join([]string{header, body, footer}, "\n\n")
}

func (m appModel) renderPickerModal() string {
	editor := m.picker.View()
	if m.editNative {
		editor = m.native.View()
	}
	body := []string{
		m.fieldPrefix() + editor,
		"",
		m.statusLine(),
		"",
		m.helpLine(),
	}
	return renderModalBox(m.width, "Pick a time", body)
}

func (m appModel) statusLine() string {
	if strings.TrimSpace(m.minibufferText) != "" {
		return styleWarn().Render(m.minibufferText)
	}
	if m.incomplete {
		return styleWarn().Render("Incomplete or out-of-range time.")
	}
	if m.pending != nil {
		return lipgloss.NewStyle().Foreground(colorSurfaceFg).Render(*m.pending)
	}
	return styleMuted().Render("No time set.")
}

func (m appModel) helpLine() string {
	if m.editNative {
		return styleMuted().Render("enter: accept  esc/ctrl+g: cancel  ctrl+t: segments")
	}
	return styleMuted().Render("enter: accept  esc/ctrl+g: cancel  up/down: step  ctrl+t: text entry")
}
