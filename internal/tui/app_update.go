package tui

import (
	"strings"

	"timefield/internal/timeinput"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case timeinput.ChangeMsg:
		// Editor notifications only matter while the popup is open; a late
		// one after cancel must not overwrite the restored value.
		if m.modal != modalPicker {
			return m, nil
		}
		m.pending = msg.Value
		m.incomplete = false
		return m, nil

	case timeinput.InvalidChangeMsg:
		if m.modal != modalPicker {
			return m, nil
		}
		m.incomplete = true
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		m.debugKeyMsg(msg)
		m.minibufferText = ""
		if m.modal == modalPicker {
			return m.updatePicker(msg)
		}
		return m.updateForm(msg)
	}

	return m.forwardToEditor(msg)
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "enter", "e":
		return m, m.openPicker()
	}
	return m, nil
}

func (m appModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "ctrl+g":
		m.closePicker()
		return m, nil
	case "enter":
		return m, m.accept()
	case "ctrl+t":
		return m, m.toggleEditor()
	}
	return m.forwardToEditor(msg)
}

func (m appModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.modal != modalPicker {
		return m, nil
	}
	e := tea.MouseEvent(msg)
	if e.Action != tea.MouseActionPress || e.Button != tea.MouseButtonLeft {
		return m, nil
	}
	lay := m.pickerLayout()
	if e.Y != lay.fieldY || e.X < lay.fieldX {
		return m, nil
	}
	if m.editNative {
		return m, m.native.Focus()
	}
	// The widget maps x offsets onto its own rendered segments.
	e.X -= lay.fieldX
	e.Y = 0
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(tea.MouseMsg(e))
	return m, cmd
}

func (m appModel) forwardToEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.modal != modalPicker {
		return m, nil
	}
	var cmd tea.Cmd
	if m.editNative {
		m.native, cmd = m.native.Update(msg)
		return m, cmd
	}
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// accept takes the editor's value, enforcing Required, and quits with it.
// Blurring first resolves any half-typed hour the way leaving the segment
// would.
func (m *appModel) accept() tea.Cmd {
	var blurCmd tea.Cmd
	var v *string
	if m.editNative {
		txt := strings.TrimSpace(m.native.Text())
		if txt != "" {
			if _, err := timeinput.Canonicalize(txt, m.opts.Granularity); err != nil {
				m.showMinibuffer("Not a valid time.")
				return nil
			}
		}
		blurCmd = m.native.Blur()
		v = m.native.Value()
	} else {
		blurCmd = m.picker.Blur()
		v = m.picker.Value()
	}

	if m.opts.Required && v == nil {
		m.showMinibuffer("A time is required.")
		if m.editNative {
			return tea.Batch(blurCmd, m.native.Focus())
		}
		return tea.Batch(blurCmd, m.picker.Focus())
	}

	m.committed = v
	m.pending = v
	m.accepted = true
	m.modal = modalNone
	return tea.Quit
}

// toggleEditor swaps between the segmented and single-field editors,
// carrying the last good value across.
func (m *appModel) toggleEditor() tea.Cmd {
	if m.editNative {
		blurCmd := m.native.Blur()
		v := ""
		if cur := m.native.Value(); cur != nil {
			v = *cur
		}
		_ = m.picker.SetValue(v)
		m.picker.Reset()
		m.editNative = false
		return tea.Batch(blurCmd, m.picker.Focus())
	}
	blurCmd := m.picker.Blur()
	v := ""
	if cur := m.picker.Value(); cur != nil {
		v = *cur
	}
	_ = m.native.SetValue(v)
	m.editNative = true
	return tea.Batch(blurCmd, m.native.Focus())
}
