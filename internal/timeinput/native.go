package timeinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Native is the fallback single-field input: one free-text time entry that
// commits a complete-or-empty value on enter or blur and never goes
// through the segmented routing. Containers swap it in where segment
// editing is unwanted.
type Native struct {
	input     textinput.Model
	gran      Granularity
	committed *string
}

func NewNative(g Granularity) Native {
	in := textinput.New()
	in.Prompt = ""
	n := Native{input: in, gran: g}
	n.sizeInput()
	return n
}

func (n *Native) sizeInput() {
	if n.gran == GranularitySecond {
		n.input.Placeholder = "HH:MM:SS"
		n.input.CharLimit = 8
		n.input.Width = 8
		return
	}
	n.input.Placeholder = "HH:MM"
	n.input.CharLimit = 5
	n.input.Width = 5
}

func (n Native) Update(msg tea.Msg) (Native, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if !n.input.Focused() {
			return n, nil
		}
		if key.String() == "enter" {
			cmd := n.commit()
			return n, cmd
		}
	}
	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return n, cmd
}

// commit parses the whole entry. Unparseable text signals invalid and
// keeps the previous committed value; a cleared field commits nil once.
func (n *Native) commit() tea.Cmd {
	raw := strings.TrimSpace(n.input.Value())
	if raw == "" {
		if n.committed == nil {
			return nil
		}
		n.committed = nil
		return emitMsg(ChangeMsg{Value: nil})
	}
	c, err := Canonicalize(raw, n.gran)
	if err != nil {
		return emitMsg(InvalidChangeMsg{})
	}
	n.input.SetValue(c)
	if n.committed != nil && *n.committed == c {
		return nil
	}
	n.committed = &c
	return emitMsg(ChangeMsg{Value: &c})
}

func (n *Native) Focus() tea.Cmd {
	return n.input.Focus()
}

// Blur releases focus and commits whatever the field holds, like a native
// change event firing on focus loss.
func (n *Native) Blur() tea.Cmd {
	n.input.Blur()
	return n.commit()
}

func (n Native) Focused() bool { return n.input.Focused() }

func (n *Native) SetGranularity(g Granularity) {
	n.gran = g
	n.sizeInput()
	if n.committed != nil {
		if c, err := Canonicalize(*n.committed, g); err == nil {
			n.committed = &c
			n.input.SetValue(c)
		}
	}
}

func (n *Native) SetValue(v string) error {
	if strings.TrimSpace(v) == "" {
		n.committed = nil
		n.input.SetValue("")
		return nil
	}
	c, err := Canonicalize(v, n.gran)
	if err != nil {
		return err
	}
	n.committed = &c
	n.input.SetValue(c)
	return nil
}

func (n Native) Value() *string {
	if n.committed == nil {
		return nil
	}
	v := *n.committed
	return &v
}

// Text returns the raw field text, which may be mid-entry or unparseable.
// Containers use it to tell an empty field from a bad one before accepting.
func (n Native) Text() string {
	return n.input.Value()
}

func (n Native) View() string {
	return n.input.View()
}
