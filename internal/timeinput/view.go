package timeinput

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// Styles controls segment rendering. Zero values render plain; DefaultStyles
// dims the chrome and reverses the focused meridiem.
type Styles struct {
	Field           lipgloss.Style
	Placeholder     lipgloss.Style
	Cursor          lipgloss.Style
	Divider         lipgloss.Style
	Meridiem        lipgloss.Style
	MeridiemFocused lipgloss.Style
	Disabled        lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Placeholder:     lipgloss.NewStyle().Faint(true),
		Divider:         lipgloss.NewStyle().Faint(true),
		MeridiemFocused: lipgloss.NewStyle().Reverse(true),
		Disabled:        lipgloss.NewStyle().Faint(true),
	}
}

type piece struct {
	text string
	seg  int
}

func (m Model) View() string {
	var b strings.Builder
	for _, p := range m.renderPieces() {
		b.WriteString(p.text)
	}
	return b.String()
}

// renderPieces renders the layout token by token so click targeting can
// measure the same strings the screen shows.
func (m Model) renderPieces() []piece {
	if m.Disabled {
		return []piece{{text: m.Styles.Disabled.Render(m.plainText()), seg: -1}}
	}
	var pieces []piece
	segIdx := 0
	for _, tok := range m.tokens {
		if tok.kind == tokenLiteral {
			pieces = append(pieces, piece{text: m.Styles.Divider.Render(tok.lit), seg: -1})
			continue
		}
		if segIdx >= len(m.segments) {
			break
		}
		seg := m.segments[segIdx]
		if seg.kind == fieldMeridiem {
			pieces = append(pieces, piece{text: m.renderMeridiem(segIdx), seg: segIdx})
		} else {
			text := seg.input.View()
			if z := m.leadingZero(seg); z != "" {
				text = m.Styles.Field.Render(z) + text
			}
			pieces = append(pieces, piece{text: text, seg: segIdx})
		}
		segIdx++
	}
	return pieces
}

// leadingZero pads a one-digit value on a two-letter token. The zero is
// decoration in front of the input, not part of its editable text.
func (m Model) leadingZero(seg segment) string {
	if seg.width < 2 {
		return ""
	}
	if v := seg.input.Value(); len(v) == 1 {
		return "0"
	}
	return ""
}

func (m Model) renderMeridiem(idx int) string {
	am, pm := m.formatter.MeridiemLabels(m.locale)
	focused := m.focused && idx == m.focusIdx
	label := "--"
	st := m.Styles.Placeholder
	switch m.fields.meridiem {
	case meridiemAM:
		label, st = am, m.Styles.Meridiem
	case meridiemPM:
		label, st = pm, m.Styles.Meridiem
	}
	if focused {
		st = m.Styles.MeridiemFocused
	}
	return st.Render(label)
}

// plainText is the unstyled display used for the disabled state.
func (m Model) plainText() string {
	am, pm := m.formatter.MeridiemLabels(m.locale)
	var b strings.Builder
	segIdx := 0
	for _, tok := range m.tokens {
		if tok.kind == tokenLiteral {
			b.WriteString(tok.lit)
			continue
		}
		if segIdx >= len(m.segments) {
			break
		}
		seg := m.segments[segIdx]
		segIdx++
		if seg.kind == fieldMeridiem {
			switch m.fields.meridiem {
			case meridiemAM:
				b.WriteString(am)
			case meridiemPM:
				b.WriteString(pm)
			default:
				b.WriteString("--")
			}
			continue
		}
		if v := seg.input.Value(); v != "" {
			if seg.width >= 2 && len(v) == 1 {
				b.WriteString("0")
			}
			b.WriteString(v)
		} else {
			b.WriteString(seg.input.Placeholder)
		}
	}
	return b.String()
}

type span struct {
	start, end, seg int
}

// segmentSpans measures the rendered pieces so a click x offset maps to a
// segment.
func (m *Model) segmentSpans() []span {
	var spans []span
	x := 0
	for _, p := range m.renderPieces() {
		w := xansi.StringWidth(p.text)
		if p.seg >= 0 {
			spans = append(spans, span{start: x, end: x + w, seg: p.seg})
		}
		x += w
	}
	return spans
}
