// Package timeinput implements a segmented time-of-day input for Bubble
// Tea programs: hour, minute, second and meridiem segments kept in sync as
// a single canonical value, with locale-derived or explicit layouts.
package timeinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type layoutPlan struct {
	tokens  []token
	divider string
}

// Model is the widget state. Create one with New, configure it with the
// Set methods, hand it focus and feed it messages like any other bubble.
// Committed values surface as ChangeMsg commands; partial or out-of-range
// entries as InvalidChangeMsg.
type Model struct {
	// Required marks the widget as must-have-a-value for containers; the
	// widget itself never blocks a null commit.
	Required bool
	// Disabled drops all input and renders the dimmed state.
	Disabled bool
	Styles   Styles

	formatter    Formatter
	locale       string
	format       string
	gran         Granularity
	min, max     *boundTime
	placeholders Placeholders
	labels       Labels

	tokens    []token
	divider   string
	segments  []segment
	planCache map[string]layoutPlan

	fields    fieldState
	acc       string
	lastKey   string
	focusIdx  int
	focused   bool
	fresh     bool
	committed *string
}

// New returns a widget for the en-US locale at minute granularity. The
// zero layout derives from the locale; SetFormat switches to an explicit
// one.
func New() Model {
	m := Model{
		formatter: NewFormatter(),
		locale:    "en-US",
		gran:      GranularityMinute,
		labels:    defaultLabels(),
		Styles:    DefaultStyles(),
		planCache: map[string]layoutPlan{},
	}
	_ = m.replan()
	return m
}

// replan rebuilds the token layout and segments for the current locale,
// format and granularity, then resets transient entry state. Plans are
// cached per locale, format and granularity.
func (m *Model) replan() error {
	key := m.locale + "\x00" + m.format + "\x00" + m.gran.String()
	plan, ok := m.planCache[key]
	if !ok {
		format := m.format
		if format == "" {
			format = deriveFormat(m.formatter, m.locale, m.gran)
		}
		toks, err := tokenize(format)
		if err != nil {
			return err
		}
		plan = layoutPlan{tokens: toks, divider: dividerFrom(format)}
		m.planCache[key] = plan
	}
	m.tokens = plan.tokens
	m.divider = plan.divider
	m.buildSegments()
	m.Reset()
	return nil
}

// SetLocale switches the locale the layout derives from. Unknown locales
// match the closest built-in table entry, falling back to en.
func (m *Model) SetLocale(locale string) error {
	m.locale = locale
	return m.replan()
}

// SetFormat sets an explicit format layout ("HH:mm", "h:mm:ss a"); the
// empty string returns to the locale-derived one. Formats with letter runs
// longer than two fail with an UnsupportedTokenError.
func (m *Model) SetFormat(format string) error {
	if format != "" {
		if _, err := tokenize(format); err != nil {
			return err
		}
	}
	m.format = format
	return m.replan()
}

func (m *Model) SetGranularity(g Granularity) error {
	m.gran = g
	if m.committed != nil {
		v, err := Canonicalize(*m.committed, g)
		if err == nil {
			m.committed = &v
		}
	}
	return m.replan()
}

// SetFormatter swaps the locale formatter, dropping cached plans built
// with the old one.
func (m *Model) SetFormatter(f Formatter) error {
	m.formatter = f
	m.planCache = map[string]layoutPlan{}
	return m.replan()
}

// SetBounds restricts the selectable range; empty strings clear a bound.
// Bounds narrow entry caps and validity, they never move a committed
// value.
func (m *Model) SetBounds(min, max string) error {
	var lo, hi *boundTime
	var err error
	if min != "" {
		if lo, err = parseBound(min); err != nil {
			return err
		}
	}
	if max != "" {
		if hi, err = parseBound(max); err != nil {
			return err
		}
	}
	m.min, m.max = lo, hi
	m.Reset()
	return nil
}

// SetValue loads a value from outside without emitting a change. The empty
// string clears the widget.
func (m *Model) SetValue(v string) error {
	if strings.TrimSpace(v) == "" {
		m.committed = nil
		m.acc = ""
		m.clearFields()
		return nil
	}
	c, err := Canonicalize(v, m.gran)
	if err != nil {
		return err
	}
	h, mi, s, _ := splitCanonical(c)
	m.committed = &c
	m.acc = ""
	m.syncFields(h, mi, s)
	m.refreshSegments()
	return nil
}

// Value returns the committed canonical value, nil when empty.
func (m Model) Value() *string {
	if m.committed == nil {
		return nil
	}
	v := *m.committed
	return &v
}

// Reset drops transient entry state (accumulator, burst, uncommitted
// digits) and redraws every segment from the committed value. Containers
// call it when a popup closes or reopens.
func (m *Model) Reset() {
	m.acc = ""
	m.lastKey = ""
	m.fresh = true
	if m.committed != nil {
		if h, mi, s, ok := splitCanonical(*m.committed); ok {
			m.syncFields(h, mi, s)
		}
	} else {
		m.fields = fieldState{}
	}
	m.clearTransientText()
	m.refreshSegments()
}

func (m *Model) clearTransientText() {
	for i := range m.segments {
		if m.segments[i].kind != fieldMeridiem {
			m.segments[i].input.SetValue("")
		}
	}
}

func (m *Model) SetPlaceholders(p Placeholders) {
	m.placeholders = p
	m.buildSegments()
	m.refreshSegments()
}

func (m *Model) SetLabels(l Labels) {
	m.labels = l
}

// SetStyles restyles every segment in place, keeping entry state.
func (m *Model) SetStyles(s Styles) {
	m.Styles = s
	for i := range m.segments {
		seg := &m.segments[i]
		if seg.kind == fieldMeridiem {
			continue
		}
		seg.input.TextStyle = s.Field
		seg.input.PlaceholderStyle = s.Placeholder
		seg.input.Cursor.Style = s.Cursor
	}
	m.applyFocusStyles()
}

// Focus hands keyboard focus to the widget, landing on the first segment
// when none was active.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	if m.focusIdx < 0 && len(m.segments) > 0 {
		m.focusIdx = 0
	}
	m.acc = ""
	m.fresh = true
	m.applyFocusStyles()
	return textinput.Blink
}

// Blur releases focus. Leaving an hour segment mid-entry resolves it the
// same way moving to a sibling would, so the returned command must be run.
func (m *Model) Blur() tea.Cmd {
	var cmd tea.Cmd
	if m.focused {
		if cur := m.currentSegment(); cur != nil && cur.kind.isHour() {
			cmd = m.hourBlur()
		}
	}
	m.focused = false
	m.applyFocusStyles()
	return cmd
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Granularity() Granularity { return m.gran }

func (m Model) Locale() string { return m.locale }

// Format returns the effective layout format, deriving it when no
// explicit one is set.
func (m Model) Format() string {
	if m.format != "" {
		return m.format
	}
	return deriveFormat(m.formatter, m.locale, m.gran)
}

// Divider returns the navigation divider key for the current layout.
func (m Model) Divider() string { return m.divider }

// FocusedLabel names the active segment for help lines.
func (m Model) FocusedLabel() string {
	if m.focusIdx < 0 || m.focusIdx >= len(m.segments) {
		return ""
	}
	return m.labelFor(m.segments[m.focusIdx].kind)
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update drives the widget. Each key runs the key-down phase and then the
// key-up phase, the same two-step a physical keystroke has.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.Disabled {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		key := msg.String()
		switch key {
		case "tab":
			return m, m.tabSegment(1)
		case "shift+tab":
			return m, m.tabSegment(-1)
		case "up", "k", "ctrl+p":
			return m, m.bump(1)
		case "down", "j", "ctrl+n":
			return m, m.bump(-1)
		case "h":
			key = "left"
		case "l":
			key = "right"
		}
		down := m.keyDown(key)
		up := m.keyUp(key)
		return m, seqCmds(down, up)
	case tea.MouseMsg:
		e := tea.MouseEvent(msg)
		if e.Action == tea.MouseActionPress && e.Button == tea.MouseButtonLeft {
			m.focused = true
			return m, m.Click(e.X)
		}
	default:
		if seg := m.currentSegment(); seg != nil && seg.kind != fieldMeridiem {
			var cmd tea.Cmd
			seg.input, cmd = seg.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func seqCmds(a, b tea.Cmd) tea.Cmd {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return tea.Sequence(a, b)
}
