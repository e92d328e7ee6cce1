package timeinput

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
)

type fieldKind int

const (
	fieldHour12 fieldKind = iota
	fieldHour24
	fieldMinute
	fieldSecond
	fieldMeridiem
)

func (k fieldKind) isHour() bool {
	return k == fieldHour12 || k == fieldHour24
}

// relevant reports whether a field participates in reconciliation at the
// given granularity. Finer fields in an explicit format still render but
// neither block nor feed commits.
func (k fieldKind) relevant(g Granularity) bool {
	switch k {
	case fieldMinute:
		return g >= GranularityMinute
	case fieldSecond:
		return g >= GranularitySecond
	}
	return true
}

func kindForToken(t tokenKind) (fieldKind, bool) {
	switch t {
	case tokenHour12:
		return fieldHour12, true
	case tokenHour24:
		return fieldHour24, true
	case tokenMinute:
		return fieldMinute, true
	case tokenSecond:
		return fieldSecond, true
	case tokenMeridiem:
		return fieldMeridiem, true
	}
	return 0, false
}

// fieldState is the single state shared by all rendered segments of a kind.
// hour holds the 24-hour value once an entry burst resolves; mid-burst it
// mirrors the raw accumulated digits.
type fieldState struct {
	hour     string
	minute   string
	second   string
	meridiem string
}

// segment is one rendered input slot. Duplicate tokens of the same kind get
// independent segments over the same fieldState slot. Meridiem segments
// render a label and leave the textinput unused.
type segment struct {
	kind  fieldKind
	width int
	tok   int
	input textinput.Model
}

// Placeholders overrides the hint text shown in empty segments.
type Placeholders struct {
	Hour   string
	Minute string
	Second string
}

// Labels names the segments for status and help lines.
type Labels struct {
	Hour     string
	Minute   string
	Second   string
	Meridiem string
}

func defaultLabels() Labels {
	return Labels{Hour: "hour", Minute: "minute", Second: "second", Meridiem: "AM/PM"}
}

func (m *Model) placeholderFor(kind fieldKind, width int) string {
	switch kind {
	case fieldHour12, fieldHour24:
		if m.placeholders.Hour != "" {
			return m.placeholders.Hour
		}
		if width >= 2 {
			return "hh"
		}
		return "h"
	case fieldMinute:
		if m.placeholders.Minute != "" {
			return m.placeholders.Minute
		}
		return "mm"
	case fieldSecond:
		if m.placeholders.Second != "" {
			return m.placeholders.Second
		}
		return "ss"
	}
	return ""
}

func (m *Model) labelFor(kind fieldKind) string {
	switch kind {
	case fieldHour12, fieldHour24:
		return m.labels.Hour
	case fieldMinute:
		return m.labels.Minute
	case fieldSecond:
		return m.labels.Second
	case fieldMeridiem:
		return m.labels.Meridiem
	}
	return ""
}

// buildSegments lays out input slots from the token plan, keeping segment
// order identical to token order.
func (m *Model) buildSegments() {
	m.segments = m.segments[:0]
	for i, tok := range m.tokens {
		kind, ok := kindForToken(tok.kind)
		if !ok {
			continue
		}
		seg := segment{kind: kind, width: tok.width, tok: i}
		if kind != fieldMeridiem {
			in := textinput.New()
			in.Prompt = ""
			in.CharLimit = 2
			in.Width = 2
			in.Placeholder = m.placeholderFor(kind, tok.width)
			in.TextStyle = m.Styles.Field
			in.PlaceholderStyle = m.Styles.Placeholder
			in.Cursor.Style = m.Styles.Cursor
			seg.input = in
		}
		m.segments = append(m.segments, seg)
	}
	if m.focusIdx >= len(m.segments) {
		m.focusIdx = len(m.segments) - 1
	}
	if m.focusIdx < 0 && len(m.segments) > 0 {
		m.focusIdx = 0
	}
	m.applyFocusStyles()
}

func (m *Model) currentSegment() *segment {
	if m.focusIdx < 0 || m.focusIdx >= len(m.segments) {
		return nil
	}
	return &m.segments[m.focusIdx]
}

// applyFocusStyles blurs every numeric input and focuses the active one
// when the widget itself has focus.
func (m *Model) applyFocusStyles() {
	for i := range m.segments {
		m.segments[i].input.Blur()
	}
	if !m.focused {
		return
	}
	if seg := m.currentSegment(); seg != nil && seg.kind != fieldMeridiem {
		seg.input.Focus()
	}
}

// boundTime is a parsed bound at full precision.
type boundTime struct {
	h, m, s int
}

func parseBound(v string) (*boundTime, error) {
	c, err := Canonicalize(v, GranularitySecond)
	if err != nil {
		return nil, err
	}
	h, mi, s, _ := splitCanonical(c)
	return &boundTime{h: h, m: mi, s: s}, nil
}

// segmentMax is the declared maximum used for entry caps and auto-advance.
// Minute and second maxima tighten only while the coarser fields sit on the
// bound itself.
func (m *Model) segmentMax(kind fieldKind) int {
	switch kind {
	case fieldHour12:
		return 12
	case fieldHour24:
		if m.max != nil {
			return m.max.h
		}
		return 23
	case fieldMinute:
		if m.max != nil && m.stateHour() == m.max.h {
			return m.max.m
		}
		return 59
	case fieldSecond:
		if m.max != nil && m.stateHour() == m.max.h && m.stateMinute() == m.max.m {
			return m.max.s
		}
		return 59
	}
	return 0
}

func (m *Model) segmentMin(kind fieldKind) int {
	switch kind {
	case fieldHour12:
		return 1
	case fieldHour24:
		if m.min != nil {
			return m.min.h
		}
		return 0
	case fieldMinute:
		if m.min != nil && m.stateHour() == m.min.h {
			return m.min.m
		}
		return 0
	case fieldSecond:
		if m.min != nil && m.stateHour() == m.min.h && m.stateMinute() == m.min.m {
			return m.min.s
		}
		return 0
	}
	return 0
}

func (m *Model) stateHour() int   { return atoiOr(m.fields.hour, -1) }
func (m *Model) stateMinute() int { return atoiOr(m.fields.minute, -1) }

// refreshSegments rewrites segment text from the shared state: the echo
// that follows a commit, an external SetValue, or a bump. Hour segments on
// a 12-hour token show the converted display numeral. Text stays unpadded;
// the leading zero of a two-letter token is view chrome, never editable
// content, so appending a second digit after an echo still works.
func (m *Model) refreshSegments() {
	for i := range m.segments {
		seg := &m.segments[i]
		if !seg.kind.relevant(m.gran) {
			continue
		}
		var v string
		switch seg.kind {
		case fieldHour12:
			if m.fields.hour != "" {
				h12, _ := to12(atoiOr(m.fields.hour, 0))
				v = strconv.Itoa(h12)
			}
		case fieldHour24:
			if m.fields.hour != "" {
				v = strconv.Itoa(atoiOr(m.fields.hour, 0))
			}
		case fieldMinute:
			if m.fields.minute != "" {
				v = strconv.Itoa(atoiOr(m.fields.minute, 0))
			}
		case fieldSecond:
			if m.fields.second != "" {
				v = strconv.Itoa(atoiOr(m.fields.second, 0))
			}
		case fieldMeridiem:
			continue
		}
		seg.input.SetValue(v)
	}
}

// refreshHourSegments rewrites just the hour slots, used on hour blur where
// the 12-hour display numeral replaces the raw typed digits.
func (m *Model) refreshHourSegments() {
	for i := range m.segments {
		seg := &m.segments[i]
		if !seg.kind.isHour() || m.fields.hour == "" {
			continue
		}
		h := atoiOr(m.fields.hour, 0)
		if seg.kind == fieldHour12 {
			h12, _ := to12(h)
			seg.input.SetValue(strconv.Itoa(h12))
		} else {
			seg.input.SetValue(strconv.Itoa(h))
		}
	}
}

func (m *Model) clearFields() {
	m.fields = fieldState{}
	for i := range m.segments {
		if m.segments[i].kind != fieldMeridiem {
			m.segments[i].input.SetValue("")
		}
	}
}
