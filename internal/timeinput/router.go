package timeinput

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// The router mirrors the two-phase life of a keystroke: keyDown mutates the
// focused segment, keyUp decides whether the finished keystroke should
// advance focus. Update runs both for each incoming key; the last-pressed
// guard keeps the phases paired under fast multi-key sequences.

func isDigit(key string) bool {
	return len(key) == 1 && key[0] >= '0' && key[0] <= '9'
}

func isLeadDigit(key string) bool {
	return key == "0" || key == "1" || key == "2"
}

func (m *Model) keyDown(key string) tea.Cmd {
	if len(m.segments) == 0 {
		return nil
	}
	m.lastKey = key
	switch key {
	case "left":
		return m.focusSegment(m.focusIdx - 1)
	case "right":
		return m.focusSegment(m.focusIdx + 1)
	}
	seg := m.currentSegment()
	if seg == nil {
		return nil
	}
	if seg.kind == fieldMeridiem {
		if cmd, handled := m.meridiemKey(key); handled {
			return cmd
		}
	}
	if m.divider != "" && key == m.divider {
		return m.focusSegment(m.focusIdx + 1)
	}
	switch seg.kind {
	case fieldHour12, fieldHour24:
		return m.hourKey(seg, key)
	case fieldMinute, fieldSecond:
		return m.numericKey(seg, key)
	}
	return nil
}

func (m *Model) keyUp(key string) tea.Cmd {
	if key != m.lastKey || !isDigit(key) {
		return nil
	}
	seg := m.currentSegment()
	if seg == nil || seg.kind == fieldMeridiem {
		return nil
	}
	max := m.segmentMax(seg.kind)
	maxLen := len(strconv.Itoa(max))
	if seg.kind.isHour() {
		if m.acc == "" || len(m.acc) >= 2 || atoiOr(m.acc, 0) > max || len(m.acc) >= maxLen {
			return m.focusSegment(m.focusIdx + 1)
		}
		return nil
	}
	v := seg.input.Value()
	if v == "" {
		return nil
	}
	if atoiOr(v, 0)*10 > max || len(v) >= maxLen {
		return m.focusSegment(m.focusIdx + 1)
	}
	return nil
}

// hourKey feeds the two-digit accumulator. A fresh segment (just focused or
// clicked) replaces its content, matching select-all on focus. Digits that
// would push the hour to 24 or beyond never enter the accumulator.
func (m *Model) hourKey(seg *segment, key string) tea.Cmd {
	switch {
	case key == "backspace":
		if m.fresh {
			m.fresh = false
			m.acc = ""
		} else if m.acc != "" {
			m.acc = m.acc[:len(m.acc)-1]
		}
		m.fields.hour = m.acc
		seg.input.SetValue(m.acc)
		return m.reconcile(reconcileArgs{})
	case isDigit(key):
		if m.fresh {
			m.fresh = false
			m.acc = ""
		}
		if m.acc == "" {
			if isLeadDigit(key) {
				m.acc = key
			}
			m.fields.hour = key
			seg.input.SetValue(key)
			return m.reconcile(reconcileArgs{})
		}
		if len(m.acc) >= 2 {
			return nil
		}
		if m.acc == "2" && key >= "4" {
			return nil
		}
		m.acc += key
		m.fields.hour = m.acc
		seg.input.SetValue(m.acc)
		return m.reconcile(reconcileArgs{})
	}
	return nil
}

// numericKey handles minute and second segments: plain append with entry
// capped at the declared maximum.
func (m *Model) numericKey(seg *segment, key string) tea.Cmd {
	switch {
	case key == "backspace":
		v := seg.input.Value()
		if m.fresh {
			m.fresh = false
			v = ""
		} else if v != "" {
			v = v[:len(v)-1]
		}
		m.setNumeric(seg, v)
		return m.reconcile(reconcileArgs{})
	case isDigit(key):
		cur := seg.input.Value()
		if m.fresh {
			m.fresh = false
			cur = ""
		}
		if len(cur) >= 2 {
			return nil
		}
		next := cur + key
		if atoiOr(next, 0) > m.segmentMax(seg.kind) {
			return nil
		}
		m.setNumeric(seg, next)
		return m.reconcile(reconcileArgs{})
	}
	return nil
}

func (m *Model) setNumeric(seg *segment, v string) {
	seg.input.SetValue(v)
	switch seg.kind {
	case fieldMinute:
		m.fields.minute = v
	case fieldSecond:
		m.fields.second = v
	}
}

func (m *Model) meridiemKey(key string) (tea.Cmd, bool) {
	switch key {
	case "a":
		return m.setMeridiem(meridiemAM), true
	case "p":
		return m.setMeridiem(meridiemPM), true
	case " ":
		if m.fields.meridiem == meridiemAM {
			return m.setMeridiem(meridiemPM), true
		}
		return m.setMeridiem(meridiemAM), true
	case "backspace", "delete":
		if m.fields.meridiem == "" {
			return nil, true
		}
		m.fields.meridiem = ""
		return m.reconcile(reconcileArgs{}), true
	}
	return nil, false
}

func (m *Model) setMeridiem(mer string) tea.Cmd {
	if m.fields.meridiem == mer {
		return nil
	}
	m.fields.meridiem = mer
	return m.reconcile(reconcileArgs{})
}

// focusSegment moves focus without wrapping. Leaving an hour segment runs
// the blur normalization first; entering any segment starts a fresh burst.
func (m *Model) focusSegment(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.segments) || idx == m.focusIdx {
		return nil
	}
	var cmd tea.Cmd
	if cur := m.currentSegment(); cur != nil && cur.kind.isHour() {
		cmd = m.hourBlur()
	}
	m.focusIdx = idx
	m.acc = ""
	m.fresh = true
	m.applyFocusStyles()
	return cmd
}

// tabSegment wraps around the segment ring, unlike arrow navigation.
func (m *Model) tabSegment(delta int) tea.Cmd {
	n := len(m.segments)
	if n == 0 {
		return nil
	}
	return m.focusSegment(((m.focusIdx+delta)%n + n) % n)
}

// hourBlur resolves a finished hour entry. Zero becomes the 12-hour
// display "12" with a default am; any value without a meridiem derives one
// from the 24-hour clock; the shared hour state normalizes to 24-hour form.
// When the entry or the derivation changed anything, reconciliation runs
// immediately with the resolved values so stale field state cannot leak
// into the commit.
func (m *Model) hourBlur() tea.Cmd {
	accWas := m.acc
	m.acc = ""
	raw := m.fields.hour
	if raw == "" {
		return nil
	}
	v := atoiOr(raw, -1)
	if v < 0 || v > 23 {
		return nil
	}
	mer := m.fields.meridiem
	merChanged := false
	if mer == "" {
		_, mer = to12(v)
		m.fields.meridiem = mer
		merChanged = true
	}
	h12, _ := to12(v)
	h24, _ := to24(h12, mer)
	m.fields.hour = strconv.Itoa(h24)
	if m.has12hSegment() {
		m.refreshHourSegments()
	}
	if accWas == "" && !merChanged {
		return nil
	}
	merCopy := mer
	return m.reconcile(reconcileArgs{hour24: &h24, meridiem: &merCopy})
}

func (m *Model) has12hSegment() bool {
	for _, seg := range m.segments {
		if seg.kind == fieldHour12 {
			return true
		}
	}
	return false
}

// bump steps the focused segment, carrying overflow into coarser fields
// and wrapping the hour around the day. Empty coarser fields count as
// zero, so a bump always lands on a complete time.
func (m *Model) bump(delta int) tea.Cmd {
	seg := m.currentSegment()
	if seg == nil {
		return nil
	}
	if seg.kind == fieldMeridiem {
		if m.fields.meridiem == meridiemAM {
			return m.setMeridiem(meridiemPM)
		}
		return m.setMeridiem(meridiemAM)
	}
	h := atoiOr(m.fields.hour, 0)
	mi := atoiOr(m.fields.minute, 0)
	s := atoiOr(m.fields.second, 0)
	switch seg.kind {
	case fieldHour12, fieldHour24:
		h += delta
	case fieldMinute:
		mi += delta
	case fieldSecond:
		s += delta
	}
	for s >= 60 {
		s -= 60
		mi++
	}
	for s < 0 {
		s += 60
		mi--
	}
	for mi >= 60 {
		mi -= 60
		h++
	}
	for mi < 0 {
		mi += 60
		h--
	}
	for h >= 24 {
		h -= 24
	}
	for h < 0 {
		h += 24
	}
	m.acc = ""
	m.fresh = true
	m.fields.hour = strconv.Itoa(h)
	if GranularityMinute.relevantTo(m.gran) {
		m.fields.minute = strconv.Itoa(mi)
	}
	if GranularitySecond.relevantTo(m.gran) {
		m.fields.second = strconv.Itoa(s)
	}
	_, m.fields.meridiem = to12(h)
	m.refreshSegments()
	return m.reconcile(reconcileArgs{})
}

// relevantTo reports whether this granularity level is within the
// configured one.
func (g Granularity) relevantTo(configured Granularity) bool {
	return g <= configured
}

// Click focuses the segment under a widget-relative x offset and starts a
// fresh burst there, the select-all-on-click behavior. Callers translate
// screen coordinates to widget coordinates first.
func (m *Model) Click(x int) tea.Cmd {
	spans := m.segmentSpans()
	for _, sp := range spans {
		if x >= sp.start && x < sp.end {
			if sp.seg == m.focusIdx {
				m.fresh = true
				m.acc = ""
				return nil
			}
			return m.focusSegment(sp.seg)
		}
	}
	return nil
}
