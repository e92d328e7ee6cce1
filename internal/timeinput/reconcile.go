package timeinput

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// ChangeMsg reports a committed value: a canonical HH:MM or HH:MM:SS
// string, or nil when every field was cleared. ShouldClose is carried for
// containers that close a popup on selection; this widget always leaves it
// false.
type ChangeMsg struct {
	Value       *string
	ShouldClose bool
}

// InvalidChangeMsg reports that the fields hold a partial or out-of-range
// entry that cannot compose a value.
type InvalidChangeMsg struct{}

func emitMsg(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// reconcileArgs carries freshly resolved values past stale field state.
// Hour blur passes both; ordinary edits pass neither.
type reconcileArgs struct {
	hour24   *int
	meridiem *string
}

// reconcile folds the shared field state into one of three outcomes: a
// committed canonical value, an invalid-partial signal, or a null commit
// when everything is empty. Commits deduplicate against the last committed
// value so the echo cannot loop.
func (m *Model) reconcile(args reconcileArgs) tea.Cmd {
	mer, merResolved := m.resolveMeridiem(args)
	hour, hourPresent := m.resolveHour(args, mer, merResolved)

	anyPresent := args.hour24 != nil || args.meridiem != nil
	allPresent := true
	allValid := true
	minute, second := 0, 0

	seen := map[fieldKind]bool{}
	for _, seg := range m.segments {
		k := seg.kind
		if seen[k] {
			continue
		}
		seen[k] = true
		if !k.relevant(m.gran) {
			continue
		}
		switch {
		case k.isHour():
			if args.hour24 != nil {
				continue
			}
			if m.fields.hour == "" {
				allPresent = false
				continue
			}
			anyPresent = true
			raw := atoiOr(m.fields.hour, -1)
			if raw < 0 || raw > 23 || !m.hourInBounds(hour) {
				allValid = false
			}
			if k == fieldHour12 && !merResolved {
				allPresent = false
			}
		case k == fieldMeridiem:
			if args.meridiem != nil {
				continue
			}
			if merResolved {
				anyPresent = true
			} else {
				allPresent = false
			}
		case k == fieldMinute:
			if m.fields.minute == "" {
				allPresent = false
				continue
			}
			anyPresent = true
			minute = atoiOr(m.fields.minute, -1)
			if minute < m.boundMinuteMin(hour, hourPresent) || minute > m.boundMinuteMax(hour, hourPresent) {
				allValid = false
			}
		case k == fieldSecond:
			if m.fields.second == "" {
				allPresent = false
				continue
			}
			anyPresent = true
			second = atoiOr(m.fields.second, -1)
			if second < m.boundSecondMin(hour, minute, hourPresent) || second > m.boundSecondMax(hour, minute, hourPresent) {
				allValid = false
			}
		}
	}

	if !anyPresent {
		if m.committed == nil {
			return nil
		}
		m.committed = nil
		return emitMsg(ChangeMsg{Value: nil})
	}
	if !allPresent || !allValid {
		return emitMsg(InvalidChangeMsg{})
	}

	value := compose(hour, minute, second, m.gran)
	if m.committed != nil && *m.committed == value {
		return nil
	}
	v := value
	m.committed = &v
	m.syncFields(hour, minute, second)
	m.refreshSegments()
	return emitMsg(ChangeMsg{Value: &v})
}

// resolveMeridiem applies the precedence chain: caller override, then the
// selector, then pm inferred from an accumulator past 12 (a 24-hour style
// entry), otherwise unresolved.
func (m *Model) resolveMeridiem(args reconcileArgs) (string, bool) {
	switch {
	case args.meridiem != nil:
		return *args.meridiem, true
	case m.fields.meridiem != "":
		return m.fields.meridiem, true
	case atoiOr(m.acc, 0) > 12:
		return meridiemPM, true
	}
	return "", false
}

// resolveHour applies the hour chain: caller override, then a 24-hour
// field, then the 12-hour field converted through the resolved meridiem,
// otherwise zero for layouts without an hour slot.
func (m *Model) resolveHour(args reconcileArgs, mer string, merResolved bool) (int, bool) {
	if args.hour24 != nil {
		return *args.hour24, true
	}
	if m.fields.hour == "" {
		return 0, false
	}
	raw := atoiOr(m.fields.hour, 0)
	if hasKind(m.tokens, tokenHour24) {
		return raw, true
	}
	if hasKind(m.tokens, tokenHour12) {
		if !merResolved {
			return raw, true
		}
		h12, _ := to12(raw)
		h24, _ := to24(h12, mer)
		return h24, true
	}
	return 0, false
}

func (m *Model) hourInBounds(h int) bool {
	if m.min != nil && h < m.min.h {
		return false
	}
	if m.max != nil && h > m.max.h {
		return false
	}
	return true
}

func (m *Model) boundMinuteMin(hour int, hourKnown bool) int {
	if m.min != nil && hourKnown && hour == m.min.h {
		return m.min.m
	}
	return 0
}

func (m *Model) boundMinuteMax(hour int, hourKnown bool) int {
	if m.max != nil && hourKnown && hour == m.max.h {
		return m.max.m
	}
	return 59
}

func (m *Model) boundSecondMin(hour, minute int, hourKnown bool) int {
	if m.min != nil && hourKnown && hour == m.min.h && minute == m.min.m {
		return m.min.s
	}
	return 0
}

func (m *Model) boundSecondMax(hour, minute int, hourKnown bool) int {
	if m.max != nil && hourKnown && hour == m.max.h && minute == m.max.m {
		return m.max.s
	}
	return 59
}

// syncFields normalizes the shared state to a committed value so later
// edits start from canonical parts.
func (m *Model) syncFields(h, mi, s int) {
	m.fields.hour = strconv.Itoa(h)
	if GranularityMinute.relevantTo(m.gran) {
		m.fields.minute = strconv.Itoa(mi)
	}
	if GranularitySecond.relevantTo(m.gran) {
		m.fields.second = strconv.Itoa(s)
	}
	_, m.fields.meridiem = to12(h)
}
