package timeinput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, drain(c)...)
		}
		return out
	case nil:
		return nil
	default:
		return []tea.Msg{msg}
	}
}

// press runs both keystroke phases for each key, collecting every message
// the widget emits along the way.
func press(m *Model, keys ...string) []tea.Msg {
	var msgs []tea.Msg
	for _, k := range keys {
		msgs = append(msgs, drain(m.keyDown(k))...)
		msgs = append(msgs, drain(m.keyUp(k))...)
	}
	return msgs
}

func changesOf(msgs []tea.Msg) []ChangeMsg {
	var out []ChangeMsg
	for _, msg := range msgs {
		if c, ok := msg.(ChangeMsg); ok {
			out = append(out, c)
		}
	}
	return out
}

func invalidsOf(msgs []tea.Msg) int {
	n := 0
	for _, msg := range msgs {
		if _, ok := msg.(InvalidChangeMsg); ok {
			n++
		}
	}
	return n
}

func segKinds(m Model) []fieldKind {
	kinds := make([]fieldKind, len(m.segments))
	for i, s := range m.segments {
		kinds[i] = s.kind
	}
	return kinds
}

func newFocused(t *testing.T) Model {
	t.Helper()
	m := New()
	m.Focus()
	return m
}

func TestTwelveHourLocaleRendersHourMinuteMeridiem(t *testing.T) {
	m := New()
	want := []fieldKind{fieldHour12, fieldMinute, fieldMeridiem}
	got := segKinds(m)
	if len(got) != len(want) {
		t.Fatalf("segments = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("segment %d = %v, want %v", i, got[i], want[i])
		}
	}
	if m.Divider() != ":" {
		t.Fatalf("divider = %q, want :", m.Divider())
	}
}

func TestTwentyFourHourLocaleRendersNoMeridiem(t *testing.T) {
	m := New()
	if err := m.SetLocale("de-DE"); err != nil {
		t.Fatalf("SetLocale: %v", err)
	}
	for _, k := range segKinds(m) {
		if k == fieldMeridiem {
			t.Fatal("de-DE layout rendered a meridiem segment")
		}
		if k == fieldHour12 {
			t.Fatal("de-DE layout rendered a 12-hour segment")
		}
	}
}

func TestTypingOneFiveBecomesThreePM(t *testing.T) {
	m := newFocused(t)
	press(&m, "1")
	if m.fields.hour != "1" || m.acc != "1" {
		t.Fatalf("after 1: hour=%q acc=%q", m.fields.hour, m.acc)
	}
	if m.focusIdx != 0 {
		t.Fatal("focus advanced after a single leading digit")
	}
	press(&m, "5")
	if m.focusIdx != 1 {
		t.Fatalf("focus = %d, want minute after a full hour entry", m.focusIdx)
	}
	if m.fields.hour != "15" {
		t.Fatalf("hour state = %q, want 15", m.fields.hour)
	}
	if m.fields.meridiem != meridiemPM {
		t.Fatalf("meridiem = %q, want pm derived from 15", m.fields.meridiem)
	}
	if got := m.segments[0].input.Value(); got != "3" {
		t.Fatalf("hour display = %q, want 3", got)
	}
}

func TestTypingLoneHighDigitAdvancesImmediately(t *testing.T) {
	m := newFocused(t)
	press(&m, "3")
	if m.focusIdx != 1 {
		t.Fatalf("focus = %d, want 1 after lone digit 3", m.focusIdx)
	}
	if m.fields.hour != "3" {
		t.Fatalf("hour state = %q, want 3", m.fields.hour)
	}
	if m.fields.meridiem != meridiemAM {
		t.Fatalf("meridiem = %q, want am derived on blur", m.fields.meridiem)
	}
}

func TestDigitPushingHourPastTwentyThreeIsRejected(t *testing.T) {
	m := newFocused(t)
	press(&m, "2", "4")
	if m.fields.hour != "2" || m.acc != "2" {
		t.Fatalf("after 2,4: hour=%q acc=%q, want 2 kept and 4 dropped", m.fields.hour, m.acc)
	}
	if m.focusIdx != 0 {
		t.Fatal("rejected digit advanced focus")
	}
	press(&m, "3")
	if m.fields.hour != "23" {
		t.Fatalf("hour = %q, want 23 (24-hour style entry)", m.fields.hour)
	}
	if m.focusIdx != 1 {
		t.Fatal("two-digit hour did not advance")
	}
	if got := m.segments[0].input.Value(); got != "11" {
		t.Fatalf("hour display = %q, want 11 (23 on the 12-hour clock)", got)
	}
	if m.fields.meridiem != meridiemPM {
		t.Fatalf("meridiem = %q, want pm", m.fields.meridiem)
	}
}

func TestZeroHourBlursToTwelveAM(t *testing.T) {
	m := newFocused(t)
	press(&m, "0")
	if m.focusIdx != 0 {
		t.Fatal("focus left hour before the accumulator settled")
	}
	drain(m.Blur())
	if got := m.segments[0].input.Value(); got != "12" {
		t.Fatalf("hour display = %q, want 12", got)
	}
	if m.fields.meridiem != meridiemAM {
		t.Fatalf("meridiem = %q, want am", m.fields.meridiem)
	}
	if m.fields.hour != "0" {
		t.Fatalf("hour state = %q, want 0", m.fields.hour)
	}
}

func TestKeyUpGuardIgnoresMismatchedKey(t *testing.T) {
	m := newFocused(t)
	drain(m.keyDown("1"))
	if cmd := m.keyUp("2"); cmd != nil {
		t.Fatal("mismatched key-up produced a command")
	}
	if m.focusIdx != 0 {
		t.Fatal("mismatched key-up advanced focus")
	}
	if cmd := m.keyUp("1"); cmd != nil {
		drain(cmd)
	}
	if m.focusIdx != 0 {
		t.Fatal("leading digit 1 should keep focus on the hour")
	}
}

func TestKeyUpWithoutKeyDownIsIgnored(t *testing.T) {
	m := newFocused(t)
	if cmd := m.keyUp("5"); cmd != nil {
		t.Fatal("stray key-up produced a command")
	}
}

func TestMinuteAdvancesWhenNoSecondDigitFits(t *testing.T) {
	m := newFocused(t)
	press(&m, "9")
	if m.focusIdx != 1 {
		t.Fatalf("focus = %d, want minute", m.focusIdx)
	}
	press(&m, "7")
	if m.focusIdx != 2 {
		t.Fatalf("focus = %d, want meridiem after minute 7 (70 > 59)", m.focusIdx)
	}
	if m.fields.minute != "7" {
		t.Fatalf("minute = %q, want 7", m.fields.minute)
	}
}

func TestMinuteKeepsFocusWhileSecondDigitFits(t *testing.T) {
	m := newFocused(t)
	press(&m, "9", "3")
	if m.focusIdx != 1 {
		t.Fatalf("focus = %d, want minute (30-39 still possible)", m.focusIdx)
	}
	press(&m, "0")
	if m.focusIdx != 2 {
		t.Fatalf("focus = %d, want meridiem after two minute digits", m.focusIdx)
	}
}

func TestDividerKeyAdvancesFocus(t *testing.T) {
	m := newFocused(t)
	press(&m, "1", ":")
	if m.focusIdx != 1 {
		t.Fatalf("focus = %d, want minute after divider", m.focusIdx)
	}
}

func TestArrowsClampAtEnds(t *testing.T) {
	m := newFocused(t)
	press(&m, "left")
	if m.focusIdx != 0 {
		t.Fatal("left at first segment moved focus")
	}
	press(&m, "right", "right", "right", "right")
	if m.focusIdx != 2 {
		t.Fatalf("focus = %d, want clamp at last segment", m.focusIdx)
	}
}

func TestMeridiemKeysSetAndClear(t *testing.T) {
	m := newFocused(t)
	press(&m, "right", "right")
	if m.segments[m.focusIdx].kind != fieldMeridiem {
		t.Fatalf("focus kind = %v, want meridiem", m.segments[m.focusIdx].kind)
	}
	press(&m, "p")
	if m.fields.meridiem != meridiemPM {
		t.Fatalf("meridiem = %q, want pm", m.fields.meridiem)
	}
	press(&m, " ")
	if m.fields.meridiem != meridiemAM {
		t.Fatalf("meridiem = %q, want am after toggle", m.fields.meridiem)
	}
	press(&m, "backspace")
	if m.fields.meridiem != "" {
		t.Fatalf("meridiem = %q, want cleared", m.fields.meridiem)
	}
}

func TestHourBackspaceDropsLastAccumulatorDigit(t *testing.T) {
	m := newFocused(t)
	press(&m, "1", "2")
	if m.focusIdx != 1 {
		t.Fatal("hour 12 should advance")
	}
	press(&m, "left")
	press(&m, "backspace")
	if m.segments[0].input.Value() != "" {
		t.Fatalf("hour display = %q, want cleared (fresh segment backspace)", m.segments[0].input.Value())
	}
	press(&m, "1", "backspace")
	if m.acc != "" || m.fields.hour != "" {
		t.Fatalf("after 1,backspace: acc=%q hour=%q, want both empty", m.acc, m.fields.hour)
	}
}

func TestExplicitFormatRendersDuplicateHourInputs(t *testing.T) {
	m := New()
	if err := m.SetFormat("HH:mm:HH"); err != nil {
		t.Fatalf("SetFormat: %v", err)
	}
	kinds := segKinds(m)
	if len(kinds) != 3 || kinds[0] != fieldHour24 || kinds[2] != fieldHour24 {
		t.Fatalf("segments = %v, want hour24, minute, hour24", kinds)
	}
	if err := m.SetValue("09:30"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if a, b := m.segments[0].input.Value(), m.segments[2].input.Value(); a != "9" || b != "9" {
		t.Fatalf("duplicate hour displays = %q, %q, want 9 twice", a, b)
	}
	m.Focus()
	press(&m, "1", "0")
	if a, b := m.segments[0].input.Value(), m.segments[2].input.Value(); a != "10" || b != "10" {
		t.Fatalf("after edit: displays = %q, %q, want 10 twice", a, b)
	}
}

func TestUnsupportedExplicitFormatFails(t *testing.T) {
	m := New()
	err := m.SetFormat("hhh:mm")
	if err == nil {
		t.Fatal("SetFormat accepted hhh")
	}
	if _, ok := err.(*UnsupportedTokenError); !ok {
		t.Fatalf("error = %T, want *UnsupportedTokenError", err)
	}
}

func TestBumpWrapsAndCarries(t *testing.T) {
	m := newFocused(t)
	if err := m.SetValue("23:59"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	msgs := drain(m.bump(1))
	cs := changesOf(msgs)
	if len(cs) != 1 || cs[0].Value == nil || *cs[0].Value != "00:59" {
		t.Fatalf("hour bump from 23:59 = %+v, want commit 00:59", msgs)
	}
	m.focusSegment(1)
	msgs = drain(m.bump(1))
	cs = changesOf(msgs)
	if len(cs) != 1 || *cs[0].Value != "01:00" {
		t.Fatalf("minute bump from 00:59 = %+v, want commit 01:00", msgs)
	}
	msgs = drain(m.bump(-1))
	cs = changesOf(msgs)
	if len(cs) != 1 || *cs[0].Value != "00:59" {
		t.Fatalf("minute bump down from 01:00 = %+v, want commit 00:59", msgs)
	}
}

func TestBumpOnEmptyFieldsStartsFromZero(t *testing.T) {
	m := newFocused(t)
	msgs := drain(m.bump(1))
	cs := changesOf(msgs)
	if len(cs) != 1 || cs[0].Value == nil || *cs[0].Value != "01:00" {
		t.Fatalf("bump on empty widget = %+v, want commit 01:00", msgs)
	}
	if got := m.segments[0].input.Value(); got != "1" {
		t.Fatalf("hour display = %q, want 1", got)
	}
}

func TestClickFocusesSegmentAndStartsFreshBurst(t *testing.T) {
	m := newFocused(t)
	press(&m, "9", "3", "0")
	spans := m.segmentSpans()
	if len(spans) != 3 {
		t.Fatalf("spans = %d, want 3", len(spans))
	}
	drain(m.Click(spans[1].start))
	if m.focusIdx != 1 {
		t.Fatalf("focus = %d, want minute after click", m.focusIdx)
	}
	if !m.fresh {
		t.Fatal("click did not start a fresh burst")
	}
	press(&m, "4", "5")
	if m.fields.minute != "45" {
		t.Fatalf("minute = %q, want 45 replacing 30", m.fields.minute)
	}
}

func TestTabWrapsAroundSegments(t *testing.T) {
	m := newFocused(t)
	var cmd tea.Cmd
	m, cmd = m.Update(keyMsg("tab"))
	drain(cmd)
	m, cmd = m.Update(keyMsg("tab"))
	drain(cmd)
	m, cmd = m.Update(keyMsg("tab"))
	drain(cmd)
	if m.focusIdx != 0 {
		t.Fatalf("focus = %d, want wrap back to hour", m.focusIdx)
	}
	m, cmd = m.Update(keyMsg("shift+tab"))
	drain(cmd)
	if m.focusIdx != 2 {
		t.Fatalf("focus = %d, want wrap to meridiem", m.focusIdx)
	}
}

func TestDisabledWidgetIgnoresKeys(t *testing.T) {
	m := newFocused(t)
	m.Disabled = true
	var cmd tea.Cmd
	m, cmd = m.Update(keyMsg("5"))
	if cmd != nil {
		t.Fatal("disabled widget produced a command")
	}
	if m.fields.hour != "" {
		t.Fatalf("disabled widget mutated state: hour=%q", m.fields.hour)
	}
}
