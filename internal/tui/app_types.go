package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalPicker
)

func (m *appModel) showMinibuffer(text string) {
	m.minibufferText = strings.TrimSpace(text)
}

func (m appModel) debugKeyMsg(k tea.KeyMsg) {
	if !m.debugEnabled {
		return
	}
	// Only write if the user provided a log path.
	if strings.TrimSpace(m.debugLogPath) == "" {
		return
	}
	(&m).debugLogf("key modal=%d native=%v str=%q type=%v runes=%q",
		int(m.modal), m.editNative, k.String(), k.Type, string(k.Runes))
}
