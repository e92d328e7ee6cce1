package tui

import (
	"os"
	"strings"

	"timefield/internal/timeinput"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the picker app. Zero values mean: locale-derived
// layout for en-US, minute granularity, no initial value, no bounds.
type Options struct {
	Label       string
	Locale      string
	Format      string
	Granularity timeinput.Granularity
	Value       string
	Min         string
	Max         string
	Required    bool
	// Native starts in the single-field fallback editor instead of the
	// segmented one.
	Native bool
}

// Result is what the picker session produced. Accepted is false when the
// user quit or canceled; Value then holds the unchanged initial value.
type Result struct {
	Value    *string
	Accepted bool
}

type appModel struct {
	opts Options

	width  int
	height int

	picker timeinput.Model
	native timeinput.Native
	// editNative selects which editor the modal shows.
	editNative bool

	modal modalKind

	// committed is the value the form shows; accept copies the editor's
	// value here.
	committed *string
	// pending mirrors the open editor's live commits for the status line.
	pending    *string
	incomplete bool

	accepted bool

	minibufferText string

	debugEnabled bool
	debugLogPath string
}

func newAppModel(opts Options) (appModel, error) {
	m := appModel{opts: opts, editNative: opts.Native}

	if strings.TrimSpace(os.Getenv("TIMEFIELD_TUI_DEBUG")) != "" {
		m.debugEnabled = true
	}
	m.debugLogPath = strings.TrimSpace(os.Getenv("TIMEFIELD_TUI_DEBUG_LOG"))

	m.picker = timeinput.New()
	m.picker.Required = opts.Required
	m.picker.SetStyles(widgetStyles())
	if err := m.picker.SetGranularity(opts.Granularity); err != nil {
		return appModel{}, err
	}
	if loc := strings.TrimSpace(opts.Locale); loc != "" {
		if err := m.picker.SetLocale(loc); err != nil {
			return appModel{}, err
		}
	}
	if f := strings.TrimSpace(opts.Format); f != "" {
		if err := m.picker.SetFormat(f); err != nil {
			return appModel{}, err
		}
	}
	if err := m.picker.SetBounds(strings.TrimSpace(opts.Min), strings.TrimSpace(opts.Max)); err != nil {
		return appModel{}, err
	}

	m.native = timeinput.NewNative(opts.Granularity)

	if v := strings.TrimSpace(opts.Value); v != "" {
		if err := m.picker.SetValue(v); err != nil {
			return appModel{}, err
		}
		m.committed = m.picker.Value()
		if err := m.native.SetValue(v); err != nil {
			return appModel{}, err
		}
	}
	return m, nil
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) result() Result {
	return Result{Value: m.committed, Accepted: m.accepted}
}

func (m appModel) fieldLabel() string {
	if l := strings.TrimSpace(m.opts.Label); l != "" {
		return l
	}
	return "Time"
}

// openPicker resets the editor to the committed value and opens the modal.
// Reopening always starts a fresh entry session.
func (m *appModel) openPicker() tea.Cmd {
	m.modal = modalPicker
	m.incomplete = false
	m.pending = m.committed

	v := ""
	if m.committed != nil {
		v = *m.committed
	}
	if m.editNative {
		_ = m.native.SetValue(v)
		return m.native.Focus()
	}
	_ = m.picker.SetValue(v)
	m.picker.Reset()
	return m.picker.Focus()
}

func (m *appModel) closePicker() {
	m.modal = modalNone
	m.incomplete = false
	m.pending = m.committed
	// Discard the blur commands: the form shows the committed value and the
	// next open resets the editors anyway.
	if m.editNative {
		_ = m.native.Blur()
		return
	}
	_ = m.picker.Blur()
}
