package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run opens the picker and blocks until the user accepts or cancels.
func Run(opts Options) (Result, error) {
	applyColorProfilePreference()
	applyThemePreference()

	m, err := newAppModel(opts)
	if err != nil {
		return Result{}, err
	}
	out, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return Result{}, err
	}
	final, ok := out.(appModel)
	if !ok {
		return Result{}, nil
	}
	return final.result(), nil
}
