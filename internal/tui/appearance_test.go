package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestThemePreferenceEnvForcesBackground(t *testing.T) {
	oldBG := lipgloss.HasDarkBackground()
	t.Cleanup(func() { lipgloss.SetHasDarkBackground(oldBG) })

	t.Setenv("TIMEFIELD_TUI_DARKBG", "")
	t.Setenv("COLORFGBG", "")

	t.Setenv("TIMEFIELD_TUI_THEME", "dark")
	applyThemePreference()
	if !lipgloss.HasDarkBackground() {
		t.Fatalf("expected dark background for TIMEFIELD_TUI_THEME=dark")
	}

	t.Setenv("TIMEFIELD_TUI_THEME", "light")
	applyThemePreference()
	if lipgloss.HasDarkBackground() {
		t.Fatalf("expected light background for TIMEFIELD_TUI_THEME=light")
	}
}

func TestColorFgBgHeuristicPicksBackground(t *testing.T) {
	oldBG := lipgloss.HasDarkBackground()
	t.Cleanup(func() { lipgloss.SetHasDarkBackground(oldBG) })

	t.Setenv("TIMEFIELD_TUI_THEME", "")
	t.Setenv("TIMEFIELD_TUI_DARKBG", "")

	t.Setenv("COLORFGBG", "15;0")
	applyThemePreference()
	if !lipgloss.HasDarkBackground() {
		t.Fatalf("expected dark background for COLORFGBG=15;0")
	}

	t.Setenv("COLORFGBG", "0;15")
	applyThemePreference()
	if lipgloss.HasDarkBackground() {
		t.Fatalf("expected light background for COLORFGBG=0;15")
	}
}

func TestNoColorForcesAsciiProfile(t *testing.T) {
	oldProfile := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(oldProfile) })

	t.Setenv("NO_COLOR", "1")
	applyColorProfilePreference()
	if got := lipgloss.ColorProfile(); got != termenv.Ascii {
		t.Fatalf("expected Ascii profile under NO_COLOR, got %v", got)
	}
}
