package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown renders a docs topic for the terminal. On any renderer
// error the raw markdown comes back unchanged.
func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	// WithAutoStyle can block waiting on terminal queries in some setups, so
	// the style is picked from the environment instead.
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// markdownStyle resolves light vs dark the same way the TUI theme does:
// explicit override, then TIMEFIELD_TUI_THEME, then the COLORFGBG heuristic.
func markdownStyle() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TIMEFIELD_MD_STYLE"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	case "notty":
		return "notty"
	}

	switch strings.ToLower(strings.TrimSpace(os.Getenv("TIMEFIELD_TUI_THEME"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	if v := strings.TrimSpace(os.Getenv("TIMEFIELD_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			if b {
				return "dark"
			}
			return "light"
		}
	}

	// COLORFGBG is often "fg;bg" (e.g. "15;0" => dark bg). Common xterm
	// palette: 0-6 dark colors, 7-15 light colors.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			if bg >= 7 {
				return "light"
			}
			return "dark"
		}
	}
	return "dark"
}
