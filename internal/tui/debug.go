package tui

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// debugLogf appends a timestamped line to the TIMEFIELD_TUI_DEBUG_LOG file.
// Stderr writes would corrupt the alt-screen, so a file is the only sink.
func (m *appModel) debugLogf(format string, args ...any) {
	if !m.debugEnabled {
		return
	}
	path := strings.TrimSpace(m.debugLogPath)
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s "+format+"\n", append([]any{time.Now().Format("15:04:05.000")}, args...)...)
}
