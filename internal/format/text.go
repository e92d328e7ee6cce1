package format

import (
	"fmt"
	"io"
)

// WriteText writes a line-oriented rendering for shell use: strings print
// verbatim, string slices one per line, anything structured falls back to
// pretty JSON.
func WriteText(w io.Writer, v any) error {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		_, err := fmt.Fprintln(w, t)
		return err
	case []string:
		for _, s := range t {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
		return nil
	case fmt.Stringer:
		_, err := fmt.Fprintln(w, t.String())
		return err
	}
	return WriteJSON(w, v, true)
}
