package main

import (
	"os"
	"strings"

	"timefield/internal/cli"
)

func isTimeArg(s string) bool {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return false
	}
	for i, p := range parts {
		if p == "" || len(p) > 2 {
			return false
		}
		if i > 0 && len(p) != 2 {
			return false
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

func rewriteBareTimeArg(argv []string) []string {
	// Convenience: `timefield 09:30` works like `timefield --value 09:30`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite argv
	// before parsing.
	//
	// IMPORTANT: Users often pass flags first (e.g. `timefield --locale de 09:30`),
	// so we must find the first positional token, not just argv[1].
	if len(argv) < 2 {
		return argv
	}

	// Minimal flag awareness. If we see flags we don't recognize, we skip them
	// (and do NOT try to skip their value) to avoid accidentally consuming the time.
	valueFlags := map[string]bool{
		"--output":      true,
		"--locale":      true,
		"--format":      true,
		"--granularity": true,
		"--value":       true,
		"--min":         true,
		"--max":         true,
		"--label":       true,
	}
	boolFlags := map[string]bool{
		"--pretty":   true,
		"--required": true,
		"--native":   true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// Flag parsing stops here, and `--value` inserted after this point
			// would be taken literally. Leave the args alone.
			return argv
		}

		if strings.HasPrefix(a, "-") {
			// --flag=value form
			if strings.Contains(a, "=") {
				continue
			}
			if boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
				continue
			}
			continue
		}

		// First positional token.
		if isTimeArg(a) {
			out := make([]string, 0, len(argv)+1)
			out = append(out, argv[:i]...)
			out = append(out, "--value")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteBareTimeArg(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
