package timeinput

import (
	"fmt"
	"strconv"
	"strings"
)

// compose renders hour, minute and second as a canonical value for the
// granularity: zero-padded HH:MM, or HH:MM:SS at second granularity.
func compose(h, m, s int, g Granularity) string {
	if g == GranularitySecond {
		return pad2(h) + ":" + pad2(m) + ":" + pad2(s)
	}
	return pad2(h) + ":" + pad2(m)
}

// Canonicalize parses a loosely written time of day ("9:5", "21.30",
// "08:30:15") into the canonical form for a granularity. Parts beyond the
// granularity are dropped, missing parts default to zero.
func Canonicalize(s string, g Granularity) (string, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return "", fmt.Errorf("empty time")
	}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ':' || r == '.'
	})
	if len(parts) == 0 || len(parts) > 3 {
		return "", fmt.Errorf("invalid time %q", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return "", fmt.Errorf("invalid time %q", s)
		}
		nums[i] = n
	}
	h, m, sec := nums[0], nums[1], nums[2]
	if h > 23 || m > 59 || sec > 59 {
		return "", fmt.Errorf("time %q out of range", s)
	}
	return compose(h, m, sec, g), nil
}

// splitCanonical breaks a canonical value into parts. Values produced by
// compose and Canonicalize always split cleanly.
func splitCanonical(v string) (h, m, s int, ok bool) {
	parts := strings.Split(v, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, false
	}
	h = atoiOr(parts[0], -1)
	m = atoiOr(parts[1], -1)
	if len(parts) == 3 {
		s = atoiOr(parts[2], -1)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || s < 0 || s > 59 {
		return 0, 0, 0, false
	}
	return h, m, s, true
}
