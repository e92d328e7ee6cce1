package timeinput

import "strconv"

const (
	meridiemAM = "am"
	meridiemPM = "pm"
)

// to12 maps an hour on the 24-hour clock onto the 12-hour clock:
// 0 -> (12, am), 1-11 -> (h, am), 12 -> (12, pm), 13-23 -> (h-12, pm).
func to12(hour24 int) (hour12 int, meridiem string) {
	switch {
	case hour24 == 0:
		return 12, meridiemAM
	case hour24 < 12:
		return hour24, meridiemAM
	case hour24 == 12:
		return 12, meridiemPM
	default:
		return hour24 - 12, meridiemPM
	}
}

// to24 is the inverse of to12. Callers must guard hour12: anything outside
// 1-12 reports ok=false and the input unchanged.
func to24(hour12 int, meridiem string) (hour24 int, ok bool) {
	if hour12 < 1 || hour12 > 12 {
		return hour12, false
	}
	if meridiem == meridiemPM {
		if hour12 == 12 {
			return 12, true
		}
		return hour12 + 12, true
	}
	if hour12 == 12 {
		return 0, true
	}
	return hour12, true
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// pad2 renders n with a leading zero, the display form used for committed
// values and for two-digit segments.
func pad2(n int) string {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
