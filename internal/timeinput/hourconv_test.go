package timeinput

import "testing"

func TestClockConversionRoundTripsEveryHour(t *testing.T) {
	for h := 0; h < 24; h++ {
		h12, mer := to12(h)
		back, ok := to24(h12, mer)
		if !ok {
			t.Fatalf("to24(%d, %q) not ok", h12, mer)
		}
		if back != h {
			t.Fatalf("hour %d round-tripped to %d via (%d, %s)", h, back, h12, mer)
		}
	}
}

func TestMidnightAndNoonMapToTwelve(t *testing.T) {
	h12, mer := to12(0)
	if h12 != 12 || mer != meridiemAM {
		t.Fatalf("to12(0) = (%d, %s), want (12, am)", h12, mer)
	}
	h12, mer = to12(12)
	if h12 != 12 || mer != meridiemPM {
		t.Fatalf("to12(12) = (%d, %s), want (12, pm)", h12, mer)
	}
	if h, ok := to24(12, meridiemAM); !ok || h != 0 {
		t.Fatalf("to24(12, am) = (%d, %v), want (0, true)", h, ok)
	}
	if h, ok := to24(12, meridiemPM); !ok || h != 12 {
		t.Fatalf("to24(12, pm) = (%d, %v), want (12, true)", h, ok)
	}
}

func TestTo24GuardsOutOfRangeHours(t *testing.T) {
	for _, h := range []int{0, 13, -1, 24} {
		if _, ok := to24(h, meridiemAM); ok {
			t.Fatalf("to24(%d, am) accepted out-of-range hour", h)
		}
	}
}
