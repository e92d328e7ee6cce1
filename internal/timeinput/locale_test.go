package timeinput

import (
	"testing"
	"time"
)

func TestDerivedFormatsPerLocale(t *testing.T) {
	f := NewFormatter()
	cases := []struct {
		locale string
		g      Granularity
		want   string
	}{
		{"en-US", GranularitySecond, "h:mm:ss a"},
		{"en-US", GranularityMinute, "h:mm a"},
		{"en-US", GranularityHour, "h a"},
		{"de-DE", GranularityMinute, "H:mm"},
		{"de-DE", GranularitySecond, "H:mm:ss"},
		{"fi", GranularityMinute, "H.mm"},
		{"ko", GranularityMinute, "a h:mm"},
		{"da", GranularitySecond, "H.mm.ss"},
	}
	for _, c := range cases {
		if got := deriveFormat(f, c.locale, c.g); got != c.want {
			t.Fatalf("deriveFormat(%s, %s) = %q, want %q", c.locale, c.g, got, c.want)
		}
	}
}

func TestUnknownLocaleFallsBackToEnglish(t *testing.T) {
	f := NewFormatter()
	got := deriveFormat(f, "xx-ZZ", GranularityMinute)
	if got != "h:mm a" {
		t.Fatalf("derived format for unknown locale = %q, want %q", got, "h:mm a")
	}
	am, pm := f.MeridiemLabels("xx-ZZ")
	if am != "AM" || pm != "PM" {
		t.Fatalf("labels for unknown locale = %q/%q, want AM/PM", am, pm)
	}
}

func TestRegionalVariantsMatchBaseEntry(t *testing.T) {
	f := NewFormatter()
	if got := deriveFormat(f, "de-AT", GranularityMinute); got != "H:mm" {
		t.Fatalf("de-AT derived format = %q, want H:mm", got)
	}
	if got := deriveFormat(f, "pt-BR", GranularityMinute); got != "H:mm" {
		t.Fatalf("pt-BR derived format = %q, want H:mm", got)
	}
}

func TestFormatTimeRendersSample(t *testing.T) {
	f := NewFormatter()
	at := time.Date(2017, time.January, 1, 21, 13, 14, 0, time.UTC)
	if got := f.FormatTime("en-US", at, GranularitySecond); got != "9:13:14 PM" {
		t.Fatalf("en-US sample = %q, want 9:13:14 PM", got)
	}
	if got := f.FormatTime("de-DE", at, GranularitySecond); got != "21:13:14" {
		t.Fatalf("de-DE sample = %q, want 21:13:14", got)
	}
	if got := f.FormatTime("fi", at, GranularityMinute); got != "21.13" {
		t.Fatalf("fi sample = %q, want 21.13", got)
	}
}

func TestLocalesListsBuiltinTable(t *testing.T) {
	ls := Locales()
	if len(ls) == 0 {
		t.Fatal("empty locale table")
	}
	if ls[0].Tag != "en" {
		t.Fatalf("first locale = %q, want en (matcher fallback)", ls[0].Tag)
	}
	for _, l := range ls {
		if l.Pattern == "" {
			t.Fatalf("locale %s has no pattern", l.Tag)
		}
	}
}
