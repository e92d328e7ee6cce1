package timeinput

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Formatter supplies the locale-dependent pieces the widget needs: a
// formatted sample time to derive a layout from, numerals for substitution,
// and meridiem labels.
type Formatter interface {
	FormatTime(locale string, t time.Time, g Granularity) string
	FormatNumber(locale string, n int) string
	MeridiemLabels(locale string) (am, pm string)
}

// sampleTime has pairwise-distinct parts (21:13:14, 12-hour form 9) so each
// numeral in the formatted output maps back to exactly one field.
var sampleTime = time.Date(2017, time.January, 1, 21, 13, 14, 0, time.UTC)

// deriveFormat turns a locale's formatted sample into a format string by
// substituting each numeral with its token letter. The 24-hour numeral maps
// to a single H, minutes and seconds to mm and ss, the meridiem label to a.
func deriveFormat(f Formatter, locale string, g Granularity) string {
	s := f.FormatTime(locale, sampleTime, g)
	h12, _ := to12(sampleTime.Hour())
	s = replaceNumeral(s, f.FormatNumber(locale, sampleTime.Hour()), "H")
	if g >= GranularityMinute {
		s = replaceNumeral(s, f.FormatNumber(locale, sampleTime.Minute()), "mm")
	}
	if g >= GranularitySecond {
		s = replaceNumeral(s, f.FormatNumber(locale, sampleTime.Second()), "ss")
	}
	s = replaceNumeral(s, f.FormatNumber(locale, h12), "h")
	am, pm := f.MeridiemLabels(locale)
	if am != "" {
		s = strings.Replace(s, am, "a", 1)
	}
	if pm != "" {
		s = strings.Replace(s, pm, "a", 1)
	}
	return s
}

// replaceNumeral swaps the first occurrence of a formatted numeral for its
// token text. A one-digit numeral that appears zero-padded doubles the
// token letter so the leading zero survives the round trip.
func replaceNumeral(s, numeral, tok string) string {
	if numeral == "" {
		return s
	}
	if len(numeral) == 1 {
		if padded := "0" + numeral; strings.Contains(s, padded) {
			return strings.Replace(s, padded, tok+tok, 1)
		}
	}
	return strings.Replace(s, numeral, tok, 1)
}

// localeClock is one reduced CLDR entry: time patterns per granularity plus
// the locale's meridiem labels.
type localeClock struct {
	tag      string
	patterns [3]string
	am, pm   string
}

// builtinClocks is ordered for the language matcher: the first entry is the
// fallback for unknown or empty locales. Patterns are hand-reduced from
// CLDR time skeletons; literal words next to the hour (de "Uhr", fr "h")
// are dropped because their letters collide with token letters.
var builtinClocks = []localeClock{
	{"en", [3]string{"h a", "h:mm a", "h:mm:ss a"}, "AM", "PM"},
	{"en-GB", [3]string{"HH", "HH:mm", "HH:mm:ss"}, "am", "pm"},
	{"de", [3]string{"HH", "HH:mm", "HH:mm:ss"}, "AM", "PM"},
	{"fr", [3]string{"HH", "HH:mm", "HH:mm:ss"}, "AM", "PM"},
	{"es", [3]string{"H", "H:mm", "H:mm:ss"}, "a. m.", "p. m."},
	{"it", [3]string{"HH", "HH:mm", "HH:mm:ss"}, "AM", "PM"},
	{"nl", [3]string{"HH", "HH:mm", "HH:mm:ss"}, "a.m.", "p.m."},
	{"pt", [3]string{"HH", "HH:mm", "HH:mm:ss"}, "AM", "PM"},
	{"pl", [3]string{"HH", "HH:mm", "HH:mm:ss"}, "AM", "PM"},
	{"sv", [3]string{"HH", "HH:mm", "HH:mm:ss"}, "fm", "em"},
	{"da", [3]string{"HH", "HH.mm", "HH.mm.ss"}, "AM", "PM"},
	{"fi", [3]string{"H", "H.mm", "H.mm.ss"}, "ap.", "ip."},
	{"ru", [3]string{"HH", "HH:mm", "HH:mm:ss"}, "AM", "PM"},
	{"ja", [3]string{"H時", "H:mm", "H:mm:ss"}, "午前", "午後"},
	{"ko", [3]string{"a h시", "a h:mm", "a h:mm:ss"}, "오전", "오후"},
	{"zh", [3]string{"H時", "HH:mm", "HH:mm:ss"}, "上午", "下午"},
	{"ar", [3]string{"h a", "h:mm a", "h:mm:ss a"}, "ص", "م"},
}

var builtinMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(builtinClocks))
	for i, c := range builtinClocks {
		tags[i] = language.MustParse(c.tag)
	}
	return language.NewMatcher(tags)
}()

func clockFor(locale string) localeClock {
	if locale == "" {
		return builtinClocks[0]
	}
	_, idx := language.MatchStrings(builtinMatcher, locale)
	return builtinClocks[idx]
}

// builtinFormatter renders times from the reduced CLDR table. Numerals are
// ASCII; locales with other numbering systems match their base entry.
type builtinFormatter struct{}

// NewFormatter returns the built-in locale formatter backed by the reduced
// CLDR table. Unknown locales fall back to en.
func NewFormatter() Formatter {
	return builtinFormatter{}
}

func (builtinFormatter) FormatTime(locale string, t time.Time, g Granularity) string {
	c := clockFor(locale)
	return renderPattern(c.patterns[g], t, c.am, c.pm)
}

func (builtinFormatter) FormatNumber(_ string, n int) string {
	return strconv.Itoa(n)
}

func (builtinFormatter) MeridiemLabels(locale string) (am, pm string) {
	c := clockFor(locale)
	return c.am, c.pm
}

func renderPattern(pattern string, t time.Time, am, pm string) string {
	toks, err := tokenize(pattern)
	if err != nil {
		return pattern
	}
	h12, mer := to12(t.Hour())
	var b strings.Builder
	for _, tok := range toks {
		switch tok.kind {
		case tokenLiteral:
			b.WriteString(tok.lit)
		case tokenHour24:
			b.WriteString(padTo(t.Hour(), tok.width))
		case tokenHour12:
			b.WriteString(padTo(h12, tok.width))
		case tokenMinute:
			b.WriteString(padTo(t.Minute(), tok.width))
		case tokenSecond:
			b.WriteString(padTo(t.Second(), tok.width))
		case tokenMeridiem:
			if mer == meridiemPM {
				b.WriteString(pm)
			} else {
				b.WriteString(am)
			}
		}
	}
	return b.String()
}

func padTo(n, width int) string {
	if width >= 2 {
		return pad2(n)
	}
	return strconv.Itoa(n)
}

// LocaleInfo describes one entry of the built-in locale table.
type LocaleInfo struct {
	Tag     string
	Pattern string
	AM, PM  string
}

// Locales lists the built-in locale table in matcher order.
func Locales() []LocaleInfo {
	out := make([]LocaleInfo, len(builtinClocks))
	for i, c := range builtinClocks {
		out[i] = LocaleInfo{Tag: c.tag, Pattern: c.patterns[GranularitySecond], AM: c.am, PM: c.pm}
	}
	return out
}
