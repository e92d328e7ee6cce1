package timeinput

import (
	"fmt"
	"strings"
	"unicode"
)

// Granularity selects the most precise segment the widget renders and the
// precision of committed values (HH:MM for Hour and Minute, HH:MM:SS for
// Second).
type Granularity int

const (
	GranularityHour Granularity = iota
	GranularityMinute
	GranularitySecond
)

func (g Granularity) String() string {
	switch g {
	case GranularityHour:
		return "hour"
	case GranularityMinute:
		return "minute"
	case GranularitySecond:
		return "second"
	}
	return fmt.Sprintf("granularity(%d)", int(g))
}

func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hour", "h":
		return GranularityHour, nil
	case "minute", "min", "m", "":
		return GranularityMinute, nil
	case "second", "sec", "s":
		return GranularitySecond, nil
	}
	return GranularityMinute, fmt.Errorf("unknown granularity %q (want hour, minute or second)", s)
}

// UnsupportedTokenError reports a letter run in an explicit format that no
// segment can render, such as "hhh".
type UnsupportedTokenError struct {
	Token string
}

func (e *UnsupportedTokenError) Error() string {
	return fmt.Sprintf("unsupported token: %q", e.Token)
}

type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenHour12
	tokenHour24
	tokenMinute
	tokenSecond
	tokenMeridiem
)

// token is one unit of a format layout: either a field slot (kind, width)
// or a literal run rendered verbatim between fields.
type token struct {
	kind  tokenKind
	width int
	lit   string
}

var tokenKinds = map[rune]tokenKind{
	'h': tokenHour12,
	'H': tokenHour24,
	'm': tokenMinute,
	's': tokenSecond,
	'a': tokenMeridiem,
}

// tokenize splits a format string into field tokens and literal runs. Token
// letters are h (12-hour), H (24-hour), m, s and a; repetition (h vs hh)
// sets the field width. A same-letter run longer than two has no segment
// rendering and is rejected.
func tokenize(format string) ([]token, error) {
	var toks []token
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			toks = append(toks, token{kind: tokenLiteral, lit: lit.String()})
			lit.Reset()
		}
	}
	runes := []rune(format)
	for i := 0; i < len(runes); {
		r := runes[i]
		kind, isTok := tokenKinds[r]
		if !isTok {
			lit.WriteRune(r)
			i++
			continue
		}
		n := 1
		for i+n < len(runes) && runes[i+n] == r {
			n++
		}
		if n > 2 {
			return nil, &UnsupportedTokenError{Token: strings.Repeat(string(r), n)}
		}
		flush()
		toks = append(toks, token{kind: kind, width: n})
		i += n
	}
	flush()
	return toks, nil
}

// dividerFrom picks the navigation divider for a layout: the first
// non-alphanumeric character of the format, or "" when the format has none.
func dividerFrom(format string) string {
	for _, r := range format {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return string(r)
		}
	}
	return ""
}

func hasKind(toks []token, kind tokenKind) bool {
	for _, t := range toks {
		if t.kind == kind {
			return true
		}
	}
	return false
}
