package components

import (
	"regexp"
	"strings"
	"unicode"
)

// Matches CSI sequences and OSC sequences ending in BEL or ST.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]|\x1b\][^\x07\x1b]*(\x07|\x1b\\)`)

func isBidiControl(r rune) bool {
	switch {
	case r >= '\u202a' && r <= '\u202e':
		return true
	case r >= '\u2066' && r <= '\u2069':
		return true
	case r == '\u200e', r == '\u200f':
		return true
	}
	return false
}

// SanitizeText strips escape sequences, bidi overrides and control
// characters other than newline and tab. Keys and values come from files
// on disk and must not be able to drive the terminal.
func SanitizeText(input string) string {
	if input == "" {
		return input
	}
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if isBidiControl(r) || unicode.IsControl(r) {
			return -1
		}
		return r
	}, ansiPattern.ReplaceAllString(input, ""))
}

// SanitizeOneLine is SanitizeText with newlines and tabs folded to spaces.
func SanitizeOneLine(input string) string {
	cleaned := SanitizeText(input)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return ' '
		}
		return r
	}, cleaned)
}
