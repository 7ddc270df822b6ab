package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsSeparator reports characters that split a compound word.
func IsSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '.' || r == '/'
}

// IsOnlyNumbers reports whether s is a non-empty run of digits.
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsNonLetters reports any rune in s that is not a letter or a
// combining mark. Grid cells hold single letters, so such words are skipped.
func ContainsNonLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.Is(unicode.Mn, r) {
			return true
		}
	}
	return false
}

// IsRepetitive reports strings made of one character repeated, like "aaa".
func IsRepetitive(s string) bool {
	if utf8.RuneCountInString(s) <= 2 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	for _, r := range s {
		if r != first {
			return false
		}
	}
	return true
}

// CleanWord trims surrounding whitespace and drops separators inside
// compounds, so "ice-cream" becomes "icecream".
func CleanWord(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if IsSeparator(r) {
			return -1
		}
		return r
	}, s)
}

// IsValidWord checks a cleaned word for use on the grid: letters only, not a
// repeated character, and between minLen and maxLen letters. A bound of zero
// or less is not checked.
func IsValidWord(s string, minLen, maxLen int) bool {
	if s == "" || IsOnlyNumbers(s) || ContainsNonLetters(s) || IsRepetitive(s) {
		return false
	}
	n := utf8.RuneCountInString(s)
	if minLen > 0 && n < minLen {
		return false
	}
	if maxLen > 0 && n > maxLen {
		return false
	}
	return true
}
