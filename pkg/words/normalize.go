package words

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// CasePolicy decides how raw input is folded before letters are compared.
// The same policy applies to every word of a run.
type CasePolicy int

const (
	CaseLower CasePolicy = iota
	CaseUpper
	CasePreserve
)

// ParseCasePolicy reads the config spelling of a policy.
func ParseCasePolicy(s string) (CasePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lower":
		return CaseLower, nil
	case "upper":
		return CaseUpper, nil
	case "preserve", "none":
		return CasePreserve, nil
	}
	return CaseLower, fmt.Errorf("unknown case policy %q", s)
}

func (p CasePolicy) String() string {
	switch p {
	case CaseUpper:
		return "upper"
	case CasePreserve:
		return "preserve"
	}
	return "lower"
}

// Normalize composes the text to NFC, so "ü" is one letter whichever way it
// was typed, then applies the case policy.
func (p CasePolicy) Normalize(text string) string {
	text = norm.NFC.String(text)
	switch p {
	case CaseLower:
		return cases.Lower(language.Und).String(text)
	case CaseUpper:
		return cases.Upper(language.Und).String(text)
	}
	return text
}
