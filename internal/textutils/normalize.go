// Package textutils canonicalizes free text so that descriptions and column
// names can be compared case- and accent-insensitively.
package textutils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// accentFolder maps the upper-case Portuguese accented letters found in
// bank exports to their base letter. The set is fixed: other accents are
// kept as they are.
var accentFolder = strings.NewReplacer(
	"Ó", "O", "Ô", "O", "Õ", "O",
	"Í", "I",
	"Á", "A", "À", "A", "Ã", "A",
	"É", "E", "Ê", "E",
	"Ú", "U",
	"Ç", "C",
)

// NormalizeText upper-cases s and folds the accented letters listed in
// accentFolder. NormalizeText(NormalizeText(s)) == NormalizeText(s).
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	// A Caser keeps state between calls, so one is built per call.
	upper := cases.Upper(language.BrazilianPortuguese).String(s)
	return accentFolder.Replace(upper)
}

// ContainsAny reports whether normalized contains at least one of the
// keywords. Keywords are expected to be normalized already.
func ContainsAny(normalized string, keywords ...string) bool {
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}

// FirstMatch returns the first keyword contained in normalized.
func FirstMatch(normalized string, keywords ...string) (string, bool) {
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(normalized, keyword) {
			return keyword, true
		}
	}
	return "", false
}
