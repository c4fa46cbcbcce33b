package extract

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	leadingCodeRe = regexp.MustCompile(`^\d+\s*`)
	unitSuffixRe  = regexp.MustCompile(`(?i)\s*\b(ea|each|lb|oz|kg|g)\s*$`)
)

// NormalizeName cleans a raw item-name fragment: collapses whitespace,
// drops a leading SKU-like numeric token and a trailing unit suffix,
// then title-cases. Empty input stays empty.
func NormalizeName(raw string) string {
	name := whitespaceRe.ReplaceAllString(raw, " ")
	name = leadingCodeRe.ReplaceAllString(name, "")
	name = unitSuffixRe.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)

	return titleCaser.String(name)
}
