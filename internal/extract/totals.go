package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var totalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:order\s+)?total[\s:]*\$?\s*(\d+\.\d{2})`),
	regexp.MustCompile(`amount\s+(?:due|charged)[\s:]*\$?\s*(\d+\.\d{2})`),
	regexp.MustCompile(`grand\s+total[\s:]*\$?\s*(\d+\.\d{2})`),
	regexp.MustCompile(`balance[\s:]*\$?\s*(\d+\.\d{2})`),
}

var taxPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:sales\s+)?tax[\s:]*\$?\s*(\d+\.\d{2})`),
	regexp.MustCompile(`estimated\s+tax[\s:]*\$?\s*(\d+\.\d{2})`),
}

// ExtractTotals pulls the document total and tax amounts out of the
// whole text. Each family takes the first matching occurrence in
// document order regardless of which pattern produced it, so a receipt
// that prints "subtotal" before the grand total reports the subtotal.
// Absent matches yield 0.
func ExtractTotals(text string) (total, tax float64) {
	lower := strings.ToLower(text)

	total = firstOccurrence(totalPatterns, lower)
	tax = firstOccurrence(taxPatterns, lower)

	return total, tax
}

// firstOccurrence returns the captured amount of the earliest match in
// the text across all patterns of a family, 0 when none match.
func firstOccurrence(patterns []*regexp.Regexp, text string) float64 {
	earliest := -1
	var value float64

	for _, pattern := range patterns {
		loc := pattern.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}

		if earliest == -1 || loc[0] < earliest {
			earliest = loc[0]
			value, _ = strconv.ParseFloat(text[loc[2]:loc[3]], 64)
		}
	}

	return value
}
