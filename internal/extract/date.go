package extract

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
)

var datePatterns = []*regexp.Regexp{
	// MM/DD/YYYY or MM-DD-YY
	regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{2,4}`),
	// YYYY-MM-DD
	regexp.MustCompile(`\d{4}[-/]\d{1,2}[-/]\d{1,2}`),
	// DD Mon YYYY
	regexp.MustCompile(`\d{1,2}\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{2,4}`),
}

var dateLayouts = []string{
	"1/2/2006",
	"1-2-2006",
	"1/2/06",
	"1-2-06",
	"2006-1-2",
	"2006/1/2",
	"2 Jan 2006",
	"2 January 2006",
}

// ExtractDate finds a purchase date in free text. Every matched
// candidate is tried against the known layouts; when nothing parses the
// current time is the fallback, so callers always get a usable value
// even if it masks a genuinely missing date.
func ExtractDate(text string) time.Time {
	lower := strings.ToLower(text)

	for _, pattern := range datePatterns {
		match := pattern.FindString(lower)
		if match == "" {
			continue
		}

		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, match); err == nil {
				return t
			}
		}
	}

	return time.Now()
}

// ParseHeaderDate parses an RFC 2822 style Date header from an email,
// falling back to the current time when missing or malformed.
func ParseHeaderDate(header string) time.Time {
	if header == "" {
		return time.Now()
	}

	t, err := mail.ParseDate(header)
	if err != nil {
		return time.Now()
	}

	return t
}
