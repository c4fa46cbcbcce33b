package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownStore is returned when no store pattern matches.
const UnknownStore = "Unknown Store"

type storePattern struct {
	re   *regexp.Regexp
	name string
}

// Ordered: patterns are not mutually exclusive, the first hit wins.
var storePatterns = []storePattern{
	{regexp.MustCompile(`walmart|wal-mart`), "walmart"},
	{regexp.MustCompile(`amazon`), "amazon"},
	{regexp.MustCompile(`kroger`), "kroger"},
	{regexp.MustCompile(`target`), "target"},
	{regexp.MustCompile(`instacart`), "instacart"},
	{regexp.MustCompile(`whole\s*foods`), "whole foods"},
	{regexp.MustCompile(`trader\s*joe`), "trader joe"},
	{regexp.MustCompile(`costco`), "costco"},
	{regexp.MustCompile(`safeway`), "safeway"},
	{regexp.MustCompile(`publix`), "publix"},
	{regexp.MustCompile(`albertsons`), "albertsons"},
	{regexp.MustCompile(`aldi`), "aldi"},
}

var titleCaser = cases.Title(language.English)

// IdentifyStore matches the known store patterns against the combined
// subject, sender and body text and returns the title-cased canonical
// name of the first match.
func IdentifyStore(text, subject, sender string) string {
	combined := strings.ToLower(subject + " " + sender + " " + text)

	for _, p := range storePatterns {
		if p.re.MatchString(combined) {
			return titleCaser.String(p.name)
		}
	}

	return UnknownStore
}
