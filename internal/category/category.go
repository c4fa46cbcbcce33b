package category

import (
	"regexp"
	"strings"
)

// Other is the terminal fallback. It carries no keywords and is never
// searched during classification.
const Other = "Other"

// Rule is one category bucket: a name, the keyword phrases that map an
// item name into it, and a display color for charts.
type Rule struct {
	Name     string
	Keywords []string
	Color    string
}

type matcher struct {
	re   *regexp.Regexp
	name string
}

// Classifier resolves item names to category names. Rules are checked
// in declaration order and the first keyword hit wins, so overlapping
// keywords ("ice cream" lives under both Dairy & Eggs and Frozen)
// resolve by rule order.
type Classifier struct {
	rules    []Rule
	matchers []matcher
}

func NewClassifier(rules []Rule) *Classifier {
	matchers := make([]matcher, 0, len(rules))

	for _, rule := range rules {
		if rule.Name == Other || len(rule.Keywords) == 0 {
			continue
		}

		quoted := make([]string, len(rule.Keywords))
		for i, keyword := range rule.Keywords {
			quoted[i] = regexp.QuoteMeta(keyword)
		}

		// Whole-word match so a short keyword does not hit inside an
		// unrelated longer word, while multi-word phrases match as
		// contiguous sequences. A trailing plural "s" is tolerated so
		// "bananas" still lands in Produce.
		re := regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)s?\b`)

		matchers = append(matchers, matcher{re: re, name: rule.Name})
	}

	return &Classifier{
		rules:    rules,
		matchers: matchers,
	}
}

func (c *Classifier) Classify(name string) string {
	if name == "" {
		return Other
	}

	lower := strings.ToLower(name)

	for _, m := range c.matchers {
		if m.re.MatchString(lower) {
			return m.name
		}
	}

	return Other
}

func (c *Classifier) Rules() []Rule {
	return c.rules
}

// Color returns the display color for a category, defaulting to the
// Other color for unknown names.
func (c *Classifier) Color(name string) string {
	for _, rule := range c.rules {
		if rule.Name == name {
			return rule.Color
		}
	}

	return otherColor
}

// Colors returns the public {name: color} shape served by the API.
func (c *Classifier) Colors() map[string]string {
	colors := make(map[string]string, len(c.rules))
	for _, rule := range c.rules {
		colors[rule.Name] = rule.Color
	}

	return colors
}
