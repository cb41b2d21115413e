package rules

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Uncategorized is the category for lines no rule matches
const Uncategorized = "Uncategorized"

// Line is an imported statement line to categorize
type Line struct {
	Date   time.Time
	Payee  string
	Amount decimal.Decimal
}

// matchLine formats l the way rule conditions see it: date,"payee",amount
func (l Line) matchLine() string {
	return strings.Join([]string{
		l.Date.Format("2006-01-02"),
		strconv.Quote(l.Payee),
		l.Amount.String(),
	}, ",")
}

// Rule assigns Category to lines matching any of its case-insensitive Conditions
type Rule struct {
	Conditions []string
	Category   string
	pattern    *regexp.Regexp
}

// NewRule compiles conditions into a rule. A rule without conditions matches everything.
func NewRule(category string, conditions ...string) (Rule, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return Rule{}, errors.New("Invalid rule: No category selected")
	}
	cleaned := make([]string, 0, len(conditions))
	for _, c := range conditions {
		if c = strings.TrimSpace(c); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	pattern, err := regexp.Compile("(?i)" + strings.Join(cleaned, "|"))
	if err != nil {
		return Rule{}, errors.Wrap(err, "Invalid rule condition")
	}
	return Rule{
		Conditions: cleaned,
		Category:   category,
		pattern:    pattern,
	}, nil
}

// Match returns true if l satisfies any of the rule's conditions
func (r Rule) Match(l Line) bool {
	return r.pattern != nil && r.pattern.MatchString(l.matchLine())
}

func (r Rule) String() string {
	var buf strings.Builder
	indent := ""
	if len(r.Conditions) > 0 {
		buf.WriteString("if\n")
		for _, c := range r.Conditions {
			buf.WriteString(c)
			buf.WriteRune('\n')
		}
		indent = "  "
	}
	buf.WriteString(indent + "category " + r.Category + "\n")
	return buf.String()
}

// Rules are applied in order, so later matches take precedence
type Rules []Rule

// Categorize returns the category of the last matching rule with conditions.
// Rules without conditions are defaults, used only when no other rule matches.
func (rs Rules) Categorize(l Line) string {
	category, fallback := "", Uncategorized
	for _, r := range rs {
		switch {
		case len(r.Conditions) == 0 && r.pattern != nil:
			fallback = r.Category
		case r.Match(l):
			category = r.Category
		}
	}
	if category == "" {
		return fallback
	}
	return category
}

func (rs Rules) String() string {
	var buf strings.Builder
	for i, r := range rs {
		if i != 0 {
			buf.WriteRune('\n')
		}
		buf.WriteString(r.String())
	}
	return buf.String()
}
