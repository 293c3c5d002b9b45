package fieldval

import (
	"errors"
	"regexp"
	"strings"
)

// PatternMessages overrides the default failure messages per code. Empty
// fields keep the defaults.
type PatternMessages struct {
	NoMatch      string
	NoExpression string
}

// Pattern validates a value against a regular expression. Unlike the other
// checkers, a successful match produces non-error results carrying the
// match metadata (offset, matched text, captured groups), which the
// validator surfaces even on the valid path.
type Pattern struct {
	Localizer

	// Expression is the pattern source. An empty expression fails every
	// validation with noExpression.
	Expression string

	// Flags modify matching: "i" for case-insensitive, "g" to collect
	// every non-overlapping match instead of the first.
	Flags string

	Messages PatternMessages
}

// NewPattern creates a checker for the given pattern and flags.
func NewPattern(expression, flags string) *Pattern {
	return &Pattern{Expression: expression, Flags: flags}
}

// SubFields returns nil; pattern matches have no subfields.
func (p *Pattern) SubFields() []string { return nil }

// keepsValidResults marks that match metadata survives on the valid path.
func (p *Pattern) keepsValidResults() bool { return true }

// Check matches the string form of value against the expression. A pattern
// that does not compile is a configuration error.
func (p *Pattern) Check(value any) ([]Result, error) {
	if p.Expression == "" {
		return []Result{fail("", CodeNoExpression,
			p.message("", CodeNoExpression, p.Messages.NoExpression, nil))}, nil
	}

	expr := p.Expression
	if strings.ContainsRune(p.Flags, 'i') {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Join(ErrInvalidExpression, err)
	}

	input := stringify(value)

	limit := 1
	if strings.ContainsRune(p.Flags, 'g') {
		limit = -1
	}
	matches := re.FindAllStringSubmatchIndex(input, limit)
	if len(matches) == 0 {
		return []Result{fail("", CodeNoMatch,
			p.message("", CodeNoMatch, p.Messages.NoMatch, nil))}, nil
	}

	results := make([]Result, 0, len(matches))
	for _, idx := range matches {
		m := &Match{
			Index:   idx[0],
			Matched: input[idx[0]:idx[1]],
		}
		for g := 1; g < len(idx)/2; g++ {
			start, end := idx[2*g], idx[2*g+1]
			if start < 0 {
				m.Groups = append(m.Groups, "")
				continue
			}
			m.Groups = append(m.Groups, input[start:end])
		}
		results = append(results, Result{Match: m})
	}
	return results, nil
}
