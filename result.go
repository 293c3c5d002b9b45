package fieldval

import "strings"

// Kind classifies an Outcome.
type Kind int

const (
	// Valid means every check passed.
	Valid Kind = iota
	// Invalid means at least one check failed.
	Invalid
)

func (k Kind) String() string {
	if k == Valid {
		return "valid"
	}
	return "invalid"
}

// Match carries the metadata of one regular-expression match. It is only
// populated on results produced by the Pattern checker.
type Match struct {
	// Index is the byte offset of the match in the input.
	Index int
	// Matched is the matched substring.
	Matched string
	// Groups holds the captured groups, in pattern order.
	Groups []string
}

// Result reports on one checked aspect of a value. When IsError is false,
// Code and Message are empty; multi-subfield validators use such entries to
// report partial success per subfield.
type Result struct {
	IsError  bool
	SubField string
	Code     string
	Message  string
	Match    *Match
}

// fail builds an error result for a subfield.
func fail(subField, code, message string) Result {
	return Result{IsError: true, SubField: subField, Code: code, Message: message}
}

// pass builds a non-error placeholder for a subfield.
func pass(subField string) Result {
	return Result{SubField: subField}
}

// Outcome is the notification payload of a validation call. Results is
// empty when Kind is Valid, except for the Pattern checker which surfaces
// match metadata on the valid path.
type Outcome struct {
	Kind    Kind
	Field   string
	Results []Result
}

// Message joins the message of every error result with newlines, in result
// order.
func (o Outcome) Message() string {
	var parts []string
	for _, r := range o.Results {
		if r.IsError {
			parts = append(parts, r.Message)
		}
	}
	return strings.Join(parts, "\n")
}
