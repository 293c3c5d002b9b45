package fieldval

import (
	"strconv"
	"unicode/utf8"
)

// StringLengthMessages overrides the default failure messages per code.
// Empty fields keep the defaults.
type StringLengthMessages struct {
	TooShort string
	TooLong  string
}

// StringLength validates that a string's length (in characters) falls
// within configured bounds.
type StringLength struct {
	Localizer

	// MinLength and MaxLength bound the length; a negative bound is
	// ignored.
	MinLength int
	MaxLength int

	Messages StringLengthMessages
}

// NewStringLength creates a checker with both bounds disabled.
func NewStringLength() *StringLength {
	return &StringLength{MinLength: -1, MaxLength: -1}
}

// SubFields returns nil; strings have no subfields.
func (s *StringLength) SubFields() []string { return nil }

// Check validates the string form of value against the bounds. The
// message placeholders {min} and {max} carry the violated bound.
func (s *StringLength) Check(value any) ([]Result, error) {
	length := utf8.RuneCountInString(stringify(value))

	if s.MinLength >= 0 && length < s.MinLength {
		values := map[string]string{"min": strconv.Itoa(s.MinLength)}
		return []Result{fail("", CodeTooShort,
			s.message("", CodeTooShort, s.Messages.TooShort, values))}, nil
	}
	if s.MaxLength >= 0 && length > s.MaxLength {
		values := map[string]string{"max": strconv.Itoa(s.MaxLength)}
		return []Result{fail("", CodeTooLong,
			s.message("", CodeTooLong, s.Messages.TooLong, values))}, nil
	}

	return nil, nil
}
