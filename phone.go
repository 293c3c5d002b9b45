package fieldval

import (
	"strconv"
	"strings"
)

// PhoneMessages overrides the default failure messages per code. Empty
// fields keep the defaults.
type PhoneMessages struct {
	InvalidChar string
	WrongLength string
}

// Phone validates telephone numbers by aggregate digit count. Formatting
// characters may appear anywhere; the validator deliberately never checks
// digit grouping, only that enough digits are present.
type Phone struct {
	Localizer

	// AllowedFormatChars may appear between digits. Must not contain
	// digits.
	AllowedFormatChars string

	// MinDigits is the minimum number of digits the value must contain.
	MinDigits int

	Messages PhoneMessages
}

// NewPhone creates a checker requiring ten digits with the usual
// punctuation allowed.
func NewPhone() *Phone {
	return &Phone{
		AllowedFormatChars: "-()+ .",
		MinDigits:          10,
	}
}

// SubFields returns nil; phone numbers have no subfields.
func (p *Phone) SubFields() []string { return nil }

// Check validates the string form of value.
func (p *Phone) Check(value any) ([]Result, error) {
	if containsDigit(p.AllowedFormatChars) {
		return nil, ErrInvalidFormatChars
	}

	input := stringify(value)

	digits := 0
	for _, r := range input {
		switch {
		case isDigit(r):
			digits++
		case strings.ContainsRune(p.AllowedFormatChars, r):
		default:
			return []Result{fail("", CodeInvalidChar,
				p.message("phone", CodeInvalidChar, p.Messages.InvalidChar, nil))}, nil
		}
	}

	if digits < p.MinDigits {
		values := map[string]string{"min": strconv.Itoa(p.MinDigits)}
		return []Result{fail("", CodeWrongLength,
			p.message("phone", CodeWrongLength, p.Messages.WrongLength, values))}, nil
	}

	return nil, nil
}
