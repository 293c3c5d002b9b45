package fieldval

import "strings"

// Postal code domains.
const (
	ZipUSOnly     = "US Only"
	ZipCanadaOnly = "Canada Only"
	ZipUSOrCanada = "US or Canada"
)

// ZipCodeMessages overrides the default failure messages per code. Empty
// fields keep the defaults.
type ZipCodeMessages struct {
	InvalidChar   string
	WrongLength   string
	WrongUSFormat string
	WrongCAFormat string
}

// ZipCode validates US ZIP (5 or 9 digit) and Canadian postal codes, with
// length-based dispatch between the two forms.
type ZipCode struct {
	Localizer

	// Domain selects which national formats are accepted.
	Domain string

	// AllowedFormatChars may separate the groups of a ZIP+4 or Canadian
	// code. Must not contain digits or letters.
	AllowedFormatChars string

	Messages ZipCodeMessages
}

// NewZipCode creates a checker accepting both US and Canadian codes with
// space and hyphen separators.
func NewZipCode() *ZipCode {
	return &ZipCode{
		Domain:             ZipUSOrCanada,
		AllowedFormatChars: " -",
	}
}

// SubFields returns nil; postal codes have no subfields.
func (z *ZipCode) SubFields() []string { return nil }

// Check validates the string form of value against the configured domain.
func (z *ZipCode) Check(value any) ([]Result, error) {
	switch z.Domain {
	case ZipUSOnly, ZipCanadaOnly, ZipUSOrCanada:
	default:
		return nil, ErrInvalidDomain
	}
	for _, r := range z.AllowedFormatChars {
		if isDigit(r) || isASCIILetter(r) {
			return nil, ErrInvalidFormatChars
		}
	}

	input := stringify(value)

	hasLetter := false
	for _, r := range input {
		switch {
		case isASCIILetter(r):
			hasLetter = true
		case isDigit(r) || strings.ContainsRune(z.AllowedFormatChars, r):
		default:
			return z.fail(CodeInvalidChar, z.Messages.InvalidChar), nil
		}
	}

	n := len(input)
	usCandidate := !hasLetter && (n == 5 || n == 9 || n == 10)
	caCandidate := hasLetter && (n == 6 || n == 7)

	switch z.Domain {
	case ZipUSOnly:
		if !usCandidate {
			return z.fail(CodeWrongLength, z.Messages.WrongLength), nil
		}
		return z.checkUS(input), nil

	case ZipCanadaOnly:
		if usCandidate {
			// Historical deviation: a US-shaped input under the
			// Canada-only domain reports the US-flavored length code.
			return z.fail(CodeWrongLength, z.Messages.WrongLength), nil
		}
		if !caCandidate {
			return z.fail(CodeWrongCAFormat, z.Messages.WrongCAFormat), nil
		}
		return z.checkCA(input), nil

	default:
		switch {
		case usCandidate:
			return z.checkUS(input), nil
		case caCandidate:
			return z.checkCA(input), nil
		default:
			return z.fail(CodeWrongLength, z.Messages.WrongLength), nil
		}
	}
}

// checkUS expects five leading digits and, for the +4 forms, four trailing
// digits with an optional single separator.
func (z *ZipCode) checkUS(input string) []Result {
	if !allDigits(input[:5]) {
		return z.fail(CodeWrongUSFormat, z.Messages.WrongUSFormat)
	}
	switch len(input) {
	case 5:
		return nil
	case 9:
		if !allDigits(input[5:]) {
			return z.fail(CodeWrongUSFormat, z.Messages.WrongUSFormat)
		}
		return nil
	default: // 10
		if !strings.ContainsRune(z.AllowedFormatChars, rune(input[5])) || !allDigits(input[6:]) {
			return z.fail(CodeWrongUSFormat, z.Messages.WrongUSFormat)
		}
		return nil
	}
}

// checkCA expects the letter-digit-letter digit-letter-digit pattern, with
// an optional separator between the halves.
func (z *ZipCode) checkCA(input string) []Result {
	s := input
	if len(s) == 7 {
		if !strings.ContainsRune(z.AllowedFormatChars, rune(s[3])) {
			return z.fail(CodeWrongCAFormat, z.Messages.WrongCAFormat)
		}
		s = s[:3] + s[4:]
	}

	for i, r := range s {
		if i%2 == 0 {
			if !isASCIILetter(r) {
				return z.fail(CodeWrongCAFormat, z.Messages.WrongCAFormat)
			}
		} else if !isDigit(r) {
			return z.fail(CodeWrongCAFormat, z.Messages.WrongCAFormat)
		}
	}
	return nil
}

func (z *ZipCode) fail(code, override string) []Result {
	return []Result{fail("", code, z.message("zip", code, override, nil))}
}

func allDigits(s string) bool {
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}
