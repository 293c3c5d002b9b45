package fieldval

import "strings"

// SocialSecurityMessages overrides the default failure messages per code.
// Empty fields keep the defaults.
type SocialSecurityMessages struct {
	InvalidChar string
	WrongFormat string
	ZeroStart   string
}

// SocialSecurity validates US social security numbers: nine digits, either
// bare or grouped NNN-NN-NNNN with a single separator character.
type SocialSecurity struct {
	Localizer

	// AllowedFormatChars may separate the digit groups. Must not contain
	// digits.
	AllowedFormatChars string

	Messages SocialSecurityMessages
}

// NewSocialSecurity creates a checker accepting space or hyphen
// separators.
func NewSocialSecurity() *SocialSecurity {
	return &SocialSecurity{AllowedFormatChars: " -"}
}

// SubFields returns nil; social security numbers have no subfields.
func (s *SocialSecurity) SubFields() []string { return nil }

// Check validates the string form of value.
func (s *SocialSecurity) Check(value any) ([]Result, error) {
	if containsDigit(s.AllowedFormatChars) {
		return nil, ErrInvalidFormatChars
	}

	input := stringify(value)

	for _, r := range input {
		if !isDigit(r) && !strings.ContainsRune(s.AllowedFormatChars, r) {
			return s.fail(CodeInvalidChar, s.Messages.InvalidChar), nil
		}
	}

	if !s.wellFormed(input) {
		return s.fail(CodeWrongSSNFormat, s.Messages.WrongFormat), nil
	}

	if strings.HasPrefix(digitsOf(input), "000") {
		return s.fail(CodeZeroStart, s.Messages.ZeroStart), nil
	}

	return nil, nil
}

// wellFormed accepts the nine-digit canonical form or the grouped form
// with separators at the fixed positions NNN?NN?NNNN.
func (s *SocialSecurity) wellFormed(input string) bool {
	switch len(input) {
	case 9:
		return allDigits(input)
	case 11:
		return allDigits(input[:3]) &&
			strings.ContainsRune(s.AllowedFormatChars, rune(input[3])) &&
			allDigits(input[4:6]) &&
			strings.ContainsRune(s.AllowedFormatChars, rune(input[6])) &&
			allDigits(input[7:])
	default:
		return false
	}
}

func (s *SocialSecurity) fail(code, override string) []Result {
	return []Result{fail("", code, s.message("ssn", code, override, nil))}
}
