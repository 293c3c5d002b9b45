package fieldval

import (
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/fieldval/pkg/lookup"
)

// DateParts is the structured form of a date value: each part is the raw
// string a form field holds. Maps and lookup.Getter implementations
// exposing "month", "day", and "year" keys are accepted as well, as are
// time.Time values.
type DateParts struct {
	Month string
	Day   string
	Year  string
}

// DateMessages overrides the default failure messages per code. Empty
// fields keep the defaults.
type DateMessages struct {
	Format      string
	InvalidChar string
	WrongLength string
	WrongMonth  string
	WrongDay    string
	WrongYear   string
}

// Date validates calendar dates, either as structured month/day/year parts
// or as a string matched against a format mask like "MM/DD/YYYY".
type Date struct {
	Localizer

	// InputFormat is the mask for string input. M, D, and Y tokens are
	// case-insensitive: one or two M's, zero or one-or-two D's, and zero,
	// two, or four Y's; a single-letter token accepts one or two digits.
	// Day may be omitted only in a month/year mask and year only in a
	// month/day mask.
	InputFormat string

	// AllowedFormatChars are the literal separators permitted in the mask
	// and the input. Must not contain digits or the M/D/Y mask letters.
	AllowedFormatChars string

	// ValidateAsString matches string input against InputFormat. When
	// false, string input is split on the allowed separators and the
	// pieces are range-checked as independent fields.
	ValidateAsString bool

	Messages DateMessages
}

// NewDate creates a checker with the "MM/DD/YYYY" mask and "/- ."
// separators.
func NewDate() *Date {
	return &Date{
		InputFormat:        "MM/DD/YYYY",
		AllowedFormatChars: "/- .",
		ValidateAsString:   true,
	}
}

// SubFields returns the declared subfield set.
func (d *Date) SubFields() []string {
	return []string{"day", "month", "year"}
}

// Check validates a date value. The mask itself is validated first: a
// malformed mask is a format error regardless of the input.
func (d *Date) Check(value any) ([]Result, error) {
	for _, r := range d.AllowedFormatChars {
		if isDigit(r) || isMaskLetter(r) {
			return nil, ErrInvalidFormatChars
		}
	}

	switch v := value.(type) {
	case time.Time:
		return d.checkParts(
			strconv.Itoa(int(v.Month())),
			strconv.Itoa(v.Day()),
			strconv.Itoa(v.Year()),
		), nil
	case DateParts:
		return d.checkParts(v.Month, v.Day, v.Year), nil
	case *DateParts:
		if v == nil {
			return d.checkParts("", "", ""), nil
		}
		return d.checkParts(v.Month, v.Day, v.Year), nil
	case string:
		if d.ValidateAsString {
			return d.checkString(v), nil
		}
		return d.checkLoose(v), nil
	default:
		if m, ok := lookup.Resolve(value, "month"); ok || lookup.Has(value, "day") || lookup.Has(value, "year") {
			day, _ := lookup.Resolve(value, "day")
			year, _ := lookup.Resolve(value, "year")
			return d.checkParts(stringify(m), stringify(day), stringify(year)), nil
		}
		return d.checkString(stringify(value)), nil
	}
}

func isMaskLetter(r rune) bool {
	switch r {
	case 'M', 'm', 'D', 'd', 'Y', 'y':
		return true
	}
	return false
}

// checkParts range-checks independent month, day, and year fields. The
// first failing field wins; placeholders for the remaining subfields are
// synthesized by the validator.
func (d *Date) checkParts(month, day, year string) []Result {
	m, res := d.numericPart(month, "month", CodeWrongMonth, d.Messages.WrongMonth)
	if res != nil {
		return res
	}
	if m < 1 || m > 12 {
		return d.fail("month", CodeWrongMonth, d.Messages.WrongMonth)
	}

	y, res := d.numericPart(year, "year", CodeWrongYear, d.Messages.WrongYear)
	if res != nil {
		return res
	}
	if y < 0 || y > 9999 {
		return d.fail("year", CodeWrongYear, d.Messages.WrongYear)
	}

	dd, res := d.numericPart(day, "day", CodeWrongDay, d.Messages.WrongDay)
	if res != nil {
		return res
	}
	if dd < 1 || dd > daysInMonth(m, y) {
		return d.fail("day", CodeWrongDay, d.Messages.WrongDay)
	}

	return []Result{pass("day"), pass("month"), pass("year")}
}

// numericPart parses one structured field. A missing part is a
// requiredField error on that subfield; a non-numeric part is an
// invalidChar error.
func (d *Date) numericPart(s, subField, rangeCode, rangeOverride string) (int, []Result) {
	s = strings.Trim(s, " ")
	if s == "" {
		return 0, []Result{fail(subField, CodeRequiredField, d.message("", CodeRequiredField, "", nil))}
	}
	for _, r := range s {
		if !isDigit(r) {
			return 0, d.fail(subField, CodeInvalidChar, d.Messages.InvalidChar)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, d.fail(subField, rangeCode, rangeOverride)
	}
	return n, nil
}

// checkLoose handles string input with ValidateAsString disabled: split on
// the allowed separators and assign the pieces in mask token order.
func (d *Date) checkLoose(input string) []Result {
	tokens, ok := maskTokens(d.InputFormat, d.AllowedFormatChars)
	if !ok {
		return d.fail("", CodeFormat, d.Messages.Format)
	}

	var parts []string
	current := strings.Builder{}
	for _, r := range input {
		if strings.ContainsRune(d.AllowedFormatChars, r) {
			parts = append(parts, current.String())
			current.Reset()
			continue
		}
		current.WriteRune(r)
	}
	parts = append(parts, current.String())

	var month, day, year string
	i := 0
	for _, tok := range tokens {
		if tok.kind == 'L' {
			continue
		}
		part := ""
		if i < len(parts) {
			part = parts[i]
		}
		i++
		switch tok.kind {
		case 'M':
			month = part
		case 'D':
			day = part
		case 'Y':
			year = part
		}
	}
	return d.checkParts(month, day, year)
}

type maskToken struct {
	kind rune // 'M', 'D', 'Y', or 'L' for a literal separator
	text string
}

// maskTokens splits a format mask into same-class runs and validates its
// shape: one M run of one or two letters, at most one D run of one or two,
// at most one Y run of two or four, day omitted only alongside a year and
// vice versa, and every other character drawn from the allowed separators.
func maskTokens(mask, allowedFormatChars string) ([]maskToken, bool) {
	var tokens []maskToken
	for _, r := range mask {
		kind := rune('L')
		switch {
		case r == 'M' || r == 'm':
			kind = 'M'
		case r == 'D' || r == 'd':
			kind = 'D'
		case r == 'Y' || r == 'y':
			kind = 'Y'
		case !strings.ContainsRune(allowedFormatChars, r):
			return nil, false
		}

		if n := len(tokens); n > 0 && tokens[n-1].kind == kind && kind != 'L' {
			tokens[n-1].text += string(r)
			continue
		}
		tokens = append(tokens, maskToken{kind: kind, text: string(r)})
	}

	counts := map[rune]int{}
	runs := map[rune]int{}
	for _, tok := range tokens {
		if tok.kind != 'L' {
			counts[tok.kind] += len(tok.text)
			runs[tok.kind]++
		}
	}

	// One contiguous run per token class.
	if runs['M'] > 1 || runs['D'] > 1 || runs['Y'] > 1 {
		return nil, false
	}
	if counts['M'] < 1 || counts['M'] > 2 {
		return nil, false
	}
	if counts['D'] > 2 {
		return nil, false
	}
	if c := counts['Y']; c != 0 && c != 2 && c != 4 {
		return nil, false
	}
	if counts['D'] == 0 && counts['Y'] == 0 {
		return nil, false
	}

	return tokens, true
}

// checkString matches the input against the mask run by run, then
// range-checks the extracted parts.
func (d *Date) checkString(input string) []Result {
	tokens, ok := maskTokens(d.InputFormat, d.AllowedFormatChars)
	if !ok {
		return d.fail("", CodeFormat, d.Messages.Format)
	}

	// Characters outside digits and the allowed separators fail before
	// any shape comparison.
	for _, r := range input {
		if !isDigit(r) && !strings.ContainsRune(d.AllowedFormatChars, r) {
			return d.fail("", CodeInvalidChar, d.Messages.InvalidChar)
		}
	}

	in := []rune(input)
	pos := 0
	var month, day, year string

	for _, tok := range tokens {
		if tok.kind == 'L' {
			for _, lit := range tok.text {
				if pos >= len(in) || in[pos] != lit {
					return d.wrongLength()
				}
				pos++
			}
			continue
		}

		minWidth, maxWidth := len(tok.text), len(tok.text)
		if minWidth == 1 {
			maxWidth = 2
		}

		start := pos
		for pos < len(in) && pos-start < maxWidth && isDigit(in[pos]) {
			pos++
		}
		if pos-start < minWidth {
			return d.wrongLength()
		}

		digits := string(in[start:pos])
		switch tok.kind {
		case 'M':
			month = digits
		case 'D':
			day = digits
		case 'Y':
			year = digits
		}
	}

	if pos != len(in) {
		return d.wrongLength()
	}

	return d.rangeCheck(month, day, year)
}

// rangeCheck applies the calendar rules to extracted string-mode parts.
// A mask without a day or year run checks only the parts it captured.
func (d *Date) rangeCheck(month, day, year string) []Result {
	m, _ := strconv.Atoi(month)
	if m < 1 || m > 12 {
		return d.fail("month", CodeWrongMonth, d.Messages.WrongMonth)
	}

	y := time.Now().Year()
	if year != "" {
		y, _ = strconv.Atoi(year)
		if y < 0 || y > 9999 {
			return d.fail("year", CodeWrongYear, d.Messages.WrongYear)
		}
	}

	if day != "" {
		dd, _ := strconv.Atoi(day)
		if dd < 1 || dd > daysInMonth(m, y) {
			return d.fail("day", CodeWrongDay, d.Messages.WrongDay)
		}
	}

	return []Result{pass("day"), pass("month"), pass("year")}
}

func (d *Date) fail(subField, code, override string) []Result {
	return []Result{fail(subField, code, d.message("date", code, override, d.placeholders()))}
}

func (d *Date) wrongLength() []Result {
	return d.fail("", CodeWrongLength, d.Messages.WrongLength)
}

func (d *Date) placeholders() map[string]string {
	return map[string]string{"format": d.InputFormat}
}

func daysInMonth(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// isLeapYear applies the Gregorian 4/100/400 rule.
func isLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}
