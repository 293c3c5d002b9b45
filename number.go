package fieldval

import "math"

// Number domains.
const (
	// DomainReal accepts any decimal fraction.
	DomainReal = "real"
	// DomainInt rejects non-zero digits after the decimal separator.
	DomainInt = "int"
)

// NumberMessages overrides the default failure messages per code. Empty
// fields keep the defaults.
type NumberMessages struct {
	InvalidFormatChars string
	InvalidChar        string
	Negative           string
	DecimalPointCount  string
	Precision          string
	Integer            string
	Separation         string
	LowerThanMin       string
	ExceedsMax         string
}

// Number validates plain numeric input with locale-configurable separators,
// optional negatives, thousands grouping, precision, an integer-only
// domain, and value bounds. It is the currency tokenizer without the symbol
// handling.
type Number struct {
	Localizer

	// DecimalSeparator and ThousandsSeparator must each be a single,
	// mutually distinct, non-digit character, and neither may be "-".
	DecimalSeparator   string
	ThousandsSeparator string

	// Domain is DomainReal or DomainInt.
	Domain string

	// AllowNegative accepts a leading minus.
	AllowNegative bool

	// Precision caps the digits after the decimal separator; negative
	// means unbounded.
	Precision int

	// MinValue and MaxValue bound the parsed number when not NaN.
	MinValue float64
	MaxValue float64

	Messages NumberMessages
}

// NewNumber creates a checker with "." decimal, "," thousands, real
// domain, negatives allowed, unbounded precision, and no bounds.
func NewNumber() *Number {
	return &Number{
		DecimalSeparator:   ".",
		ThousandsSeparator: ",",
		Domain:             DomainReal,
		AllowNegative:      true,
		Precision:          -1,
		MinValue:           math.NaN(),
		MaxValue:           math.NaN(),
	}
}

// SubFields returns nil; numbers have no subfields.
func (n *Number) SubFields() []string { return nil }

// Check tokenizes the string form of value. The first failing step wins.
// A Domain outside the closed set is a configuration error.
func (n *Number) Check(value any) ([]Result, error) {
	if n.Domain != DomainReal && n.Domain != DomainInt {
		return nil, ErrInvalidDomain
	}

	spec := numericSpec{
		decimalSep:    n.DecimalSeparator,
		thousandsSep:  n.ThousandsSeparator,
		allowNegative: n.AllowNegative,
		precision:     n.Precision,
		integerOnly:   n.Domain == DomainInt,
		minValue:      n.MinValue,
		maxValue:      n.MaxValue,
	}

	if !validNumericFormat(spec) {
		code := CodeInvalidFormatChars
		return []Result{fail("", code, n.message("number", code, n.Messages.InvalidFormatChars, nil))}, nil
	}

	code := checkNumeric(spec, stringify(value))
	if code == "" {
		return nil, nil
	}
	return []Result{fail("", code, n.message("number", code, n.override(code), nil))}, nil
}

func (n *Number) override(code string) string {
	switch code {
	case CodeInvalidChar:
		return n.Messages.InvalidChar
	case CodeNegative:
		return n.Messages.Negative
	case CodeDecimalPointCount:
		return n.Messages.DecimalPointCount
	case CodePrecision:
		return n.Messages.Precision
	case CodeInteger:
		return n.Messages.Integer
	case CodeSeparation:
		return n.Messages.Separation
	case CodeLowerThanMin:
		return n.Messages.LowerThanMin
	case CodeExceedsMax:
		return n.Messages.ExceedsMax
	default:
		return ""
	}
}
