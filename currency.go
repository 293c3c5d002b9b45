package fieldval

import "math"

// CurrencyMessages overrides the default failure messages per code. Empty
// fields keep the defaults.
type CurrencyMessages struct {
	InvalidFormatChars string
	InvalidChar        string
	Negative           string
	CurrencySymbol     string
	DecimalPointCount  string
	Precision          string
	Separation         string
	LowerThanMin       string
	ExceedsMax         string
}

// Currency validates monetary amounts: optional currency symbol with an
// alignment policy, locale-configurable separators, optional negative
// notation (leading minus or wrapping parentheses), thousands grouping,
// decimal precision, and value bounds.
type Currency struct {
	Localizer

	// DecimalSeparator, ThousandsSeparator, and CurrencySymbol must each
	// be a single, mutually distinct, non-digit character.
	DecimalSeparator   string
	ThousandsSeparator string
	CurrencySymbol     string

	// AlignSymbol constrains which side of the amount the symbol may
	// appear on.
	AlignSymbol Align

	// AllowNegative accepts leading-minus and parenthesized amounts.
	AllowNegative bool

	// Precision caps the digits after the decimal separator; negative
	// means unbounded.
	Precision int

	// MinValue and MaxValue bound the parsed amount when not NaN.
	MinValue float64
	MaxValue float64

	Messages CurrencyMessages
}

// NewCurrency creates a checker with US-style defaults: "." decimal, ","
// thousands, "$" aligned left, negatives allowed, two decimal digits, no
// bounds.
func NewCurrency() *Currency {
	return &Currency{
		DecimalSeparator:   ".",
		ThousandsSeparator: ",",
		CurrencySymbol:     "$",
		AlignSymbol:        AlignLeft,
		AllowNegative:      true,
		Precision:          2,
		MinValue:           math.NaN(),
		MaxValue:           math.NaN(),
	}
}

// SubFields returns nil; currency amounts have no subfields.
func (c *Currency) SubFields() []string { return nil }

// Check tokenizes the string form of value. The first failing step wins.
func (c *Currency) Check(value any) ([]Result, error) {
	spec := numericSpec{
		decimalSep:    c.DecimalSeparator,
		thousandsSep:  c.ThousandsSeparator,
		symbol:        c.CurrencySymbol,
		align:         c.AlignSymbol,
		allowNegative: c.AllowNegative,
		precision:     c.Precision,
		currency:      true,
		minValue:      c.MinValue,
		maxValue:      c.MaxValue,
	}

	if !validNumericFormat(spec) {
		code := CodeInvalidFormatChars
		return []Result{fail("", code, c.message("currency", code, c.Messages.InvalidFormatChars, nil))}, nil
	}

	code := checkNumeric(spec, stringify(value))
	if code == "" {
		return nil, nil
	}
	return []Result{fail("", code, c.message("currency", code, c.override(code), nil))}, nil
}

func (c *Currency) override(code string) string {
	switch code {
	case CodeInvalidChar:
		return c.Messages.InvalidChar
	case CodeNegative:
		return c.Messages.Negative
	case CodeCurrencySymbol:
		return c.Messages.CurrencySymbol
	case CodeDecimalPointCount:
		return c.Messages.DecimalPointCount
	case CodePrecision:
		return c.Messages.Precision
	case CodeSeparation:
		return c.Messages.Separation
	case CodeLowerThanMin:
		return c.Messages.LowerThanMin
	case CodeExceedsMax:
		return c.Messages.ExceedsMax
	default:
		return ""
	}
}
