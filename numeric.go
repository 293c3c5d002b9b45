package fieldval

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Align positions the currency symbol relative to the amount.
type Align int

const (
	// AlignLeft requires the symbol before the amount.
	AlignLeft Align = iota
	// AlignRight requires the symbol after the amount.
	AlignRight
	// AlignAny accepts either side.
	AlignAny
)

// numericSpec parameterizes the tokenizer shared by the Currency and
// Number checkers.
type numericSpec struct {
	decimalSep   string
	thousandsSep string
	symbol       string // empty for plain numbers
	align        Align
	allowNegative bool
	precision    int // -1 means unbounded
	integerOnly  bool
	currency     bool
	minValue     float64 // NaN when unbounded
	maxValue     float64
}

// validNumericFormat verifies the formatting characters: single runes,
// mutually distinct, no digits, and none of the reserved negative-notation
// characters for their mode.
func validNumericFormat(spec numericSpec) bool {
	chars := []string{spec.decimalSep, spec.thousandsSep}
	if spec.currency {
		chars = append(chars, spec.symbol)
	}

	reserved := "-"
	if spec.currency {
		reserved = "-()"
	}

	seen := make(map[rune]bool, len(chars))
	for _, c := range chars {
		if utf8.RuneCountInString(c) != 1 {
			return false
		}
		r, _ := utf8.DecodeRuneInString(c)
		if isDigit(r) || strings.ContainsRune(reserved, r) || seen[r] {
			return false
		}
		seen[r] = true
	}
	return true
}

// checkNumeric tokenizes input against spec and returns the first failing
// code, or "" when the input is a well-formed amount within bounds. The
// formatting characters must already have passed validNumericFormat.
func checkNumeric(spec numericSpec, input string) string {
	r := []rune(input)

	neg := false
	if len(r) > 0 && r[0] == '-' {
		neg = true
		r = r[1:]
	}
	if spec.currency && !neg && len(r) > 0 && r[0] == '(' {
		if len(r) < 3 || r[len(r)-1] != ')' {
			return CodeInvalidChar
		}
		neg = true
		r = r[1 : len(r)-1]
	}
	if len(r) == 0 {
		return CodeInvalidChar
	}
	if neg && !spec.allowNegative {
		return CodeNegative
	}

	decSep, _ := utf8.DecodeRuneInString(spec.decimalSep)
	thouSep, _ := utf8.DecodeRuneInString(spec.thousandsSep)

	if spec.currency {
		if code := stripCurrencySymbol(&r, spec); code != "" {
			return code
		}
		if len(r) == 0 {
			return CodeInvalidChar
		}
	}

	for _, c := range r {
		if !isDigit(c) && c != decSep && c != thouSep {
			return CodeInvalidChar
		}
	}

	decCount, decIdx := 0, -1
	for i, c := range r {
		if c == decSep {
			decCount++
			decIdx = i
		}
	}
	if decCount > 1 {
		return CodeDecimalPointCount
	}

	intPart, fracPart := r, []rune(nil)
	if decCount == 1 {
		intPart, fracPart = r[:decIdx], r[decIdx+1:]
	}

	for _, c := range fracPart {
		if !isDigit(c) {
			return CodeInvalidChar
		}
	}
	if spec.precision >= 0 && len(fracPart) > spec.precision {
		return CodePrecision
	}
	if spec.integerOnly {
		for _, c := range fracPart {
			if c != '0' {
				return CodeInteger
			}
		}
	}

	if !isDigit(r[0]) && r[0] != decSep {
		return CodeInvalidChar
	}

	// Every separator-delimited group after the first must be exactly
	// three digits.
	groups := strings.Split(string(intPart), string(thouSep))
	for _, g := range groups[1:] {
		if utf8.RuneCountInString(g) != 3 {
			return CodeSeparation
		}
	}

	if math.IsNaN(spec.minValue) && math.IsNaN(spec.maxValue) {
		return ""
	}

	numStr := strings.ReplaceAll(string(intPart), string(thouSep), "") + "." + string(fracPart)
	val, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return CodeInvalidChar
	}
	if neg {
		val = -val
	}
	if !math.IsNaN(spec.minValue) && val < spec.minValue {
		return CodeLowerThanMin
	}
	if !math.IsNaN(spec.maxValue) && val > spec.maxValue {
		return CodeExceedsMax
	}
	return ""
}

// stripCurrencySymbol enforces occurrence and alignment of the currency
// symbol and removes it from r in place.
func stripCurrencySymbol(r *[]rune, spec numericSpec) string {
	if spec.symbol == "" {
		return ""
	}
	sym, _ := utf8.DecodeRuneInString(spec.symbol)

	count := 0
	for _, c := range *r {
		if c == sym {
			count++
		}
	}
	switch count {
	case 0:
		return ""
	case 1:
		// handled below
	default:
		return CodeCurrencySymbol
	}

	runes := *r
	switch {
	case runes[0] == sym:
		if spec.align == AlignRight {
			return CodeCurrencySymbol
		}
		*r = runes[1:]
	case runes[len(runes)-1] == sym:
		if spec.align == AlignLeft {
			return CodeCurrencySymbol
		}
		*r = runes[:len(runes)-1]
	default:
		return CodeCurrencySymbol
	}
	return ""
}
