package messages

import (
	"sort"
	"strings"
)

// defaults maps every failure code to its documented default message.
var defaults = map[string]string{
	// Core lifecycle.
	"requiredField": "This field is required.",

	// Credit card.
	"noType":        "No credit card type is specified or the type is not valid.",
	"wrongType":     "Incorrect card type is specified.",
	"noNum":         "No credit card number is specified.",
	"invalidNumber": "The credit card number is invalid.",

	// Shared by several validators.
	"invalidChar": "The input contains invalid characters.",
	"wrongLength": "The input has the wrong length.",

	// Date.
	"format":     "Configuration error: incorrect formatting string.",
	"wrongMonth": "Enter a month between 1 and 12.",
	"wrongDay":   "Enter a valid day for the month.",
	"wrongYear":  "Enter a year between 0 and 9999.",

	// Currency and number.
	"invalidFormatChars": "One of the formatting parameters is invalid.",
	"negative":           "The amount may not be negative.",
	"currencySymbol":     "The currency symbol occurs in an invalid location.",
	"decimalPointCount":  "The decimal separator can occur only once.",
	"precision":          "The amount entered has too many digits beyond the decimal point.",
	"integer":            "The number must be an integer.",
	"separation":         "The thousands separator must be followed by three digits.",
	"lowerThanMin":       "The amount entered is too small.",
	"exceedsMax":         "The amount entered is too large.",

	// Email.
	"missingAtSign":          "An at sign (@) is missing in your e-mail address.",
	"tooManyAtSigns":         "Your e-mail address contains too many @ characters.",
	"missingUsername":        "The username in your e-mail address is missing.",
	"missingPeriodInDomain":  "The domain in your e-mail address is missing a period.",
	"invalidPeriodsInDomain": "The domain in your e-mail address has consecutive periods.",
	"invalidDomain":          "The domain in your e-mail address is incorrectly formatted.",
	"invalidIPDomain":        "The IP domain in your e-mail address is incorrectly formatted.",

	// Postal code.
	"wrongCAFormat": "The Canadian postal code must be formatted 'A1B 2C3'.",
	"wrongUSFormat": "The ZIP+4 code must be formatted '12345-6789'.",

	// Social security number.
	"wrongSSNFormat": "The Social Security number must be 9 digits or in the form NNN-NN-NNNN.",
	"zeroStart":      "Invalid Social Security number; the number cannot start with 000.",

	// String length.
	"tooShort": "This string is shorter than the minimum allowed length. This must be at least {min} characters long.",
	"tooLong":  "This string is longer than the maximum allowed length. This must be less than {max} characters long.",

	// Pattern.
	"noMatch":      "The field is invalid.",
	"noExpression": "The expression is missing.",

	// Validator-scoped wordings shadowing the shared codes above.
	"creditCard.invalidChar": "Invalid characters in your credit card number. (Enter numbers only.)",
	"creditCard.wrongLength": "Your credit card number contains the wrong number of digits.",
	"date.invalidChar":       "The date contains invalid characters.",
	"date.wrongLength":       "Type the date in the format {format}.",
	"email.invalidChar":      "Your e-mail address contains invalid characters.",
	"phone.invalidChar":      "Your telephone number contains invalid characters.",
	"phone.wrongLength":      "Your telephone number must contain at least {min} digits.",
	"ssn.invalidChar":        "You entered invalid characters in your Social Security number.",
	"zip.invalidChar":        "The ZIP code contains invalid characters.",
	"zip.wrongLength":        "The ZIP code must be 5 digits or 5+4 digits.",
}

// Default returns the documented default message for code, or an empty
// string for an unknown code.
func Default(code string) string {
	return defaults[code]
}

// Codes returns every known failure code in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(defaults))
	for code := range defaults {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Expand substitutes "{name}" placeholders in msg with the given values.
// Placeholders absent from msg are ignored, so overridden messages without
// placeholders pass through untouched.
func Expand(msg string, values map[string]string) string {
	for name, value := range values {
		msg = strings.ReplaceAll(msg, "{"+name+"}", value)
	}
	return msg
}
