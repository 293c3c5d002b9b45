package fieldval

// Machine-readable failure codes. Every code has a documented default
// message in pkg/messages and a corresponding override field on the checker
// that produces it.
const (
	CodeRequiredField = "requiredField"

	CodeNoType        = "noType"
	CodeWrongType     = "wrongType"
	CodeNoNum         = "noNum"
	CodeInvalidNumber = "invalidNumber"

	CodeInvalidChar = "invalidChar"
	CodeWrongLength = "wrongLength"

	CodeFormat     = "format"
	CodeWrongMonth = "wrongMonth"
	CodeWrongDay   = "wrongDay"
	CodeWrongYear  = "wrongYear"

	CodeInvalidFormatChars = "invalidFormatChars"
	CodeNegative           = "negative"
	CodeCurrencySymbol     = "currencySymbol"
	CodeDecimalPointCount  = "decimalPointCount"
	CodePrecision          = "precision"
	CodeInteger            = "integer"
	CodeSeparation         = "separation"
	CodeLowerThanMin       = "lowerThanMin"
	CodeExceedsMax         = "exceedsMax"

	CodeMissingAtSign          = "missingAtSign"
	CodeTooManyAtSigns         = "tooManyAtSigns"
	CodeMissingUsername        = "missingUsername"
	CodeMissingPeriodInDomain  = "missingPeriodInDomain"
	CodeInvalidPeriodsInDomain = "invalidPeriodsInDomain"
	CodeInvalidDomain          = "invalidDomain"
	CodeInvalidIPDomain        = "invalidIPDomain"

	CodeWrongCAFormat = "wrongCAFormat"
	CodeWrongUSFormat = "wrongUSFormat"

	CodeWrongSSNFormat = "wrongSSNFormat"
	CodeZeroStart      = "zeroStart"

	CodeTooShort = "tooShort"
	CodeTooLong  = "tooLong"

	CodeNoMatch      = "noMatch"
	CodeNoExpression = "noExpression"
)
