package fieldval

import "errors"

// Configuration errors. These indicate programmer mistakes and are returned
// from Validate as hard errors; they are never folded into an Outcome.
var (
	// ErrStringSource is returned when a primitive string is bound as the
	// value source where a structured object is required.
	ErrStringSource = errors.New("fieldval: value source must be a structured object, not a string")

	// ErrMissingSource is returned when a property path is configured
	// without a bound source object.
	ErrMissingSource = errors.New("fieldval: property is configured but no source is bound")

	// ErrMissingProperty is returned when a source object is bound without
	// a property path.
	ErrMissingProperty = errors.New("fieldval: source is bound but no property is configured")

	// ErrInvalidFormatChars is returned when an allowed-format-characters
	// set contains digits or characters reserved by the validator.
	ErrInvalidFormatChars = errors.New("fieldval: format characters contain digits or reserved characters")

	// ErrInvalidDomain is returned when a domain selector holds a value
	// outside its closed set.
	ErrInvalidDomain = errors.New("fieldval: invalid domain configuration")

	// ErrInvalidExpression is returned when a configured pattern does not
	// compile.
	ErrInvalidExpression = errors.New("fieldval: invalid regular expression")
)
