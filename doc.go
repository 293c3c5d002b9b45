// Package fieldval validates form-field input against domain formats and
// produces structured, localizable reports of successes and failures.
//
// A Validator binds a value source (an explicit value, a pull function, or a
// dotted property path into structured data) to a Checker, the algorithm for
// one domain: credit card numbers, dates against a format mask, currency and
// plain numbers with configurable separators, e-mail addresses, US/Canadian
// postal codes, phone numbers, social security numbers, string length
// bounds, and regular expression patterns.
//
// Validation is a pure, synchronous computation. Each call produces an
// Outcome carrying a Valid or Invalid kind and an ordered list of Result
// entries; multi-subfield validators (credit card, date) report one entry
// per subfield so a form can mark the day field wrong while leaving month
// and year untouched.
//
// # Usage
//
//	cc := fieldval.NewCreditCard()
//	v := fieldval.New(cc, fieldval.WithField("card"))
//
//	outcome, err := v.Validate(fieldval.WithValue(fieldval.CardInput{
//		CardType:   fieldval.CardVisa,
//		CardNumber: "4111 1111 1111 1111",
//	}))
//	if err != nil {
//		// configuration mistake, not a validation failure
//	}
//	if outcome.Kind == fieldval.Invalid {
//		fmt.Println(outcome.Message())
//	}
//
// Validators can also pull values themselves and notify listeners: bind a
// Source and Property (resolved through pkg/lookup), register handlers with
// Subscribe, and optionally re-validate automatically whenever a bound
// trigger event fires (pkg/notifier.Bus implements the EventSource
// boundary). ValidateAll runs a batch and collects only the failures.
//
// # Error classes
//
// Configuration mistakes (a string bound as a value source, format
// characters containing digits, a half-configured source/property pair) are
// returned as hard errors from Validate. Data-dependent failures are never
// errors; they are Result entries with a stable machine code and a message
// that can be overridden per validator or localized through
// pkg/messages.Catalog.
package fieldval
