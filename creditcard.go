package fieldval

import (
	"strings"

	"github.com/dmitrymomot/fieldval/pkg/lookup"
)

// Card brands understood by the credit card checker.
const (
	CardMasterCard      = "MasterCard"
	CardVisa            = "Visa"
	CardAmericanExpress = "American Express"
	CardDinersClub      = "Diners Club"
	CardDiscover        = "Discover"
)

// CardInput is the composite value the credit card checker validates. Maps
// and lookup.Getter implementations exposing "cardType" and "cardNumber"
// keys are accepted as well.
type CardInput struct {
	CardType   string
	CardNumber string
}

// CreditCardMessages overrides the default failure messages per code.
// Empty fields keep the defaults.
type CreditCardMessages struct {
	NoType        string
	WrongType     string
	NoNum         string
	InvalidChar   string
	WrongLength   string
	InvalidNumber string
}

// CreditCard validates card type and number pairs: brand membership, the
// per-brand length and prefix tables, and the Luhn checksum.
type CreditCard struct {
	Localizer

	// AllowedFormatChars may appear between digits in the card number.
	// Must not contain digits.
	AllowedFormatChars string

	Messages CreditCardMessages
}

// NewCreditCard creates a checker with the default format characters
// (space and hyphen).
func NewCreditCard() *CreditCard {
	return &CreditCard{AllowedFormatChars: " -"}
}

// SubFields returns the declared subfield set.
func (c *CreditCard) SubFields() []string {
	return []string{"cardNumber", "cardType"}
}

type cardBrand struct {
	lengths  []int
	prefixes []string
}

var cardBrands = map[string]cardBrand{
	CardVisa:            {lengths: []int{13, 16}, prefixes: []string{"4"}},
	CardMasterCard:      {lengths: []int{16}, prefixes: []string{"51", "52", "53", "54", "55"}},
	CardAmericanExpress: {lengths: []int{15}, prefixes: []string{"34", "37"}},
	CardDiscover:        {lengths: []int{16}, prefixes: []string{"6011"}},
	CardDinersClub:      {lengths: []int{14}, prefixes: []string{"300", "301", "302", "303", "304", "305", "36", "38"}},
}

// Check validates a CardInput (or equivalent structured value). The first
// failing category wins; format, length, and prefix checks all run before
// the checksum.
func (c *CreditCard) Check(value any) ([]Result, error) {
	if containsDigit(c.AllowedFormatChars) {
		return nil, ErrInvalidFormatChars
	}

	cardType, cardNumber := cardFields(value)

	if strings.Trim(cardType, " ") == "" {
		return c.fail("cardType", CodeNoType, c.Messages.NoType), nil
	}
	brand, known := cardBrands[cardType]
	if !known {
		return c.fail("cardType", CodeWrongType, c.Messages.WrongType), nil
	}
	if strings.Trim(cardNumber, " ") == "" {
		return c.fail("cardNumber", CodeNoNum, c.Messages.NoNum), nil
	}

	for _, r := range cardNumber {
		if !isDigit(r) && !strings.ContainsRune(c.AllowedFormatChars, r) {
			return c.fail("cardNumber", CodeInvalidChar, c.Messages.InvalidChar), nil
		}
	}

	digits := digitsOf(cardNumber)

	// Interchange rule: Diners Club numbers led by 5 are MasterCard.
	if cardType == CardDinersClub && strings.HasPrefix(digits, "5") {
		brand = cardBrands[CardMasterCard]
	}

	lengthOK := false
	for _, l := range brand.lengths {
		if len(digits) == l {
			lengthOK = true
			break
		}
	}
	if !lengthOK {
		return c.fail("cardNumber", CodeWrongLength, c.Messages.WrongLength), nil
	}

	prefixOK := false
	for _, p := range brand.prefixes {
		if strings.HasPrefix(digits, p) {
			prefixOK = true
			break
		}
	}
	if !prefixOK {
		return c.fail("cardNumber", CodeInvalidNumber, c.Messages.InvalidNumber), nil
	}

	if !luhn(digits) {
		return c.fail("cardNumber", CodeInvalidNumber, c.Messages.InvalidNumber), nil
	}

	return []Result{pass("cardNumber"), pass("cardType")}, nil
}

func (c *CreditCard) fail(subField, code, override string) []Result {
	return []Result{fail(subField, code, c.message("creditCard", code, override, nil))}
}

// luhn verifies the modulo-10 checksum over a canonical digit string,
// doubling every second digit right to left and collapsing the carry.
func luhn(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// cardFields pulls the type and number out of any supported input shape.
func cardFields(value any) (cardType, cardNumber string) {
	switch v := value.(type) {
	case CardInput:
		return v.CardType, v.CardNumber
	case *CardInput:
		if v == nil {
			return "", ""
		}
		return v.CardType, v.CardNumber
	default:
		t, _ := lookup.Resolve(value, "cardType")
		n, _ := lookup.Resolve(value, "cardNumber")
		return stringify(t), stringify(n)
	}
}
