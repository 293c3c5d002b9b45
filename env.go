package fieldval

import "github.com/dmitrymomot/fieldval/pkg/config"

// LocaleDefaults are the environment-configurable locale settings applied
// by the *FromEnv constructors. They let a deployment switch separators,
// currency symbol, date mask, and message language without code changes.
type LocaleDefaults struct {
	DecimalSeparator   string `env:"FIELDVAL_DECIMAL_SEPARATOR" envDefault:"."`
	ThousandsSeparator string `env:"FIELDVAL_THOUSANDS_SEPARATOR" envDefault:","`
	CurrencySymbol     string `env:"FIELDVAL_CURRENCY_SYMBOL" envDefault:"$"`
	DateFormat         string `env:"FIELDVAL_DATE_FORMAT" envDefault:"MM/DD/YYYY"`
	Language           string `env:"FIELDVAL_LANG" envDefault:"en"`
}

// LoadLocaleDefaults reads the locale settings from the environment.
func LoadLocaleDefaults() (LocaleDefaults, error) {
	var d LocaleDefaults
	if err := config.Load(&d); err != nil {
		return LocaleDefaults{}, err
	}
	return d, nil
}

// NewCurrencyFromEnv creates a currency checker with separators and symbol
// taken from the environment.
func NewCurrencyFromEnv() (*Currency, error) {
	d, err := LoadLocaleDefaults()
	if err != nil {
		return nil, err
	}
	c := NewCurrency()
	c.DecimalSeparator = d.DecimalSeparator
	c.ThousandsSeparator = d.ThousandsSeparator
	c.CurrencySymbol = d.CurrencySymbol
	c.Lang = d.Language
	return c, nil
}

// NewNumberFromEnv creates a number checker with separators taken from the
// environment.
func NewNumberFromEnv() (*Number, error) {
	d, err := LoadLocaleDefaults()
	if err != nil {
		return nil, err
	}
	n := NewNumber()
	n.DecimalSeparator = d.DecimalSeparator
	n.ThousandsSeparator = d.ThousandsSeparator
	n.Lang = d.Language
	return n, nil
}

// NewDateFromEnv creates a date checker with the input format taken from
// the environment.
func NewDateFromEnv() (*Date, error) {
	d, err := LoadLocaleDefaults()
	if err != nil {
		return nil, err
	}
	dt := NewDate()
	dt.InputFormat = d.DateFormat
	dt.Lang = d.Language
	return dt, nil
}
