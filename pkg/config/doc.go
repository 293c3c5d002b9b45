// Package config loads configuration structs from environment variables,
// with optional .env file support for local development.
//
// Fields are annotated with `env` tags understood by caarlos0/env:
//
//	type Locale struct {
//		DecimalSeparator string `env:"FIELDVAL_DECIMAL_SEPARATOR" envDefault:"."`
//		Language         string `env:"FIELDVAL_LANG" envDefault:"en"`
//	}
//
//	var locale Locale
//	if err := config.Load(&locale); err != nil {
//		// handle error
//	}
//
// The first Load in a process attempts to read a .env file from the working
// directory; a missing file is not an error.
package config
