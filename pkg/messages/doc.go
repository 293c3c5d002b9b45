// Package messages owns the human-readable text behind every validation
// failure code.
//
// Each machine code (for example "requiredField" or "wrongMonth") has a
// documented default message returned by Default. A Catalog layers
// per-language overrides on top of the defaults, loaded from YAML documents
// shaped as language -> code -> message:
//
//	en:
//	  requiredField: "This field is required."
//	de:
//	  requiredField: "Dieses Feld ist erforderlich."
//
// Lookup resolves a requested language with BCP 47 matching (so "en-US"
// finds "en") and falls back to the catalog's default language and finally
// to the built-in default, which means a lookup never returns an empty
// message for a known code.
//
// Some messages carry value placeholders in braces, e.g. "{min}" or
// "{format}". Expand substitutes them; placeholders a message does not
// mention are simply left out, so user overrides without placeholders stay
// intact.
package messages
