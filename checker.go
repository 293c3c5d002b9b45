package fieldval

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/fieldval/pkg/messages"
)

// Checker is the algorithm for one validation domain. Check examines a
// value and returns zero or more results; the error return is reserved for
// configuration mistakes (bad format-character sets, invalid domain
// selectors) and is never used for data-dependent failures.
//
// SubFields declares the ordered set of subfields the checker reports on.
// The Validator synthesizes a non-error placeholder for every declared
// subfield missing from a failing check, so composite validators always
// report exactly one entry per subfield. Checkers without subfields return
// nil.
type Checker interface {
	Check(value any) ([]Result, error)
	SubFields() []string
}

// validResultKeeper marks checkers whose results carry metadata worth
// surfacing even when nothing failed. Only the Pattern checker does this.
type validResultKeeper interface {
	keepsValidResults() bool
}

// Localizer resolves failure codes to messages. Checkers embed it; leave
// Catalog nil to use the built-in defaults.
type Localizer struct {
	Catalog *messages.Catalog
	Lang    string
}

// message resolves the text for a failure code: an explicit override wins,
// then the catalog (when configured), then the built-in defaults. Scoped
// entries ("date.invalidChar") shadow the plain code so validators can
// carry their own wording for shared codes. Setting an override back to ""
// restores the default; a message is never blank for a known code.
func (l Localizer) message(scope, code, override string, values map[string]string) string {
	msg := override
	if msg == "" && scope != "" {
		msg = l.lookup(scope + "." + code)
	}
	if msg == "" {
		msg = l.lookup(code)
	}
	if len(values) > 0 {
		msg = messages.Expand(msg, values)
	}
	return msg
}

func (l Localizer) lookup(key string) string {
	if l.Catalog != nil {
		return l.Catalog.Lookup(l.Lang, key)
	}
	return messages.Default(key)
}

// stringify renders a value the way the required-field check and the
// string-based checkers see it. Nil renders as the empty string.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// containsDigit reports whether a format-character set illegally includes a
// digit.
func containsDigit(s string) bool {
	return strings.ContainsFunc(s, isDigit)
}

// stripChars removes every rune in cutset from s.
func stripChars(s, cutset string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !strings.ContainsRune(cutset, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// digitsOf removes every non-digit rune from s.
func digitsOf(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
