package fieldval

import (
	"strconv"
	"strings"
)

// EmailMessages overrides the default failure messages per code. Empty
// fields keep the defaults.
type EmailMessages struct {
	MissingAtSign          string
	TooManyAtSigns         string
	MissingUsername        string
	InvalidChar            string
	MissingPeriodInDomain  string
	InvalidPeriodsInDomain string
	InvalidDomain          string
	InvalidIPDomain        string
}

// Email validates e-mail addresses with a character-level grammar scan: a
// single @, a clean local part, and either a well-formed domain name or a
// bracketed IPv4/IPv6 literal.
type Email struct {
	Localizer

	Messages EmailMessages
}

// NewEmail creates an e-mail checker.
func NewEmail() *Email {
	return &Email{}
}

// SubFields returns nil; addresses have no subfields.
func (e *Email) SubFields() []string { return nil }

const (
	disallowedLocalChars  = "()<>,;:\\\"[] `~!#$%^&*=+{}|/?'"
	disallowedDomainChars = "()<>,;:\\\"[] `~!#$%^&*=+{}|/?'_"
)

// Check scans the string form of value. The first failing rule wins.
func (e *Email) Check(value any) ([]Result, error) {
	input := stringify(value)

	switch strings.Count(input, "@") {
	case 1:
	case 0:
		return e.fail(CodeMissingAtSign, e.Messages.MissingAtSign), nil
	default:
		return e.fail(CodeTooManyAtSigns, e.Messages.TooManyAtSigns), nil
	}

	at := strings.Index(input, "@")
	local, domain := input[:at], input[at+1:]

	if local == "" {
		return e.fail(CodeMissingUsername, e.Messages.MissingUsername), nil
	}
	if strings.ContainsAny(local, disallowedLocalChars) || strings.HasPrefix(local, ".") {
		return e.fail(CodeInvalidChar, e.Messages.InvalidChar), nil
	}

	if strings.HasPrefix(domain, "[") && strings.HasSuffix(domain, "]") {
		literal := domain[1 : len(domain)-1]
		if !validIPv4(literal) && !validIPv6(literal) {
			return e.fail(CodeInvalidIPDomain, e.Messages.InvalidIPDomain), nil
		}
		return nil, nil
	}

	if !strings.Contains(domain, ".") {
		return e.fail(CodeMissingPeriodInDomain, e.Messages.MissingPeriodInDomain), nil
	}
	if strings.Contains(domain, "..") {
		return e.fail(CodeInvalidPeriodsInDomain, e.Messages.InvalidPeriodsInDomain), nil
	}
	if strings.ContainsAny(domain, disallowedDomainChars) {
		return e.fail(CodeInvalidChar, e.Messages.InvalidChar), nil
	}
	if strings.HasPrefix(domain, ".") || strings.HasPrefix(domain, "-") {
		return e.fail(CodeInvalidDomain, e.Messages.InvalidDomain), nil
	}
	// The label before the top-level segment must not end with a hyphen.
	if lastDot := strings.LastIndex(domain, "."); lastDot > 0 && domain[lastDot-1] == '-' {
		return e.fail(CodeInvalidDomain, e.Messages.InvalidDomain), nil
	}

	return nil, nil
}

func (e *Email) fail(code, override string) []Result {
	return []Result{fail("", code, e.message("email", code, override, nil))}
}

// validIPv4 accepts exactly four dot-separated decimal groups in 0-255.
func validIPv4(s string) bool {
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return false
	}
	for _, g := range groups {
		if g == "" || len(g) > 3 {
			return false
		}
		for _, r := range g {
			if !isDigit(r) {
				return false
			}
		}
		n, err := strconv.Atoi(g)
		if err != nil || n > 255 {
			return false
		}
	}
	return true
}

// validIPv6 accepts colon-separated hex groups with at most one "::"
// elision and an optional trailing embedded IPv4 literal. Without elision
// the address must have exactly eight groups, or seven when the last is an
// embedded IPv4 literal; in the embedded case every hex group must be
// zero.
func validIPv6(s string) bool {
	elided := false
	head, tail := s, ""
	if i := strings.Index(s, "::"); i >= 0 {
		if strings.Contains(s[i+2:], "::") {
			return false
		}
		elided = true
		head, tail = s[:i], s[i+2:]
	}

	var groups []string
	if head != "" {
		groups = strings.Split(head, ":")
	}
	if tail != "" {
		groups = append(groups, strings.Split(tail, ":")...)
	}
	if !elided && len(groups) == 0 {
		return false
	}

	embedded := false
	if n := len(groups); n > 0 && strings.Contains(groups[n-1], ".") {
		if !validIPv4(groups[n-1]) {
			return false
		}
		embedded = true
		groups = groups[:n-1]
	}

	if !elided {
		want := 8
		if embedded {
			want = 6
		}
		if len(groups) != want {
			return false
		}
	} else {
		limit := 7
		if embedded {
			limit = 5
		}
		if len(groups) > limit {
			return false
		}
	}

	for _, g := range groups {
		if g == "" || len(g) > 4 {
			return false
		}
		for _, r := range g {
			if !isHexDigit(r) {
				return false
			}
			if embedded && r != '0' {
				return false
			}
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
