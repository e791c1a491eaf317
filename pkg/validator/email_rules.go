package validator

import (
	"net/mail"
	"strings"
)

// ValidEmail validates an address the way a contact form expects it:
// a bare address (no display name) with a dotted domain.
func ValidEmail(field, value string) Rule {
	return newRule(field, "validation.email", "must be a valid email address",
		func() bool { return IsEmail(value) }, nil)
}

// IsEmail reports whether value is a syntactically valid email address.
func IsEmail(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
