package validation

import (
	"regexp"
	"strings"
)

// emailPattern matches local@domain.tld: no whitespace or @ inside the
// local part or either domain segment, and at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether the trimmed, lowercased input looks like
// an email address. Non-string input is rejected.
func ValidateEmail(email any) bool {
	s, ok := email.(string)
	if !ok {
		return false
	}
	return emailPattern.MatchString(strings.ToLower(strings.TrimSpace(s)))
}

// ValidatePassword reports whether the input is a string of 8 to 72 bytes
// containing at least one ASCII letter and at least one digit. No other
// character classes are required.
func ValidatePassword(password any) bool {
	s, ok := password.(string)
	if !ok {
		return false
	}
	if len(s) < 8 || len(s) > 72 {
		return false
	}
	var hasLetter, hasDigit bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			hasLetter = true
		case c >= '0' && c <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// NormalizeEmail returns the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
