package contacts

import "regexp"

// emailPattern accepts the usual local@domain.tld shape. Deliverability
// is not checked; this only rejects values that cannot be an address.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
