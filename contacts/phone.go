package contacts

import (
	"strings"
	"unicode"
)

// NormalizePhone reduces one raw phone token to a standardized Indian
// mobile number. All non-digit characters are stripped, then the country
// prefix "91" (12 digits total) or the trunk prefix "0" (11 digits total)
// is removed. The result must be exactly 10 digits starting with 6-9.
// Returns "" when the token does not contain a valid number.
// Example: "+91-98765 43210" -> "9876543210"
func NormalizePhone(raw string) string {
	digits := keepDigits(raw)

	if len(digits) == 12 && strings.HasPrefix(digits, "91") {
		digits = digits[2:]
	}
	if len(digits) == 11 && strings.HasPrefix(digits, "0") {
		digits = digits[1:]
	}

	if !IsValidMobile(digits) {
		return ""
	}
	return digits
}

// IsValidMobile reports whether s is already a standardized number:
// exactly 10 digits with the first digit in 6-9.
func IsValidMobile(s string) bool {
	if len(s) != 10 {
		return false
	}
	if s[0] < '6' || s[0] > '9' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// SplitPhoneCell splits a raw phone cell into candidate tokens. Cells
// exported from other tools often pack several numbers into one field, so
// any run of commas, semicolons, pipes, newlines or whitespace separates
// tokens.
func SplitPhoneCell(cell string) []string {
	return strings.FieldsFunc(cell, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || unicode.IsSpace(r)
	})
}

// ExtractPhones normalizes every candidate token in a phone cell. It
// returns the valid standardized numbers in cell order plus the total
// number of tokens examined; tokens that fail normalization are dropped
// without being reported.
func ExtractPhones(cell string) (valid []string, candidates int) {
	tokens := SplitPhoneCell(cell)
	for _, token := range tokens {
		if phone := NormalizePhone(token); phone != "" {
			valid = append(valid, phone)
		}
	}
	return valid, len(tokens)
}

// keepDigits returns only the decimal digit characters of s.
func keepDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
