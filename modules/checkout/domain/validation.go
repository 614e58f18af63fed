package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinAddressLength is the shortest accepted delivery address, counted in
// characters after trimming surrounding whitespace.
const MinAddressLength = 10

// PhoneDigits is the number of digits in a normalized phone number,
// country code included.
const PhoneDigits = 11

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidAddress reports whether the trimmed address is long enough.
func ValidAddress(address string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(address)) >= MinAddressLength
}

// ValidEmail reports whether email has a local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidPhone reports whether phone normalizes to a full number.
func ValidPhone(phone string) bool {
	_, ok := NormalizePhone(phone)
	return ok
}

// NormalizePhone strips separators and returns the digits of phone.
// Spaces, dashes and parentheses are ignored and a single leading "+" is
// allowed. The result must have PhoneDigits digits and start with the
// country code 7, or with the trunk prefix 8 when written without "+".
func NormalizePhone(phone string) (string, bool) {
	s := strings.TrimSpace(phone)
	plus := strings.HasPrefix(s, "+")
	if plus {
		s = s[1:]
	}

	digits := make([]byte, 0, PhoneDigits)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits = append(digits, c)
		case c == ' ' || c == '-' || c == '(' || c == ')':
		default:
			return "", false
		}
	}

	if len(digits) != PhoneDigits {
		return "", false
	}
	switch digits[0] {
	case '7':
	case '8':
		if plus {
			return "", false
		}
	default:
		return "", false
	}
	return string(digits), true
}
