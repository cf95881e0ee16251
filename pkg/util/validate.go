package util

import (
	"regexp"
	"strconv"
	"time"
)

var (
	phonePattern      = regexp.MustCompile(`^\d{10}$`)
	emailPattern      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[A-Za-z]{2,}$`)
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
	expirationPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/(\d{4})$`)
)

// IsValidPhone reports whether phone is exactly 10 digits, no separators.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsValidEmail reports whether email looks like local@domain.tld with a
// dot-separated suffix of at least 2 letters.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidCardNumber reports whether number is exactly 16 digits.
func IsValidCardNumber(number string) bool {
	return cardNumberPattern.MatchString(number)
}

// IsValidCVV reports whether cvv is 3 or 4 digits.
func IsValidCVV(cvv string) bool {
	return cvvPattern.MatchString(cvv)
}

// ParseExpiration parses an MM/YYYY card expiration. ok is false when the
// format is wrong or the month is outside 01-12.
func ParseExpiration(exp string) (month, year int, ok bool) {
	m := expirationPattern.FindStringSubmatch(exp)
	if m == nil {
		return 0, 0, false
	}
	month, _ = strconv.Atoi(m[1])
	year, _ = strconv.Atoi(m[2])
	return month, year, true
}

// IsExpired reports whether the expiration month is strictly before now.
// A card expiring in the current month is still valid.
func IsExpired(month, year int, now time.Time) bool {
	if year != now.Year() {
		return year < now.Year()
	}
	return month < int(now.Month())
}
