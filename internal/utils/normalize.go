// internal/utils/normalize.go
package utils

import (
	"regexp"
	"strings"
)

var (
	nonDigits        = regexp.MustCompile(`\D`)
	usernameIllegal  = regexp.MustCompile(`[^a-z0-9._-]`)
	usernameSpacing  = regexp.MustCompile(`\s+`)
	middleInitialRex = regexp.MustCompile(`[^a-zA-Z]`)
)

// NormalizePhilippinePhone canonicalizes a Philippine mobile number to
// +63XXXXXXXXXX form. It accepts 09XXXXXXXXX, 63XXXXXXXXXX, and bare
// 9XXXXXXXXX inputs; anything else returns ("", false).
func NormalizePhilippinePhone(input string) (string, bool) {
	if input == "" {
		return "", false
	}
	digits := nonDigits.ReplaceAllString(input, "")
	if strings.HasPrefix(digits, "0") {
		digits = digits[1:]
	}
	if strings.HasPrefix(digits, "63") {
		digits = digits[2:]
	}
	if len(digits) != 10 {
		return "", false
	}
	return "+63" + digits, true
}

// NormalizeUsername lowercases, replaces runs of whitespace with underscores,
// and strips characters outside [a-z0-9._-].
func NormalizeUsername(input string) string {
	cleaned := strings.ToLower(input)
	cleaned = usernameSpacing.ReplaceAllString(cleaned, "_")
	return usernameIllegal.ReplaceAllString(cleaned, "")
}

// FallbackUsername derives a username from name parts when the form left the
// username blank.
func FallbackUsername(firstname, middlename, lastname string) string {
	name := firstname
	if middlename != "" {
		name += " " + middlename + "."
	}
	name += " " + lastname
	return NormalizeUsername(strings.TrimSpace(name))
}

// MiddleInitial reduces a middle name to a single uppercase letter.
func MiddleInitial(input string) string {
	letters := middleInitialRex.ReplaceAllString(input, "")
	if letters == "" {
		return ""
	}
	return strings.ToUpper(letters[:1])
}
