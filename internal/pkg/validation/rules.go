package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// EmailPattern matches the email formats accepted at registration.
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// MobileNumberPattern matches a 10-digit mobile number.
	MobileNumberPattern = `^\d{10}$`

	// PasswordMinLength is the minimum accepted password length.
	PasswordMinLength = 6
)

// CompiledPatterns caches compiled regex patterns.
var CompiledPatterns = struct {
	Email        *regexp.Regexp
	MobileNumber *regexp.Regexp
}{
	Email:        regexp.MustCompile(EmailPattern),
	MobileNumber: regexp.MustCompile(MobileNumberPattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidMobileNumber reports whether the value is a 10-digit mobile number.
// Empty values are allowed; the profile is filled in incrementally.
func IsValidMobileNumber(value string) bool {
	if value == "" {
		return true
	}
	return CompiledPatterns.MobileNumber.MatchString(value)
}
