package utils

import (
	"unicode"
	"unicode/utf8"

	"github.com/rlozl15/pypost/internal/apperrors"
)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 8

// commonPasswords are rejected outright regardless of length
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwerty123":   {},
	"qwertyuiop":  {},
	"iloveyou":    {},
	"admin123":    {},
	"letmein1":    {},
	"welcome1":    {},
}

// ValidatePassword applies the registration password policy: minimum length,
// not entirely numeric, not a common password, not equal to the username.
func ValidatePassword(password, username string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return apperrors.NewValidation("password", "this password is too short, it must contain at least 8 characters")
	}

	numeric := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			numeric = false
			break
		}
	}
	if numeric {
		return apperrors.NewValidation("password", "this password is entirely numeric")
	}

	if _, ok := commonPasswords[password]; ok {
		return apperrors.NewValidation("password", "this password is too common")
	}

	if username != "" && password == username {
		return apperrors.NewValidation("password", "the password is too similar to the username")
	}

	return nil
}
