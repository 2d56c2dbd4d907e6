package auth

import (
	"unicode"

	apperrors "servicematch/internal/errors"
)

const minPasswordLength = 8

// ValidatePasswordStrength applies the registration password rules: at least
// eight characters and not entirely numeric.
func ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return apperrors.ErrWeakPassword
	}
	allDigits := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return apperrors.ErrWeakPassword
	}
	return nil
}
