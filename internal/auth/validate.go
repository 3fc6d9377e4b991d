package auth

import (
	"regexp"

	apperrors "github.com/rubencm33/Practica-PokedexApi/pkg/errors"
)

var (
	emailPattern     = regexp.MustCompile(`^[\w.\-]+@[\w.\-]+\.\w+$`)
	uppercasePattern = regexp.MustCompile(`[A-Z]`)
	digitPattern     = regexp.MustCompile(`\d`)
)

// ValidEmail reports whether s has a local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePassword enforces minimum password strength: at least 8 characters,
// one uppercase letter and one digit.
func ValidatePassword(s string) error {
	if len(s) < 8 || !uppercasePattern.MatchString(s) || !digitPattern.MatchString(s) {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument,
			"insecure password: must have at least 8 characters, 1 uppercase letter and 1 digit", nil)
	}
	return nil
}
