package impl

import (
	"regexp"
	"strings"

	domainerrors "lectern/internal/domain/errors"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 128
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// validateRegistration accumulates every violation instead of stopping at the
// first, so callers can fix a whole form in one round trip.
func validateRegistration(email, password string) domainerrors.ValidationErrors {
	var verrs domainerrors.ValidationErrors

	if strings.TrimSpace(email) == "" {
		verrs = append(verrs, domainerrors.ErrEmailBlank)
	} else if !emailPattern.MatchString(email) {
		verrs = append(verrs, domainerrors.ErrEmailInvalid)
	}

	// Length limits apply to the trimmed password; a blank one only reports
	// the blank violation.
	trimmed := strings.TrimSpace(password)
	switch {
	case trimmed == "":
		verrs = append(verrs, domainerrors.ErrPasswordBlank)
	case len(trimmed) > passwordMaxLength:
		verrs = append(verrs, domainerrors.ErrPasswordTooLong)
	case len(trimmed) < passwordMinLength:
		verrs = append(verrs, domainerrors.ErrPasswordTooShort)
	}

	return verrs
}

// validateSignIn checks sign-in inputs for presence only. Format and length
// rules apply at registration; a sign-in attempt is judged against the
// stored credentials, not re-validated.
func validateSignIn(email, password string) domainerrors.ValidationErrors {
	var verrs domainerrors.ValidationErrors

	if strings.TrimSpace(email) == "" {
		verrs = append(verrs, domainerrors.ErrEmailBlank)
	}
	if strings.TrimSpace(password) == "" {
		verrs = append(verrs, domainerrors.ErrPasswordBlank)
	}

	return verrs
}

// validateSessionRequest checks the input shape shared by the refresh and
// sign-out requests.
func validateSessionRequest(sessionUUID, refreshToken string) domainerrors.ValidationErrors {
	var verrs domainerrors.ValidationErrors

	if strings.TrimSpace(sessionUUID) == "" {
		verrs = append(verrs, domainerrors.ErrSessionUUIDBlank)
	}
	if strings.TrimSpace(refreshToken) == "" {
		verrs = append(verrs, domainerrors.ErrRefreshTokenBlank)
	}

	return verrs
}
