// Package validation holds the request checks applied before any mutation is
// committed. The checks are pure so they can be tested without HTTP or a
// database.
package validation

import (
	"errors"
	"strings"
)

var (
	ErrFirstNameRequired = errors.New("first name required")
	ErrLastNameRequired  = errors.New("last name required")
	ErrEmailRequired     = errors.New("email required")
	ErrEmailExists       = errors.New("email already exists")
	// The legacy rule text said "6 digits", but the pattern it shipped with
	// only requires 6 characters total plus one uppercase and one digit.
	// The pattern is what users were actually held to, so the message
	// describes the pattern.
	ErrPasswordPolicy = errors.New("password must be at least 6 characters long, contain an uppercase letter and a digit, and use only letters and digits")

	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)

// IsViolation distinguishes a rule rejection from an infrastructure error
// surfaced by a rule's lookup, so handlers can map the former to 400 and let
// the latter fall through as a server failure.
func IsViolation(err error) bool {
	for _, rule := range []error{
		ErrFirstNameRequired,
		ErrLastNameRequired,
		ErrEmailRequired,
		ErrEmailExists,
		ErrPasswordPolicy,
		ErrRatingOutOfRange,
	} {
		if errors.Is(err, rule) {
			return true
		}
	}
	return false
}

// NewUser checks a user-creation payload. Rules run in a fixed order and stop
// at the first failure. emailTaken reports whether the address is already in
// use and runs after the field checks.
func NewUser(firstName, lastName, email, password string, emailTaken func(string) (bool, error)) error {
	if strings.TrimSpace(firstName) == "" {
		return ErrFirstNameRequired
	}
	if strings.TrimSpace(lastName) == "" {
		return ErrLastNameRequired
	}
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if !ValidPassword(password) {
		return ErrPasswordPolicy
	}
	taken, err := emailTaken(email)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailExists
	}
	return nil
}

// ValidPassword reports whether the password meets the policy: at least six
// characters, at least one uppercase letter, at least one digit, letters and
// digits only.
func ValidPassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	var upper, digit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			digit = true
		default:
			return false
		}
	}
	return upper && digit
}

// Rating checks the bounds applied on the review-update path. Book creation
// intentionally skips this check.
func Rating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrRatingOutOfRange
	}
	return nil
}
