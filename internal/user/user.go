// Package user provides the user identity domain model.
package user

import (
	"regexp"
	"strings"
	"time"

	apperrors "github.com/louisbranch/tfc.fitness/internal/platform/errors"
)

var (
	// ErrEmptyUsername indicates a missing username.
	ErrEmptyUsername = apperrors.New(apperrors.CodeInvalidArgument, "username is required")
	// ErrInvalidUsername indicates a username that does not match the required format.
	ErrInvalidUsername = apperrors.New(apperrors.CodeInvalidArgument, "username must be 3-32 alphanumeric, dot, dash, or underscore characters")
	// ErrInvalidEmail indicates a malformed email address.
	ErrInvalidEmail = apperrors.New(apperrors.CodeInvalidArgument, "email address is not valid")
	// ErrEmptyPassword indicates a missing password.
	ErrEmptyPassword = apperrors.New(apperrors.CodeInvalidArgument, "password is required")

	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.\-]{3,32}$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// User represents a registered account, without credential material.
type User struct {
	ID        int64
	Username  string
	Email     string
	CreatedAt time.Time
	LastLogin *time.Time
}

// Registration describes the input needed to create a user.
type Registration struct {
	Username string
	Email    string
	Password string
}

// ValidateUsername enforces the canonical username constraints.
func ValidateUsername(s string) error {
	if !usernamePattern.MatchString(s) {
		return ErrInvalidUsername
	}
	return nil
}

// ValidateEmail enforces the canonical email shape.
func ValidateEmail(s string) error {
	if !emailPattern.MatchString(s) {
		return ErrInvalidEmail
	}
	return nil
}

// NormalizeRegistration trims and normalizes input before validation.
// Emails are lowercased; usernames keep their case and are matched exactly.
func NormalizeRegistration(input Registration) (Registration, error) {
	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" {
		return Registration{}, ErrEmptyUsername
	}
	if err := ValidateUsername(input.Username); err != nil {
		return Registration{}, err
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := ValidateEmail(input.Email); err != nil {
		return Registration{}, err
	}
	if input.Password == "" {
		return Registration{}, ErrEmptyPassword
	}
	return input, nil
}
