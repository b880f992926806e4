package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput  = errors.New("invalid_input")
	ErrUsernameTaken = errors.New("username_taken")
	ErrNotFound      = errors.New("not_found")
	ErrWrongPasscode = errors.New("wrong_passcode")
)

// IsAuthFailure reports whether err is one of the authentication failures
// that must all look the same to a client.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrUsernameTaken) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrWrongPasscode)
}

func invalidInput(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

// InputProblem returns the human readable part of an ErrInvalidInput error.
func InputProblem(err error) string {
	msg := strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": ")
	return strings.ReplaceAll(msg, "\n", "; ")
}
