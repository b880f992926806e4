package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// PasscodeLength is the exact number of characters a passcode must have.
const PasscodeLength = 10

var (
	ErrEmptyUsername  = errors.New("username must not be empty")
	ErrPasscodeLength = errors.New("passcode must be exactly 10 characters")
)

type User struct {
	ID           int64
	Username     string
	PasscodeHash []byte // argon2id PHC string, or bcrypt for accounts created before the switch
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeUsername trims surrounding whitespace. Usernames are otherwise
// case-sensitive and stored as typed.
func NormalizeUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ErrEmptyUsername
	}
	return username, nil
}

// ValidatePasscode enforces the fixed length. Characters are counted as
// runes, any character is allowed.
func ValidatePasscode(passcode string) error {
	if utf8.RuneCountInString(passcode) != PasscodeLength {
		return ErrPasscodeLength
	}
	return nil
}
