package validation

import (
	"fmt"
	"regexp"
)

// Ограничения учетных данных
const (
	MinUsernameLen = 3
	MaxUsernameLen = 32
	MinPasswordLen = 8
	MaxStorageKey  = 128
)

var (
	// usernamePattern латиница, цифры и подчеркивание
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

	// storageKeyPattern ключ становится сегментом пути users/{id}/storage/{key}
	storageKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
)

// ValidateUsername checks the length and the alphabet of a username.
// Errors wrap ErrInvalid.
func ValidateUsername(username string) error {
	switch {
	case username == "":
		return fmt.Errorf("%w: username cannot be empty", ErrInvalid)
	case len(username) < MinUsernameLen || len(username) > MaxUsernameLen:
		return fmt.Errorf("%w: username must be %d to %d characters long", ErrInvalid, MinUsernameLen, MaxUsernameLen)
	case !usernamePattern.MatchString(username):
		return fmt.Errorf("%w: username can only contain latin letters, digits and underscores", ErrInvalid)
	}
	return nil
}

// ValidatePassword checks the minimal master password length.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", ErrInvalid)
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters long", ErrInvalid, MinPasswordLen)
	}
	return nil
}

// ValidateStorageKey checks a key before it is used in a document path.
func ValidateStorageKey(key string) error {
	if key == "" || len(key) > MaxStorageKey || !storageKeyPattern.MatchString(key) || key == "." || key == ".." {
		return fmt.Errorf("%w: invalid storage key %q", ErrInvalid, key)
	}
	return nil
}
