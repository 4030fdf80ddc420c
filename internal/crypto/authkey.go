// Package crypto derives the credential a client proves its identity with.
// The master password never leaves the device: the server only sees the
// SHA256 hash of an Argon2id-derived auth key.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// SaltSize размер публичной соли в байтах
const SaltSize = 32

// ErrAuthKeyMismatch is returned when a presented hash differs from the stored one.
var ErrAuthKeyMismatch = errors.New("invalid auth key")

// Params параметры Argon2id
type Params struct {
	Time    uint32 // количество итераций
	Memory  uint32 // память в KB
	Threads uint8
	KeyLen  uint32
}

// DefaultParams параметры для production (64MB памяти)
var DefaultParams = Params{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32}

// GenerateSalt returns a random base64 encoded salt.
func GenerateSalt() (string, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// DeriveAuthKey derives the auth key from the master password. The
// username is mixed in so equal passwords of different users differ.
func DeriveAuthKey(masterPassword, username, saltBase64 string, p Params) ([]byte, error) {
	if masterPassword == "" {
		return nil, errors.New("master password cannot be empty")
	}
	if username == "" {
		return nil, errors.New("username cannot be empty")
	}

	salt, err := base64.StdEncoding.DecodeString(saltBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}

	input := []byte(masterPassword + username + "auth")
	return argon2.IDKey(input, salt, p.Time, p.Memory, p.Threads, p.KeyLen), nil
}

// HashAuthKey returns the hex SHA256 of authKey; this is what the server stores.
func HashAuthKey(authKey []byte) (string, error) {
	if len(authKey) == 0 {
		return "", errors.New("auth key cannot be empty")
	}
	sum := sha256.Sum256(authKey)
	return hex.EncodeToString(sum[:]), nil
}

// CompareHash checks a presented auth key hash against the stored one in
// constant time.
func CompareHash(presented, stored string) error {
	if presented == "" || stored == "" {
		return ErrAuthKeyMismatch
	}
	if subtle.ConstantTimeCompare([]byte(presented), []byte(stored)) != 1 {
		return ErrAuthKeyMismatch
	}
	return nil
}
