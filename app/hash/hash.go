// Package hash isolates password hashing behind a small interface so the
// scheme is an explicit deployment choice rather than an ambient global.
package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) bool
}

// SHA256 reproduces the legacy scheme: unsalted single-round SHA-256, hex
// encoded. Weak, but bit-compatible with hashes already in the users table.
// New deployments should prefer Bcrypt.
type SHA256 struct{}

func (SHA256) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (SHA256) Verify(password, encoded string) bool {
	sum := sha256.Sum256([]byte(password))
	want, err := hex.DecodeString(encoded)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(sum[:], want) == 1
}

type Bcrypt struct{}

func (Bcrypt) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (Bcrypt) Verify(password, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
}

// ForScheme maps a config value to a Hasher.
func ForScheme(scheme string) (Hasher, error) {
	switch scheme {
	case "", "sha256":
		return SHA256{}, nil
	case "bcrypt":
		return Bcrypt{}, nil
	default:
		return nil, fmt.Errorf("unknown hash scheme %q", scheme)
	}
}
