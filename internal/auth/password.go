// Package auth provides password credential hashing and verification.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters, chosen for interactive login on device-class hardware.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
	argonKeyLen  = 32

	saltBytes = 16
)

// NewSalt returns a fresh random per-user salt, hex encoded.
func NewSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword derives a one-way digest from the password and salt.
// The plaintext password is never stored.
func HashPassword(password, salt string) string {
	key := deriveKey(password, salt)
	return base64.RawStdEncoding.EncodeToString(key)
}

// VerifyPassword recomputes the digest with the stored salt and compares it
// against the stored digest in constant time.
func VerifyPassword(password, salt, digest string) bool {
	stored, err := base64.RawStdEncoding.DecodeString(digest)
	if err != nil {
		return false
	}
	computed := deriveKey(password, salt)
	return subtle.ConstantTimeCompare(computed, stored) == 1
}

func deriveKey(password, salt string) []byte {
	return argon2.IDKey([]byte(password), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
}
