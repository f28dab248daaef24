// Package password provides salted password hashing and verification.
package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// saltLength is the number of random salt bytes generated per hash.
	saltLength = 16
	// iterations is the PBKDF2 iteration count.
	iterations = 10000
	// keyLength is the derived key length in bytes.
	keyLength = 64
)

// Hash derives a salted PBKDF2-HMAC-SHA512 hash of the plaintext and returns
// it as "hex(salt):hex(key)", so the salt travels with the hash and needs no
// separate storage.
func Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(plaintext), salt, iterations, keyLength, sha512.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// Verify re-derives the key from the plaintext using the salt embedded in the
// stored value and compares it in constant time. Malformed stored values
// (missing separator, non-hex segments) verify as false; the caller is never
// told which part was malformed.
func Verify(plaintext, stored string) bool {
	saltHex, keyHex, ok := strings.Cut(stored, ":")
	if !ok {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(keyHex)
	if err != nil || len(want) == 0 {
		return false
	}
	got := pbkdf2.Key([]byte(plaintext), salt, iterations, len(want), sha512.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// DummyHash returns a well-formed stored hash for a throwaway password.
// Login verifies against it when no account matches the email, so the
// response time does not reveal whether the account exists.
var DummyHash = sync.OnceValue(func() string {
	h, err := Hash("timing-equalization-dummy")
	if err != nil {
		// crypto/rand failing here means it fails for every real hash too.
		panic(err)
	}
	return h
})
