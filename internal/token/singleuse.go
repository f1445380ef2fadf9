package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"
)

const singleUseTokenBytes = 32

// IssueSingleUse generates a random single-use token and returns the
// plaintext to deliver out-of-band alongside the hash to persist. The
// plaintext itself is never stored by callers handling reset tokens;
// activation strings keep the plaintext form on the account record.
func IssueSingleUse() (plaintext, hash string, err error) {
	buf := make([]byte, singleUseTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}

	plaintext = hex.EncodeToString(buf)
	return plaintext, HashSingleUse(plaintext), nil
}

// HashSingleUse is the one-way transform applied before a reset token is
// persisted or compared.
func HashSingleUse(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// VerifySingleUse hashes the supplied value and compares it in constant
// time against the stored hash. A zero expiresAt means the token never
// expires; otherwise a token past its expiry is rejected.
func VerifySingleUse(plaintext, storedHash string, expiresAt time.Time) bool {
	if plaintext == "" || storedHash == "" {
		return false
	}

	if !expiresAt.IsZero() && time.Now().After(expiresAt) {
		return false
	}

	suppliedHash := HashSingleUse(plaintext)
	return subtle.ConstantTimeCompare([]byte(suppliedHash), []byte(storedHash)) == 1
}
