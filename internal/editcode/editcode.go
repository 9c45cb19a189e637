// Package editcode hashes the per-note shared secret that guards
// edit and delete operations.
package editcode

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Hash returns the hex-encoded SHA-256 digest of code. Only the
// digest is ever persisted.
func Hash(code string) string {
	h := sha256.Sum256([]byte(code))
	return hex.EncodeToString(h[:])
}

// Match reports whether code hashes to storedHash, comparing in
// constant time.
func Match(code, storedHash string) bool {
	sum := Hash(code)
	return subtle.ConstantTimeCompare([]byte(sum), []byte(storedHash)) == 1
}
