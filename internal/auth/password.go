package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword hashes the clear text with unsalted SHA-256, matching the
// hashes already present in admin_users. Login compares hex digests for
// exact equality.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
