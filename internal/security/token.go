package security

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// HashSessionToken is the storage key for a bearer token: hex BLAKE2b-256 of the trimmed value.
// Raw tokens never reach the database.
func HashSessionToken(token string) string {
	sum := blake2b.Sum256([]byte(strings.TrimSpace(token)))
	return hex.EncodeToString(sum[:])
}
