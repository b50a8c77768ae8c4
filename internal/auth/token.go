package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const oneTimeTokenBytes = 32

// NewOneTimeToken returns an opaque single-use token for email verification
// and password reset links. The token carries no embedded expiry; reset
// expiry is stored alongside it on the user record. Uniqueness is enforced
// by the store's unique index, not here.
func NewOneTimeToken() (string, error) {
	buf := make([]byte, oneTimeTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
