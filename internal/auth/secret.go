package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateResetToken returns a single-use activation/reset token: 20 random
// bytes, hex-encoded. The token is embedded in a link and matched against the
// store as an exact unique key.
func GenerateResetToken() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
