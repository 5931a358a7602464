package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateResetToken returns a 32-character hex string from a CSPRNG, used
// as the single-use password-reset token.
func GenerateResetToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
